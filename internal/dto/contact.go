package dto

type ContactResponse struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	Initials   string `json:"initials"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Language   string `json:"language,omitempty"`
	AvatarBg   string `json:"avatarBg,omitempty"`
	AvatarText string `json:"avatarText,omitempty"`
	LastSeen   string `json:"lastSeen,omitempty"`
	IsAgent    bool   `json:"isAgent"`
	Verified   bool   `json:"verified"`
}

type UpdateContactRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Language *string `json:"language,omitempty"`
}

type ListContactsResponse struct {
	Contacts []ContactResponse `json:"contacts"`
}

type ValidationResultResponse struct {
	IsValid bool   `json:"isValid"`
	Error   string `json:"error,omitempty"`
}
