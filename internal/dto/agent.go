package dto

type AgentResponse struct {
	AgentID     string `json:"agentId"`
	Name        string `json:"name"`
	Initials    string `json:"initials"`
	AvatarBg    string `json:"avatarBg,omitempty"`
	AvatarText  string `json:"avatarText,omitempty"`
	Type        string `json:"type"`
	Status      string `json:"status"`
	IsAvailable bool   `json:"isAvailable"`
}

type ListAgentsResponse struct {
	Agents []AgentResponse `json:"agents"`
}
