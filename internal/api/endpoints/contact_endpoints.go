package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"crm-inbox-backend/internal/dto"
	"crm-inbox-backend/internal/model"
	contactservice "crm-inbox-backend/internal/service/contact"
)

type ContactEndpoints interface {
	Contacts(http.ResponseWriter, *http.Request) error
	ContactByID(http.ResponseWriter, *http.Request) error
}

type contactEndpoints struct {
	service *contactservice.Service
	prefix  string
}

func NewContactEndpoints(service *contactservice.Service, prefix string) ContactEndpoints {
	return &contactEndpoints{
		service: service,
		prefix:  strings.TrimRight(prefix, "/") + "/contacts/",
	}
}

func (h *contactEndpoints) Contacts(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleListContacts,
	})
}

func (h *contactEndpoints) ContactByID(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet:   h.handleGetContact,
		http.MethodPatch: h.handleUpdateContact,
	})
}

func (h *contactEndpoints) handleListContacts(w http.ResponseWriter, r *http.Request) error {
	var (
		users []model.UserItem
		err   error
	)
	if r.URL.Query().Get("includeAgents") == "true" {
		users, err = h.service.ListUsers(r.Context())
	} else {
		users, err = h.service.ListContacts(r.Context())
	}
	if err != nil {
		return h.serviceError(err)
	}

	res := dto.ListContactsResponse{Contacts: make([]dto.ContactResponse, 0, len(users))}
	for _, user := range users {
		res.Contacts = append(res.Contacts, toContactResponse(user))
	}
	return WriteJSON(w, http.StatusOK, res)
}

func (h *contactEndpoints) handleGetContact(w http.ResponseWriter, r *http.Request) error {
	userID, err := h.contactID(r.URL.Path)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toContactResponse(user))
}

func (h *contactEndpoints) handleUpdateContact(w http.ResponseWriter, r *http.Request) error {
	userID, err := h.contactID(r.URL.Path)
	if err != nil {
		return err
	}

	var req dto.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return &HTTPError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request body",
			ErrorLog:   fmt.Errorf("decode update contact request: %w", err),
		}
	}

	user, err := h.service.UpdateUser(r.Context(), userID, contactservice.UpdateParams{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Language: req.Language,
	})
	if err != nil {
		return h.serviceError(err)
	}
	return WriteJSON(w, http.StatusOK, toContactResponse(user))
}

func (h *contactEndpoints) contactID(path string) (string, error) {
	trimmed := strings.TrimPrefix(path, h.prefix)
	trimmed = strings.Trim(trimmed, "/")
	if trimmed == path || trimmed == "" || strings.Contains(trimmed, "/") {
		return "", &HTTPError{
			StatusCode: http.StatusNotFound,
			Message:    "Contact not found",
			ErrorLog:   fmt.Errorf("contact path mismatch: %s", path),
		}
	}
	return trimmed, nil
}

func (h *contactEndpoints) serviceError(err error) error {
	if err == nil {
		return nil
	}

	svcErr, ok := err.(*contactservice.Error)
	if !ok {
		return &HTTPError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
			ErrorLog:   fmt.Errorf("contact service: %w", err),
		}
	}

	var logErr error
	if svcErr.Err != nil {
		logErr = fmt.Errorf("%s: %w", svcErr.Message, svcErr.Err)
	} else {
		logErr = svcErr
	}

	switch svcErr.Code {
	case contactservice.ErrorCodeValidation:
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: svcErr.Message, ErrorLog: logErr}
	case contactservice.ErrorCodeNotFound:
		return &HTTPError{StatusCode: http.StatusNotFound, Message: svcErr.Message, ErrorLog: logErr}
	default:
		return &HTTPError{StatusCode: http.StatusInternalServerError, Message: "Internal server error", ErrorLog: logErr}
	}
}

func toContactResponse(user model.UserItem) dto.ContactResponse {
	return dto.ContactResponse{
		UserID:     user.UserID,
		Name:       user.Name,
		Initials:   user.Initials,
		Email:      user.Email,
		Phone:      user.Phone,
		Language:   user.Language,
		AvatarBg:   user.AvatarBg,
		AvatarText: user.AvatarText,
		LastSeen:   user.LastSeen,
		IsAgent:    user.IsAgent,
		Verified:   user.Verified,
	}
}
