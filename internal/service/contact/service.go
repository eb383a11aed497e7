package contact

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"crm-inbox-backend/internal/database"
	"crm-inbox-backend/internal/model"
	"crm-inbox-backend/internal/validation"
	"crm-inbox-backend/internal/websocket"
)

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation_error"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeInternal   ErrorCode = "internal_error"
)

type Error struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// UpdateParams carries a partial contact update. Nil fields are untouched;
// non-nil fields overwrite, including with the empty string.
type UpdateParams struct {
	Name     *string
	Email    *string
	Phone    *string
	Language *string
}

type Publisher func(room string, payload interface{}) error

type Service struct {
	repo    Repository
	now     func() time.Time
	publish Publisher
}

func New(db *database.Database) *Service {
	return &Service{
		repo: NewDynamoRepository(db),
		now:  time.Now,
	}
}

func NewWithRepository(repo Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo: repo,
		now:  now,
	}
}

func (s *Service) SetPublisher(publish Publisher) {
	s.publish = publish
}

func (s *Service) GetUser(ctx context.Context, userID string) (model.UserItem, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return model.UserItem{}, newError(ErrorCodeValidation, "user id is required", nil)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return model.UserItem{}, newError(ErrorCodeNotFound, "user not found", err)
		}
		return model.UserItem{}, newError(ErrorCodeInternal, "failed to fetch user", err)
	}
	return user, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]model.UserItem, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list users", err)
	}
	return users, nil
}

// ListContacts returns users that are not agents.
func (s *Service) ListContacts(ctx context.Context) ([]model.UserItem, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, newError(ErrorCodeInternal, "failed to list users", err)
	}

	contacts := make([]model.UserItem, 0, len(users))
	for _, user := range users {
		if !user.IsAgent {
			contacts = append(contacts, user)
		}
	}
	return contacts, nil
}

// UpdateUser applies a partial update and recomputes the verified flag:
// a contact is verified when it has a non-empty email or phone. A transition
// from unverified to verified is announced on the inbox room.
func (s *Service) UpdateUser(ctx context.Context, userID string, params UpdateParams) (model.UserItem, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return model.UserItem{}, err
	}

	if params.Name != nil {
		user.Name = validation.SanitizeInput(*params.Name)
	}
	if params.Email != nil {
		email := strings.TrimSpace(*params.Email)
		if email != "" && !validation.ValidateEmail(email) {
			return model.UserItem{}, newError(ErrorCodeValidation, "invalid email address", nil)
		}
		user.Email = email
	}
	if params.Phone != nil {
		phone := strings.TrimSpace(*params.Phone)
		if phone != "" && !validation.ValidatePhone(phone) {
			return model.UserItem{}, newError(ErrorCodeValidation, "invalid phone number", nil)
		}
		user.Phone = phone
	}
	if params.Language != nil {
		user.Language = strings.TrimSpace(*params.Language)
	}

	wasVerified := user.Verified
	user.Verified = user.Email != "" || user.Phone != ""

	if err := s.repo.PutUser(ctx, user); err != nil {
		return model.UserItem{}, newError(ErrorCodeInternal, "failed to update user", err)
	}

	if !wasVerified && user.Verified {
		s.notifyVerified(user)
	}

	return user, nil
}

type contactVerifiedEvent struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

func (s *Service) notifyVerified(user model.UserItem) {
	if s.publish == nil {
		return
	}
	event := contactVerifiedEvent{
		Type:   "contact_verified",
		UserID: user.UserID,
		Name:   user.Name,
	}
	if err := s.publish(websocket.InboxRoom, event); err != nil {
		log.Printf("contact: publish contact_verified for %s: %v", user.UserID, err)
	}
}
