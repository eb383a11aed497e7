package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"crm-inbox-backend/internal/model"
)

func fixedNow() time.Time {
	return time.Date(2024, time.January, 8, 16, 45, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}

func newTestService(users ...model.UserItem) *Service {
	return NewWithRepository(NewMemoryRepository(users), fixedNow)
}

func TestUpdateUserBecomesVerifiedWithEmail(t *testing.T) {
	svc := newTestService(model.UserItem{UserID: "2", Name: "Matt Lanham", Verified: false})

	updated, err := svc.UpdateUser(context.Background(), "2", UpdateParams{
		Email: strPtr("matt.lanham@example.com"),
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if !updated.Verified {
		t.Fatal("expected user with email to be verified")
	}
}

func TestUpdateUserBecomesVerifiedWithPhoneOnly(t *testing.T) {
	svc := newTestService(model.UserItem{UserID: "2", Name: "Matt Lanham", Verified: false})

	updated, err := svc.UpdateUser(context.Background(), "2", UpdateParams{
		Phone: strPtr("+44 1234 567890"),
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if !updated.Verified {
		t.Fatal("expected user with phone to be verified")
	}
}

func TestUpdateUserClearingContactDetailsUnverifies(t *testing.T) {
	svc := newTestService(model.UserItem{
		UserID:   "1",
		Name:     "Aisha Patel",
		Email:    "aisha.patel@example.com",
		Phone:    "+44 1234 567890",
		Verified: true,
	})

	updated, err := svc.UpdateUser(context.Background(), "1", UpdateParams{
		Email: strPtr(""),
		Phone: strPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if updated.Verified {
		t.Fatal("expected user without email and phone to be unverified")
	}
}

func TestUpdateUserRejectsInvalidEmail(t *testing.T) {
	svc := newTestService(model.UserItem{UserID: "1", Name: "Aisha Patel"})

	_, err := svc.UpdateUser(context.Background(), "1", UpdateParams{
		Email: strPtr("not-an-email"),
	})
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateUserRejectsInvalidPhone(t *testing.T) {
	svc := newTestService(model.UserItem{UserID: "1", Name: "Aisha Patel"})

	_, err := svc.UpdateUser(context.Background(), "1", UpdateParams{
		Phone: strPtr("abc"),
	})
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateUserPublishesVerifiedOnce(t *testing.T) {
	svc := newTestService(model.UserItem{UserID: "2", Name: "Matt Lanham", Verified: false})

	var events []string
	svc.SetPublisher(func(room string, payload interface{}) error {
		events = append(events, room)
		return nil
	})

	if _, err := svc.UpdateUser(context.Background(), "2", UpdateParams{Email: strPtr("matt@example.com")}); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}
	if _, err := svc.UpdateUser(context.Background(), "2", UpdateParams{Name: strPtr("Matthew Lanham")}); err != nil {
		t.Fatalf("UpdateUser returned error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected exactly one contact_verified event, got %d", len(events))
	}
}

func TestUpdateUserPublishErrorIsSwallowed(t *testing.T) {
	svc := newTestService(model.UserItem{UserID: "2", Name: "Matt Lanham", Verified: false})
	svc.SetPublisher(func(room string, payload interface{}) error {
		return errors.New("broker down")
	})

	updated, err := svc.UpdateUser(context.Background(), "2", UpdateParams{Email: strPtr("matt@example.com")})
	if err != nil {
		t.Fatalf("UpdateUser should not fail when publish fails: %v", err)
	}
	if !updated.Verified {
		t.Fatal("expected update to persist despite publish failure")
	}
}

func TestListContactsExcludesAgents(t *testing.T) {
	svc := newTestService(
		model.UserItem{UserID: "1", Name: "Aisha Patel"},
		model.UserItem{UserID: "2", Name: "Sarah Johnson", IsAgent: true},
		model.UserItem{UserID: "3", Name: "Marcus Thompson"},
	)

	contacts, err := svc.ListContacts(context.Background())
	if err != nil {
		t.Fatalf("ListContacts returned error: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	for _, c := range contacts {
		if c.IsAgent {
			t.Fatalf("agent %s leaked into contact list", c.UserID)
		}
	}
}

func TestGetUserNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetUser(context.Background(), "missing")
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeNotFound {
		t.Fatalf("expected not_found error, got %v", err)
	}
}
