package agent

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

func seedAgents() []model.AgentItem {
	return []model.AgentItem{
		{AgentID: "agent-1", Name: "Sarah Johnson", Type: model.AgentTypeAgent, Status: model.AgentStatusOnline, IsAvailable: true},
		{AgentID: "agent-2", Name: "Mike Chen", Type: model.AgentTypeAgent, Status: model.AgentStatusAway, IsAvailable: false},
		{AgentID: "team-1", Name: "Undergrad Admissions", Type: model.AgentTypeTeam, Status: model.AgentStatusOnline, IsAvailable: true},
	}
}

func TestListAgentsOrdersAgentsBeforeTeams(t *testing.T) {
	svc := NewWithRepository(NewMemoryRepository(seedAgents()), fixedNow)

	agents, err := svc.ListAgents(context.Background())
	if err != nil {
		t.Fatalf("ListAgents returned error: %v", err)
	}

	want := []string{"agent-1", "agent-2", "team-1"}
	if len(agents) != len(want) {
		t.Fatalf("expected %d agents, got %d", len(want), len(agents))
	}
	for i, id := range want {
		if agents[i].AgentID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, agents[i].AgentID)
		}
	}
}

func TestListAgentsByType(t *testing.T) {
	svc := NewWithRepository(NewMemoryRepository(seedAgents()), fixedNow)

	teams, err := svc.ListAgentsByType(context.Background(), model.AgentTypeTeam)
	if err != nil {
		t.Fatalf("ListAgentsByType returned error: %v", err)
	}
	if len(teams) != 1 || teams[0].AgentID != "team-1" {
		t.Fatalf("expected only team-1, got %+v", teams)
	}
}

func TestListAvailableAgents(t *testing.T) {
	svc := NewWithRepository(NewMemoryRepository(seedAgents()), fixedNow)

	available, err := svc.ListAvailableAgents(context.Background())
	if err != nil {
		t.Fatalf("ListAvailableAgents returned error: %v", err)
	}
	if len(available) != 2 {
		t.Fatalf("expected 2 available agents, got %d", len(available))
	}
	for _, a := range available {
		if !a.IsAvailable {
			t.Fatalf("unavailable agent %s returned", a.AgentID)
		}
	}
}

func TestGetAgentNotFound(t *testing.T) {
	svc := NewWithRepository(NewMemoryRepository(nil), fixedNow)

	_, err := svc.GetAgent(context.Background(), "missing")
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeNotFound {
		t.Fatalf("expected not_found error, got %v", err)
	}
}
