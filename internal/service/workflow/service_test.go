package workflow

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

func seedWorkflows() []model.WorkflowItem {
	return []model.WorkflowItem{
		{WorkflowID: "1", Name: "Show queue position", Trigger: "During conversation", Active: true},
		{WorkflowID: "2", Name: "Add contact to a broadcast", Trigger: "After conversation ends", Active: false},
		{WorkflowID: "3", Name: "Add label on close", Trigger: "After conversation ends", Active: true},
		{WorkflowID: "4", Name: "Close conversations", Trigger: "After conversation ends", Active: true},
		{WorkflowID: "5", Name: "Add message on close", Trigger: "After conversation ends", Active: false},
	}
}

func newTestService() *Service {
	return NewWithRepository(NewMemoryRepository(seedWorkflows()), fixedNow)
}

func listNames(t *testing.T, svc *Service, view ViewQuery) []string {
	t.Helper()
	workflows, err := svc.ListWorkflows(context.Background(), view)
	if err != nil {
		t.Fatalf("ListWorkflows returned error: %v", err)
	}
	names := make([]string, len(workflows))
	for i, wf := range workflows {
		names[i] = wf.Name
	}
	return names
}

func TestListWorkflowsHideInactiveThenSearch(t *testing.T) {
	svc := newTestService()

	names := listNames(t, svc, ViewQuery{Query: "Add", HideInactive: true})
	if len(names) != 1 || names[0] != "Add label on close" {
		t.Fatalf("expected only 'Add label on close', got %v", names)
	}
}

func TestListWorkflowsShortQueryIgnored(t *testing.T) {
	svc := newTestService()

	names := listNames(t, svc, ViewQuery{Query: "Ad"})
	if len(names) != len(seedWorkflows()) {
		t.Fatalf("two-character query should not filter, got %v", names)
	}
}

func TestListWorkflowsSearchIsCaseInsensitive(t *testing.T) {
	svc := newTestService()

	names := listNames(t, svc, ViewQuery{Query: "CLOSE"})
	want := []string{"Add label on close", "Close conversations", "Add message on close"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("position %d: expected %q, got %q", i, n, names[i])
		}
	}
}

func TestListWorkflowsSortByName(t *testing.T) {
	svc := newTestService()

	asc := listNames(t, svc, ViewQuery{Sort: SortNameAsc})
	if asc[0] != "Add contact to a broadcast" || asc[len(asc)-1] != "Show queue position" {
		t.Fatalf("unexpected ascending order: %v", asc)
	}

	desc := listNames(t, svc, ViewQuery{Sort: SortNameDesc})
	if desc[0] != "Show queue position" || desc[len(desc)-1] != "Add contact to a broadcast" {
		t.Fatalf("unexpected descending order: %v", desc)
	}
}

func TestListWorkflowsLastEditedKeepsStoredOrder(t *testing.T) {
	svc := newTestService()

	names := listNames(t, svc, ViewQuery{Sort: SortLastEdited})
	want := []string{"Show queue position", "Add contact to a broadcast", "Add label on close", "Close conversations", "Add message on close"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("position %d: expected %q, got %q", i, n, names[i])
		}
	}
}

func TestSetActive(t *testing.T) {
	svc := newTestService()

	wf, err := svc.SetActive(context.Background(), "2", true)
	if err != nil {
		t.Fatalf("SetActive returned error: %v", err)
	}
	if !wf.Active {
		t.Fatal("expected workflow to be active")
	}
}

func TestGetConditionsDefaultsToBlankIfRow(t *testing.T) {
	svc := newTestService()

	conditions, err := svc.GetConditions(context.Background(), "1")
	if err != nil {
		t.Fatalf("GetConditions returned error: %v", err)
	}
	if len(conditions) != 1 {
		t.Fatalf("expected a single row, got %d", len(conditions))
	}
	if conditions[0].Logic != model.LogicIf || conditions[0].Complete() {
		t.Fatalf("expected blank IF row, got %+v", conditions[0])
	}
}

func TestAddConditionAppendsAndRow(t *testing.T) {
	svc := newTestService()

	conditions, err := svc.AddCondition(context.Background(), "1")
	if err != nil {
		t.Fatalf("AddCondition returned error: %v", err)
	}
	if len(conditions) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(conditions))
	}
	if conditions[0].Logic != model.LogicIf || conditions[1].Logic != model.LogicAnd {
		t.Fatalf("unexpected connectives: %s, %s", conditions[0].Logic, conditions[1].Logic)
	}
}

func TestUpdateConditionFirstRowLogicPinned(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	or := model.LogicOr
	conditions, err := svc.UpdateCondition(ctx, "1", 0, UpdateConditionParams{Logic: &or})
	if err != nil {
		t.Fatalf("UpdateCondition returned error: %v", err)
	}
	if conditions[0].Logic != model.LogicIf {
		t.Fatalf("first row connective must stay IF, got %s", conditions[0].Logic)
	}

	if _, err := svc.AddCondition(ctx, "1"); err != nil {
		t.Fatalf("AddCondition returned error: %v", err)
	}
	conditions, err = svc.UpdateCondition(ctx, "1", 1, UpdateConditionParams{Logic: &or})
	if err != nil {
		t.Fatalf("UpdateCondition returned error: %v", err)
	}
	if conditions[1].Logic != model.LogicOr {
		t.Fatalf("second row connective should change, got %s", conditions[1].Logic)
	}
}

func TestRemoveLastConditionRestoresBlankRow(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	condType := "Contact attribute"
	op := "is"
	value := "VIP"
	if _, err := svc.UpdateCondition(ctx, "1", 0, UpdateConditionParams{
		ConditionType: &condType,
		Operator:      &op,
		Value:         &value,
	}); err != nil {
		t.Fatalf("UpdateCondition returned error: %v", err)
	}

	conditions, err := svc.RemoveCondition(ctx, "1", 0)
	if err != nil {
		t.Fatalf("RemoveCondition returned error: %v", err)
	}
	if len(conditions) != 1 {
		t.Fatalf("expected a single restored row, got %d", len(conditions))
	}
	if conditions[0].Logic != model.LogicIf || conditions[0].Complete() {
		t.Fatalf("expected blank IF row, got %+v", conditions[0])
	}
}

func TestRemoveFirstRowPromotesNextToIf(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.AddCondition(ctx, "1"); err != nil {
		t.Fatalf("AddCondition returned error: %v", err)
	}

	conditions, err := svc.RemoveCondition(ctx, "1", 0)
	if err != nil {
		t.Fatalf("RemoveCondition returned error: %v", err)
	}
	if len(conditions) != 1 || conditions[0].Logic != model.LogicIf {
		t.Fatalf("expected surviving row promoted to IF, got %+v", conditions)
	}
}

func TestIsSatisfied(t *testing.T) {
	condType := "Contact attribute"
	op := "is"
	value := "VIP"

	if IsSatisfied([]model.WorkflowCondition{model.BlankCondition()}) {
		t.Fatal("blank row should not satisfy")
	}

	rows := []model.WorkflowCondition{
		model.BlankCondition(),
		{Logic: model.LogicAnd, ConditionType: &condType, Operator: &op, Value: &value},
	}
	if !IsSatisfied(rows) {
		t.Fatal("a complete row should satisfy")
	}

	partial := []model.WorkflowCondition{
		{Logic: model.LogicIf, ConditionType: &condType, Operator: &op},
	}
	if IsSatisfied(partial) {
		t.Fatal("row missing a value should not satisfy")
	}
}

func TestFilterSessionsAreIsolated(t *testing.T) {
	svc := newTestService()

	svc.FilterSession("a").ToggleValue("status", "Active")

	if chips := svc.FilterSession("b").ActiveChips(); len(chips) != 0 {
		t.Fatalf("session b should start empty, got %v", chips)
	}
	if chips := svc.FilterSession("a").ActiveChips(); len(chips) != 1 {
		t.Fatalf("session a should keep its state, got %v", chips)
	}
}

func TestGetWorkflowNotFound(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetWorkflow(context.Background(), "missing")
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Code != ErrorCodeNotFound {
		t.Fatalf("expected not_found error, got %v", err)
	}
}
