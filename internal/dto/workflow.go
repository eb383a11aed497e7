package dto

type WorkflowAuthorResponse struct {
	Name     string `json:"name"`
	Initials string `json:"initials"`
	Avatar   string `json:"avatar,omitempty"`
}

type WorkflowResponse struct {
	WorkflowID string                 `json:"workflowId"`
	Name       string                 `json:"name"`
	Trigger    string                 `json:"trigger"`
	Active     bool                   `json:"active"`
	Recurring  bool                   `json:"recurring"`
	Author     WorkflowAuthorResponse `json:"author"`
}

type ListWorkflowsResponse struct {
	Workflows []WorkflowResponse `json:"workflows"`
}

type SetWorkflowActiveRequest struct {
	Active bool `json:"active"`
}

type ConditionResponse struct {
	Logic         string  `json:"logic"`
	ConditionType *string `json:"conditionType"`
	Operator      *string `json:"operator"`
	Value         *string `json:"value"`
}

type ListConditionsResponse struct {
	Conditions  []ConditionResponse `json:"conditions"`
	IsSatisfied bool                `json:"isSatisfied"`
}

type UpdateConditionRequest struct {
	Logic         *string `json:"logic,omitempty"`
	ConditionType *string `json:"conditionType,omitempty"`
	Operator      *string `json:"operator,omitempty"`
	Value         *string `json:"value,omitempty"`
}

type ToggleFilterValueRequest struct {
	Dimension string `json:"dimension"`
	Value     string `json:"value"`
}

type SetFilterOperatorRequest struct {
	Dimension string `json:"dimension"`
	Operator  string `json:"operator"`
}

type ClearFilterRequest struct {
	Dimension string `json:"dimension"`
}

type FilterChipResponse struct {
	Dimension string   `json:"dimension"`
	Values    []string `json:"values"`
	Operator  string   `json:"operator"`
}

type FilterStateResponse struct {
	Chips []FilterChipResponse `json:"chips"`
}
