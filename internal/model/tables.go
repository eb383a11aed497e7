package model

const (
	UsersTable          = "Users"
	AgentsTable         = "Agents"
	ConversationsTable  = "Conversations"
	MessagesTable       = "Messages"
	SystemMessagesTable = "SystemMessages"
	WorkflowsTable      = "Workflows"
)

type UserItem struct {
	UserID     string `dynamodbav:"userId"`
	Name       string `dynamodbav:"name"`
	Initials   string `dynamodbav:"initials"`
	Email      string `dynamodbav:"email,omitempty"`
	Phone      string `dynamodbav:"phone,omitempty"`
	Language   string `dynamodbav:"language,omitempty"`
	AvatarBg   string `dynamodbav:"avatarBg,omitempty"`
	AvatarText string `dynamodbav:"avatarText,omitempty"`
	LastSeen   string `dynamodbav:"lastSeen,omitempty"`
	IsAgent    bool   `dynamodbav:"isAgent,omitempty"`
	Verified   bool   `dynamodbav:"verified"`
}

type AgentType string

const (
	AgentTypeAgent AgentType = "agent"
	AgentTypeTeam  AgentType = "team"
)

type AgentStatus string

const (
	AgentStatusOnline  AgentStatus = "online"
	AgentStatusAway    AgentStatus = "away"
	AgentStatusOffline AgentStatus = "offline"
)

type AgentItem struct {
	AgentID     string      `dynamodbav:"agentId"`
	Name        string      `dynamodbav:"name"`
	Initials    string      `dynamodbav:"initials"`
	AvatarBg    string      `dynamodbav:"avatarBg,omitempty"`
	AvatarText  string      `dynamodbav:"avatarText,omitempty"`
	Type        AgentType   `dynamodbav:"type"`
	Status      AgentStatus `dynamodbav:"status"`
	IsAvailable bool        `dynamodbav:"isAvailable"`
	Verified    bool        `dynamodbav:"verified"`
}

type WorkflowAuthor struct {
	Name     string `dynamodbav:"name"`
	Initials string `dynamodbav:"initials"`
	Avatar   string `dynamodbav:"avatar,omitempty"`
}

type WorkflowItem struct {
	WorkflowID string              `dynamodbav:"workflowId"`
	Name       string              `dynamodbav:"name"`
	Trigger    string              `dynamodbav:"trigger"`
	Active     bool                `dynamodbav:"active"`
	Recurring  bool                `dynamodbav:"recurring"`
	Author     WorkflowAuthor      `dynamodbav:"author"`
	Conditions []WorkflowCondition `dynamodbav:"conditions,omitempty"`
}

type ConditionLogic string

const (
	LogicIf  ConditionLogic = "IF"
	LogicAnd ConditionLogic = "AND"
	LogicOr  ConditionLogic = "OR"
)

// WorkflowCondition is one row of a workflow's IF/AND/OR chain. The three
// selection fields stay nil until the operator picks them; no engine ever
// evaluates the chain.
type WorkflowCondition struct {
	Logic         ConditionLogic `dynamodbav:"logic"`
	ConditionType *string        `dynamodbav:"conditionType,omitempty"`
	Operator      *string        `dynamodbav:"operator,omitempty"`
	Value         *string        `dynamodbav:"value,omitempty"`
}

// Complete reports whether every selection field of the row has been chosen.
func (c WorkflowCondition) Complete() bool {
	return c.ConditionType != nil && c.Operator != nil && c.Value != nil
}

// BlankCondition is the placeholder row a workflow's condition list resets to.
func BlankCondition() WorkflowCondition {
	return WorkflowCondition{Logic: LogicIf}
}
