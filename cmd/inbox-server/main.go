package main

import (
	"log"

	"crm-inbox-backend/internal/api"
	"crm-inbox-backend/internal/api/router"
	"crm-inbox-backend/internal/database"
	"crm-inbox-backend/internal/env"
	"crm-inbox-backend/internal/flags"
	"crm-inbox-backend/internal/queue"
	"crm-inbox-backend/internal/seed"
	agentservice "crm-inbox-backend/internal/service/agent"
	contactservice "crm-inbox-backend/internal/service/contact"
	conversationservice "crm-inbox-backend/internal/service/conversation"
	workflowservice "crm-inbox-backend/internal/service/workflow"
	"crm-inbox-backend/internal/websocket"
)

func main() {
	queueManager := queue.NewRequestQueueManager(10, 10)

	var (
		contacts      *contactservice.Service
		conversations *conversationservice.Service
		agents        *agentservice.Service
		workflows     *workflowservice.Service
	)

	switch backend := env.GetOrDefault(env.StoreBackend, "memory"); backend {
	case "dynamodb":
		db, err := database.NewDatabase()
		if err != nil {
			log.Fatalf("db init failed: %v", err)
		}
		contacts = contactservice.New(db)
		conversations = conversationservice.New(db)
		agents = agentservice.New(db)
		workflows = workflowservice.New(db)
	case "memory":
		contacts = contactservice.NewWithRepository(contactservice.NewMemoryRepository(seed.Users()), nil)
		conversations = conversationservice.NewWithRepository(
			conversationservice.NewMemoryRepository(seed.Conversations(), seed.Messages(), seed.Agents()), nil)
		agents = agentservice.NewWithRepository(agentservice.NewMemoryRepository(seed.Agents()), nil)
		workflows = workflowservice.NewWithRepository(workflowservice.NewMemoryRepository(seed.Workflows()), nil)
	default:
		log.Fatalf("unknown store backend %q", backend)
	}

	hub := websocket.NewHub()
	go hub.Run()
	handler := websocket.NewHandler(hub)
	handler.CreateRoom(websocket.InboxRoom)

	contacts.SetPublisher(websocket.Publish)
	conversations.SetPublisher(websocket.Publish)

	registry := flags.NewRegistry()
	registry.Subscribe(func(conversationID string, important bool) {
		event := map[string]interface{}{
			"type":           "important_toggled",
			"conversationId": conversationID,
			"important":      important,
		}
		if err := websocket.Publish(websocket.InboxRoom, event); err != nil {
			log.Printf("publish important_toggled for %s: %v", conversationID, err)
		}
	})

	const prefix = "/api/v1"

	server := api.NewAPIServer(
		env.GetOrDefault(env.HTTPAddr, ":8080"),
		queueManager,
		handler,
		router.UtilsRoutes(prefix),
		router.ContactRoutes(prefix, contacts),
		router.ConversationRoutes(prefix, conversations, registry),
		router.AgentRoutes(prefix, agents),
		router.WorkflowRoutes(prefix, workflows),
	)

	server.Run()
}
