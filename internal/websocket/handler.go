package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"crm-inbox-backend/internal/env"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
)

// InboxRoom receives cross-conversation events: list updates, important
// flag toggles, contact verification. Conversation rooms are named
// "conv:<conversationId>".
const InboxRoom = "inbox"

var (
	upgrader    websocket.Upgrader
	redisClient *redis.Client
	defaultHub  *Hub
)

func init() {
	upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
	if addr := env.Get(env.EventRedisURL); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: env.Get(env.EventRedisPass),
			DB:       0,
		})
	}
}

func ConversationRoom(conversationID string) string {
	return "conv:" + conversationID
}

type Handler struct {
	hub         *Hub
	redisClient *redis.Client
}

func NewHandler(h *Hub) *Handler {
	defaultHub = h
	return &Handler{
		hub:         h,
		redisClient: redisClient,
	}
}

func (h *Handler) subscribeToRoomChannel(roomID string) {
	if h.redisClient == nil {
		return
	}
	if _, exists := h.hub.Rooms[roomID]; !exists {
		log.Printf("room %s not found for subscription", roomID)
		return
	}

	subscriber := h.redisClient.Subscribe(context.Background(), roomID)
	defer subscriber.Close()

	ch := subscriber.Channel()
	for msg := range ch {
		h.hub.Broadcast <- &Event{
			Content:   msg.Payload,
			RoomID:    roomID,
			Timestamp: time.Now().Unix(),
		}
	}
	log.Printf("unsubscribed from redis channel: %s", roomID)
}

func (h *Handler) CreateRoom(id string) {
	if _, exists := h.hub.Rooms[id]; exists {
		return
	}

	h.hub.Rooms[id] = &Room{
		Id:      id,
		Clients: make(map[string]*WSClient),
	}
	setRooms(len(h.hub.Rooms))

	go h.subscribeToRoomChannel(id)
}

func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request, roomId, clientId string) {
	h.CreateRoom(roomId)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cl := &WSClient{
		Conn:     conn,
		Message:  make(chan *Event, 10),
		ID:       clientId,
		RoomID:   roomId,
		done:     make(chan struct{}),
		isClosed: false,
	}

	h.hub.Register <- cl

	go cl.keepAlive()
	go cl.writeEvents()
	go cl.readUntilClose(h.hub)
}

func (h *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms := make([]RoomRes, 0)

	for _, room := range h.hub.Rooms {
		rooms = append(rooms, RoomRes{
			ID: room.Id,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(rooms)
}
