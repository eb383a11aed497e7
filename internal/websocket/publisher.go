package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Publish fans an event payload out to every client in the room. With Redis
// configured every server instance sees the event; without it, delivery is
// local to this process.
func Publish(roomID string, payload interface{}) error {
	if roomID == "" {
		return fmt.Errorf("websocket publish: roomID required")
	}

	messageJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("websocket publish: marshal payload: %w", err)
	}

	if redisClient != nil {
		if err := redisClient.Publish(context.Background(), roomID, string(messageJSON)).Err(); err != nil {
			return fmt.Errorf("websocket publish: redis publish: %w", err)
		}
		return nil
	}

	if defaultHub == nil {
		return fmt.Errorf("websocket publish: hub not initialised")
	}
	defaultHub.Broadcast <- &Event{
		Content:   string(messageJSON),
		RoomID:    roomID,
		Timestamp: time.Now().Unix(),
	}
	return nil
}
