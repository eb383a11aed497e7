package websocket

type Room struct {
	Id      string               `json:"id"`
	Clients map[string]*WSClient `json:"clients"`
}

// Event is the envelope fanned out to dashboard clients. Content holds the
// JSON-encoded payload so the hub never needs to know event shapes.
type Event struct {
	Content   string `json:"content"`
	RoomID    string `json:"roomId"`
	Timestamp int64  `json:"timestamp"`
}

type RoomRes struct {
	ID string `json:"id"`
}
