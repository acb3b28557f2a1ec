package dto

// SendNotification targets exactly one of receiver_ids, squad_id or
// send_to_coaches; the handler rejects anything else.
type SendNotification struct {
	ReceiverIDs   []string `json:"receiver_ids"`
	SquadID       string   `json:"squad_id"`
	SendToCoaches bool     `json:"send_to_coaches"`
	Title         string   `json:"title"`
	Content       string   `json:"content" validate:"required"`
	MessageType   string   `json:"message_type" validate:"omitempty,oneof=training match personal announcement"`
}

type FanOutResponse struct {
	Delivered int `json:"delivered"`
}

type UnreadCountResponse struct {
	Unread int64 `json:"unread"`
}

type MarkReadResponse struct {
	Marked bool `json:"marked"`
}
