// Package proto defines the JSON message set spoken over the WebSocket.
// Both directions use a flat, type-tagged shape: {"type": "...", ...}.
package proto

// Inbound message types (client to server).
const (
	TypeSetUsername = "set_username"
	TypeCreateRoom  = "create_room"
	TypeJoinRoom    = "join_room"
	TypeChat        = "chat"
	TypeTyping      = "typing"
	TypeStopTyping  = "stop_typing"
	TypeLeaveRoom   = "leave_room"
)

// Outbound message types (server to client).
const (
	TypeConnected         = "connected"
	TypeUsernameSet       = "username_set"
	TypeRoomCreated       = "room_created"
	TypeRoomJoined        = "room_joined"
	TypePartnerJoined     = "partner_joined"
	TypePartnerTyping     = "partner_typing"
	TypePartnerStopTyping = "partner_stop_typing"
	TypePartnerLeft       = "partner_left"
	TypeError             = "error"
	// TypeChat is shared by both directions.
)

// Inbound is any client request. Which fields matter depends on Type.
type Inbound struct {
	Type     string `json:"type"`
	Username string `json:"username,omitempty"`
	RoomCode string `json:"room_code,omitempty"`
	Content  string `json:"content,omitempty"`
}

// Outbound is any server notification. Which fields are set depends on Type.
type Outbound struct {
	Type     string  `json:"type"`
	ClientID string  `json:"client_id,omitempty"`
	Username string  `json:"username,omitempty"`
	RoomCode string  `json:"room_code,omitempty"`
	Partner  *string `json:"partner,omitempty"`
	From     string  `json:"from,omitempty"`
	Content  string  `json:"content,omitempty"`
	Code     string  `json:"code,omitempty"`
	Message  string  `json:"message,omitempty"`
}
