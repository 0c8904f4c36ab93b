package core

// CommandKind describes what a connection wants the hub to do.
type CommandKind int

const (
	// CommandConnect registers a new client with the hub.
	CommandConnect CommandKind = iota
	// CommandDisconnect removes a client and cleans up its room membership.
	CommandDisconnect
	// CommandSetUsername sets the client's display name.
	CommandSetUsername
	// CommandCreateRoom creates a new room with the client as host.
	CommandCreateRoom
	// CommandJoinRoom joins an existing room by code.
	CommandJoinRoom
	// CommandChat delivers a chat message to the client's partner.
	CommandChat
	// CommandTyping marks the client as typing.
	CommandTyping
	// CommandStopTyping clears the client's typing state.
	CommandStopTyping
	// CommandLeaveRoom leaves the current room.
	CommandLeaveRoom
	// CommandStats reports live client/room counts on Reply.
	CommandStats
)

// Command is a single request bound for the hub's serialized loop. Which
// fields are meaningful depends on Kind.
type Command struct {
	Kind     CommandKind
	ClientID ClientID
	Client   *Client // CommandConnect only
	Username string  // CommandSetUsername
	RoomCode string  // CommandJoinRoom, raw client input
	Content  string  // CommandChat
	Reply    chan Stats // CommandStats
}

// Stats is a point-in-time snapshot of hub occupancy.
type Stats struct {
	Clients int `json:"clients"`
	Rooms   int `json:"rooms"`
}
