package core

// EventKind is a notification the hub emits to one client.
type EventKind int

const (
	// EventConnected acknowledges registration and carries the client id.
	EventConnected EventKind = iota
	// EventUsernameSet confirms the username change.
	EventUsernameSet
	// EventRoomCreated carries the freshly generated room code.
	EventRoomCreated
	// EventRoomJoined confirms a join and names the partner, if present.
	EventRoomJoined
	// EventPartnerJoined tells the host that a guest arrived.
	EventPartnerJoined
	// EventChat delivers a partner's chat message.
	EventChat
	// EventPartnerTyping signals the partner started typing.
	EventPartnerTyping
	// EventPartnerStopTyping signals the partner stopped typing.
	EventPartnerStopTyping
	// EventPartnerLeft signals the partner left or disconnected.
	EventPartnerLeft
	// EventError carries a business error back to the offending client.
	EventError
)

// Event is sent to exactly one client's outbound channel. Which fields are
// set depends on Kind.
type Event struct {
	Kind     EventKind
	ClientID string  // EventConnected
	Username string  // EventUsernameSet, EventPartnerJoined
	RoomCode string  // EventRoomCreated, EventRoomJoined
	Partner  *string // EventRoomJoined; nil when the room had no named partner
	From     string  // EventChat
	Content  string  // EventChat
	Err      *CoreError
}
