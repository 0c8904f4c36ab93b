package core

import (
	"context"

	"github.com/rs/zerolog"
)

// Hub is the session registry: the single owner of all client records, room
// records, and the client-to-room index. Every mutation arrives as a Command
// on one bounded queue and is applied by Run's goroutine one command at a
// time, so the maps need no locking and no command ever observes a
// half-applied mutation.
type Hub struct {
	commands chan *Command

	clients  map[ClientID]*Client
	rooms    map[RoomCode]*Room
	memberOf map[ClientID]RoomCode

	log *zerolog.Logger
}

// NewHub creates a hub with the given command queue capacity.
func NewHub(logger *zerolog.Logger, queueSize int) *Hub {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Hub{
		commands: make(chan *Command, queueSize),
		clients:  make(map[ClientID]*Client),
		rooms:    make(map[RoomCode]*Room),
		memberOf: make(map[ClientID]RoomCode),
		log:      logger,
	}
}

// Connect enqueues registration of a new client. Must be called exactly once
// per connection, before any other command for that client.
func (h *Hub) Connect(c *Client) {
	h.commands <- &Command{Kind: CommandConnect, ClientID: c.ID, Client: c}
}

// Disconnect enqueues removal of a client. Must be called exactly once when
// the connection ends, however it ends.
func (h *Hub) Disconnect(id ClientID) {
	h.commands <- &Command{Kind: CommandDisconnect, ClientID: id}
}

// Dispatch enqueues a decoded client request. Blocks when the queue is full,
// which backpressures the producing connection.
func (h *Hub) Dispatch(cmd *Command) {
	h.commands <- cmd
}

// Stats returns hub occupancy, read through the command queue so the
// snapshot is consistent with command ordering.
func (h *Hub) Stats(ctx context.Context) (Stats, error) {
	reply := make(chan Stats, 1)
	select {
	case h.commands <- &Command{Kind: CommandStats, Reply: reply}:
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
	select {
	case s := <-reply:
		return s, nil
	case <-ctx.Done():
		return Stats{}, ctx.Err()
	}
}

// Run consumes the command queue until ctx is cancelled. It is the only
// goroutine that touches the hub's maps.
func (h *Hub) Run(ctx context.Context) {
	h.log.Info().Msg("hub started")
	for {
		select {
		case cmd := <-h.commands:
			h.handleCommand(cmd)
		case <-ctx.Done():
			h.log.Info().Msg("hub stopped")
			return
		}
	}
}

func (h *Hub) handleCommand(cmd *Command) {
	switch cmd.Kind {
	case CommandConnect:
		h.handleConnect(cmd.Client)
	case CommandDisconnect:
		h.handleDisconnect(cmd.ClientID)
	case CommandSetUsername:
		h.handleSetUsername(cmd.ClientID, cmd.Username)
	case CommandCreateRoom:
		h.handleCreateRoom(cmd.ClientID)
	case CommandJoinRoom:
		h.handleJoinRoom(cmd.ClientID, cmd.RoomCode)
	case CommandChat:
		h.handleChat(cmd.ClientID, cmd.Content)
	case CommandTyping:
		h.handleTyping(cmd.ClientID)
	case CommandStopTyping:
		h.handleStopTyping(cmd.ClientID)
	case CommandLeaveRoom:
		h.handleLeaveRoom(cmd.ClientID)
	case CommandStats:
		cmd.Reply <- Stats{Clients: len(h.clients), Rooms: len(h.rooms)}
	default:
		h.log.Error().Int("kind", int(cmd.Kind)).Msg("unknown command kind")
	}
}

func (h *Hub) handleConnect(c *Client) {
	if c == nil {
		return
	}
	if _, exists := h.clients[c.ID]; exists {
		h.log.Warn().Stringer("client_id", c.ID).Msg("duplicate connect ignored")
		return
	}
	h.clients[c.ID] = c
	h.log.Info().Stringer("client_id", c.ID).Msg("client connected")
	h.deliver(c, &Event{Kind: EventConnected, ClientID: c.ID.String()})
	h.logTotals()
}

func (h *Hub) handleDisconnect(id ClientID) {
	c, ok := h.clients[id]
	if !ok {
		return
	}

	if code, routed := h.memberOf[id]; routed {
		delete(h.memberOf, id)
		h.removeFromRoom(id, code)
	}

	delete(h.clients, id)
	close(c.Events)

	h.log.Info().Stringer("client_id", id).Msg("client disconnected")
	h.logTotals()
}

func (h *Hub) handleSetUsername(id ClientID, username string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	c.username = username
	h.log.Info().Stringer("client_id", id).Str("username", username).Msg("username set")
	h.deliver(c, &Event{Kind: EventUsernameSet, Username: username})
}

func (h *Hub) handleCreateRoom(id ClientID) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	if !c.HasUsername() {
		h.deliver(c, &Event{Kind: EventError, Err: errUsernameRequired()})
		return
	}
	if _, routed := h.memberOf[id]; routed {
		h.deliver(c, &Event{Kind: EventError, Err: errAlreadyInRoom()})
		return
	}

	// Collisions are practically negligible but must be handled.
	var code RoomCode
	for {
		code = GenerateRoomCode()
		if _, taken := h.rooms[code]; !taken {
			break
		}
	}

	h.rooms[code] = NewRoom(code, id)
	h.memberOf[id] = code

	h.log.Info().Stringer("client_id", id).Stringer("room", code).Msg("room created")
	h.deliver(c, &Event{Kind: EventRoomCreated, RoomCode: code.String()})
}

func (h *Hub) handleJoinRoom(id ClientID, rawCode string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	if !c.HasUsername() {
		h.deliver(c, &Event{Kind: EventError, Err: errUsernameRequired()})
		return
	}
	if _, routed := h.memberOf[id]; routed {
		h.deliver(c, &Event{Kind: EventError, Err: errAlreadyInRoom()})
		return
	}

	code := NormalizeRoomCode(rawCode)
	room, exists := h.rooms[code]
	if !exists {
		h.deliver(c, &Event{Kind: EventError, Err: errRoomNotFound(code)})
		return
	}
	if room.IsFull() {
		h.deliver(c, &Event{Kind: EventError, Err: errRoomFull()})
		return
	}

	hostID := room.Host
	room.AddGuest(id)
	h.memberOf[id] = code

	h.log.Info().Stringer("client_id", id).Stringer("room", code).Msg("room joined")

	// Joiner is notified first, then the host.
	var partner *string
	if host, found := h.clients[hostID]; found && host.HasUsername() {
		name := host.username
		partner = &name
	}
	h.deliver(c, &Event{Kind: EventRoomJoined, RoomCode: code.String(), Partner: partner})

	if host, found := h.clients[hostID]; found {
		h.deliver(host, &Event{Kind: EventPartnerJoined, Username: c.DisplayName()})
	}
}

func (h *Hub) handleChat(id ClientID, content string) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	code, routed := h.memberOf[id]
	if !routed {
		h.deliver(c, &Event{Kind: EventError, Err: errNotInRoom()})
		return
	}

	wasTyping := c.typing
	c.typing = false

	room, exists := h.rooms[code]
	if !exists {
		return
	}
	partnerID := room.Partner(id)
	if partnerID == "" {
		// No partner yet; the message has nowhere to go.
		return
	}
	partner, found := h.clients[partnerID]
	if !found {
		return
	}

	if wasTyping {
		h.deliver(partner, &Event{Kind: EventPartnerStopTyping})
	}
	h.deliver(partner, &Event{Kind: EventChat, From: c.DisplayName(), Content: content})
}

func (h *Hub) handleTyping(id ClientID) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	code, routed := h.memberOf[id]
	if !routed {
		h.deliver(c, &Event{Kind: EventError, Err: errNotInRoom()})
		return
	}
	if c.typing {
		return
	}
	c.typing = true

	h.notifyPartner(id, code, &Event{Kind: EventPartnerTyping})
}

func (h *Hub) handleStopTyping(id ClientID) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	code, routed := h.memberOf[id]
	if !routed {
		h.deliver(c, &Event{Kind: EventError, Err: errNotInRoom()})
		return
	}
	if !c.typing {
		return
	}
	c.typing = false

	h.notifyPartner(id, code, &Event{Kind: EventPartnerStopTyping})
}

func (h *Hub) handleLeaveRoom(id ClientID) {
	c, ok := h.clients[id]
	if !ok {
		return
	}
	code, routed := h.memberOf[id]
	if !routed {
		h.deliver(c, &Event{Kind: EventError, Err: errNotInRoom()})
		return
	}
	delete(h.memberOf, id)

	h.log.Info().Stringer("client_id", id).Stringer("room", code).Msg("room left")
	h.removeFromRoom(id, code)
}

// removeFromRoom applies the single leave path: room.Remove decides between
// guest-clear, host promotion, and deletion. The caller must already have
// dropped the routing entry for id.
func (h *Hub) removeFromRoom(id ClientID, code RoomCode) {
	room, exists := h.rooms[code]
	if !exists {
		return
	}

	partnerID := room.Partner(id)
	if room.Remove(id) {
		delete(h.rooms, code)
		h.log.Debug().Stringer("room", code).Msg("room deleted")
	}

	if partnerID == "" {
		return
	}
	if partner, found := h.clients[partnerID]; found {
		h.deliver(partner, &Event{Kind: EventPartnerLeft})
	}
}

func (h *Hub) notifyPartner(id ClientID, code RoomCode, ev *Event) {
	room, exists := h.rooms[code]
	if !exists {
		return
	}
	partnerID := room.Partner(id)
	if partnerID == "" {
		return
	}
	if partner, found := h.clients[partnerID]; found {
		h.deliver(partner, ev)
	}
}

// deliver sends an event to one client. Delivery failure is logged and
// otherwise ignored; the matching disconnect is expected imminently.
func (h *Hub) deliver(c *Client, ev *Event) {
	if err := c.send(ev); err != nil {
		h.log.Warn().Err(err).Stringer("client_id", c.ID).Int("kind", int(ev.Kind)).
			Msg("event dropped")
	}
}

func (h *Hub) logTotals() {
	h.log.Debug().Int("clients", len(h.clients)).Int("rooms", len(h.rooms)).Msg("hub totals")
}
