package core

import (
	"testing"
)

// checkRoutingIndex asserts the bidirectional consistency of the routing
// index: every routed client is really in its room, and every room
// participant is routed to that room. Callers must have quiesced the hub
// (a stats round trip) so the loop goroutine is idle.
func checkRoutingIndex(t *testing.T, hub *Hub) {
	t.Helper()

	for id, code := range hub.memberOf {
		room, ok := hub.rooms[code]
		if !ok {
			t.Fatalf("client %s routed to missing room %s", id, code)
		}
		if !room.Contains(id) {
			t.Fatalf("client %s routed to room %s but not a participant", id, code)
		}
	}
	for code, room := range hub.rooms {
		if got := hub.memberOf[room.Host]; got != code {
			t.Fatalf("host %s of room %s routed to %q", room.Host, code, got)
		}
		if room.Guest != "" {
			if got := hub.memberOf[room.Guest]; got != code {
				t.Fatalf("guest %s of room %s routed to %q", room.Guest, code, got)
			}
		}
	}
}

func TestHubRoutingIndexConsistency(t *testing.T) {
	hub := startHub(t)

	alice, bob, _ := pair(t, hub)
	charlie := connect(t, hub, "Charlie")
	code2 := createRoom(t, hub, charlie)

	stats(t, hub)
	checkRoutingIndex(t, hub)

	// Host leaves the pair; guest promoted.
	hub.Dispatch(&Command{Kind: CommandLeaveRoom, ClientID: alice.ID})
	mustEvent(t, bob.Events, EventPartnerLeft)
	stats(t, hub)
	checkRoutingIndex(t, hub)

	// Alice joins Charlie's room as guest.
	hub.Dispatch(&Command{Kind: CommandJoinRoom, ClientID: alice.ID, RoomCode: code2})
	mustEvent(t, alice.Events, EventRoomJoined)
	stats(t, hub)
	checkRoutingIndex(t, hub)

	// Disconnects unwind everything.
	hub.Disconnect(charlie.ID)
	mustEvent(t, alice.Events, EventPartnerLeft)
	hub.Disconnect(alice.ID)
	hub.Disconnect(bob.ID)

	s := stats(t, hub)
	checkRoutingIndex(t, hub)
	if s.Clients != 0 || s.Rooms != 0 {
		t.Fatalf("expected empty hub, got %+v", s)
	}
}
