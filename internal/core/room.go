package core

import "time"

// Room pairs up to two clients: the host (creator, or a promoted former
// guest) and an optional guest.
type Room struct {
	Code      RoomCode
	Host      ClientID
	Guest     ClientID // empty when no guest
	CreatedAt time.Time
}

// NewRoom constructs a room with the given code and host, no guest.
func NewRoom(code RoomCode, host ClientID) *Room {
	return &Room{
		Code:      code,
		Host:      host,
		CreatedAt: time.Now(),
	}
}

// IsFull reports whether both slots are taken.
func (r *Room) IsFull() bool {
	return r.Guest != ""
}

// Contains reports whether id is the host or the guest.
func (r *Room) Contains(id ClientID) bool {
	return r.Host == id || (r.Guest != "" && r.Guest == id)
}

// Partner returns the other participant's id, or "" if id is not in the
// room or has no partner.
func (r *Room) Partner(id ClientID) ClientID {
	switch {
	case r.Host == id:
		return r.Guest
	case r.Guest != "" && r.Guest == id:
		return r.Host
	default:
		return ""
	}
}

// AddGuest fills the guest slot. Returns false if the room is full.
func (r *Room) AddGuest(id ClientID) bool {
	if r.IsFull() {
		return false
	}
	r.Guest = id
	return true
}

// Remove takes a participant out of the room and reports whether the room
// is now empty and must be deleted by the hub. A departing host hands the
// room to the guest, if any. This is the only leave path, so promotion and
// deletion eligibility are always decided in one place.
func (r *Room) Remove(id ClientID) (empty bool) {
	switch {
	case r.Host == id:
		if r.Guest == "" {
			return true
		}
		r.Host = r.Guest
		r.Guest = ""
		return false
	case r.Guest != "" && r.Guest == id:
		r.Guest = ""
		return false
	default:
		return false
	}
}

// Participants returns how many clients are in the room (1 or 2).
func (r *Room) Participants() int {
	if r.IsFull() {
		return 2
	}
	return 1
}
