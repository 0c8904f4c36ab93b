package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomCreation(t *testing.T) {
	host := NewClientID()
	code := GenerateRoomCode()
	room := NewRoom(code, host)

	assert.Equal(t, code, room.Code)
	assert.Equal(t, host, room.Host)
	assert.Empty(t, room.Guest)
	assert.False(t, room.IsFull())
	assert.Equal(t, 1, room.Participants())
	assert.False(t, room.CreatedAt.IsZero())
}

func TestRoomAddGuest(t *testing.T) {
	host := NewClientID()
	guest := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)

	require.True(t, room.AddGuest(guest))
	assert.True(t, room.IsFull())
	assert.Equal(t, 2, room.Participants())

	// No third participant, ever.
	assert.False(t, room.AddGuest(NewClientID()))
	assert.Equal(t, guest, room.Guest)
}

func TestRoomPartner(t *testing.T) {
	host := NewClientID()
	guest := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)

	assert.Empty(t, room.Partner(host))

	room.AddGuest(guest)

	assert.Equal(t, guest, room.Partner(host))
	assert.Equal(t, host, room.Partner(guest))
	assert.Empty(t, room.Partner(NewClientID()))
}

func TestRoomContains(t *testing.T) {
	host := NewClientID()
	guest := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)

	assert.True(t, room.Contains(host))
	assert.False(t, room.Contains(guest))

	room.AddGuest(guest)

	assert.True(t, room.Contains(host))
	assert.True(t, room.Contains(guest))
	assert.False(t, room.Contains(NewClientID()))
}

func TestRoomGuestLeaves(t *testing.T) {
	host := NewClientID()
	guest := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)
	room.AddGuest(guest)

	empty := room.Remove(guest)

	assert.False(t, empty)
	assert.Empty(t, room.Guest)
	assert.Equal(t, host, room.Host)
}

func TestRoomHostLeavesWithGuest(t *testing.T) {
	host := NewClientID()
	guest := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)
	room.AddGuest(guest)

	empty := room.Remove(host)

	assert.False(t, empty, "room survives through promotion")
	assert.Equal(t, guest, room.Host)
	assert.Empty(t, room.Guest)
}

func TestRoomHostLeavesAlone(t *testing.T) {
	host := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)

	assert.True(t, room.Remove(host))
}

func TestRoomRemoveStranger(t *testing.T) {
	host := NewClientID()
	guest := NewClientID()
	room := NewRoom(GenerateRoomCode(), host)
	room.AddGuest(guest)

	empty := room.Remove(NewClientID())

	assert.False(t, empty)
	assert.Equal(t, host, room.Host)
	assert.Equal(t, guest, room.Guest)
}
