package core

import (
	"crypto/rand"
	"strings"

	"github.com/google/uuid"
)

// ClientID uniquely identifies one live connection. IDs are never reused.
type ClientID string

// NewClientID returns a random, statistically unique client identifier.
func NewClientID() ClientID {
	return ClientID(uuid.NewString())
}

func (id ClientID) String() string { return string(id) }

// RoomCode is the short shareable token identifying a room.
type RoomCode string

const (
	roomCodeLength   = 6
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateRoomCode draws a random 6-character uppercase alphanumeric code.
// Uniqueness against live rooms is the hub's job; it retries on collision.
func GenerateRoomCode() RoomCode {
	buf := make([]byte, roomCodeLength)
	_, _ = rand.Read(buf)

	code := make([]byte, roomCodeLength)
	for i, b := range buf {
		code[i] = roomCodeAlphabet[int(b)%len(roomCodeAlphabet)]
	}
	return RoomCode(code)
}

// NormalizeRoomCode uppercases a client-supplied code so joins are
// case-insensitive.
func NormalizeRoomCode(raw string) RoomCode {
	return RoomCode(strings.ToUpper(raw))
}

func (c RoomCode) String() string { return string(c) }
