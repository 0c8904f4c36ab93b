package core

import (
	"errors"
	"fmt"
)

// Error codes surfaced to clients. These are the wire values.
const (
	ErrCodeUsernameRequired = "username_required"
	ErrCodeRoomNotFound     = "room_not_found"
	ErrCodeRoomFull         = "room_full"
	ErrCodeNotInRoom        = "not_in_room"
	ErrCodeAlreadyInRoom    = "already_in_room"
	ErrCodeInvalidMessage   = "invalid_message"
)

// ErrChannelClosed is returned by a client send when the connection's
// receiving side is gone or stalled. Non-fatal to the hub: the matching
// disconnect command arrives separately.
var ErrChannelClosed = errors.New("client channel closed")

// CoreError is a business error delivered to the offending client inside an
// EventError. The session continues after one of these.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}

func errUsernameRequired() *CoreError {
	return &CoreError{Code: ErrCodeUsernameRequired, Message: "Username is required"}
}

func errRoomNotFound(code RoomCode) *CoreError {
	return &CoreError{Code: ErrCodeRoomNotFound, Message: fmt.Sprintf("Room '%s' not found", code)}
}

func errRoomFull() *CoreError {
	return &CoreError{Code: ErrCodeRoomFull, Message: "Room is full"}
}

func errNotInRoom() *CoreError {
	return &CoreError{Code: ErrCodeNotInRoom, Message: "You are not in a room"}
}

func errAlreadyInRoom() *CoreError {
	return &CoreError{Code: ErrCodeAlreadyInRoom, Message: "You are already in a room"}
}
