package proto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboundDecode(t *testing.T) {
	var in Inbound
	require.NoError(t, json.Unmarshal([]byte(`{"type": "set_username", "username": "Alice"}`), &in))
	assert.Equal(t, TypeSetUsername, in.Type)
	assert.Equal(t, "Alice", in.Username)
}

func TestOutboundEncode(t *testing.T) {
	data, err := json.Marshal(Outbound{Type: TypeConnected, ClientID: "test-id"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"connected","client_id":"test-id"}`, string(data))
}

func TestOutboundErrorEncode(t *testing.T) {
	data, err := json.Marshal(Outbound{Type: TypeError, Code: "room_not_found", Message: "Test"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"error","code":"room_not_found","message":"Test"}`, string(data))
}

func TestOutboundOmitsEmptyPartner(t *testing.T) {
	data, err := json.Marshal(Outbound{Type: TypeRoomJoined, RoomCode: "ABC123"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "partner")

	name := "Alice"
	data, err = json.Marshal(Outbound{Type: TypeRoomJoined, RoomCode: "ABC123", Partner: &name})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"partner":"Alice"`)
}
