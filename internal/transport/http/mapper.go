package http

import (
	"github.com/duowire/duochat-server/internal/core"
	"github.com/duowire/duochat-server/internal/proto"
)

// inboundToCommand maps a decoded client request to a hub command. A non-nil
// proto.Outbound means the request was malformed: it is answered on the spot
// and never reaches the hub.
func inboundToCommand(clientID core.ClientID, in proto.Inbound) (*core.Command, *proto.Outbound) {
	switch in.Type {
	case proto.TypeSetUsername:
		if in.Username == "" {
			return nil, invalidMessage("username is required")
		}
		return &core.Command{Kind: core.CommandSetUsername, ClientID: clientID, Username: in.Username}, nil
	case proto.TypeCreateRoom:
		return &core.Command{Kind: core.CommandCreateRoom, ClientID: clientID}, nil
	case proto.TypeJoinRoom:
		if in.RoomCode == "" {
			return nil, invalidMessage("room_code is required")
		}
		return &core.Command{Kind: core.CommandJoinRoom, ClientID: clientID, RoomCode: in.RoomCode}, nil
	case proto.TypeChat:
		return &core.Command{Kind: core.CommandChat, ClientID: clientID, Content: in.Content}, nil
	case proto.TypeTyping:
		return &core.Command{Kind: core.CommandTyping, ClientID: clientID}, nil
	case proto.TypeStopTyping:
		return &core.Command{Kind: core.CommandStopTyping, ClientID: clientID}, nil
	case proto.TypeLeaveRoom:
		return &core.Command{Kind: core.CommandLeaveRoom, ClientID: clientID}, nil
	default:
		return nil, invalidMessage("unknown message type")
	}
}

func invalidMessage(msg string) *proto.Outbound {
	return &proto.Outbound{
		Type:    proto.TypeError,
		Code:    core.ErrCodeInvalidMessage,
		Message: msg,
	}
}

// outboundFromEvent maps a hub event to its wire shape.
func outboundFromEvent(ev *core.Event) proto.Outbound {
	switch ev.Kind {
	case core.EventConnected:
		return proto.Outbound{Type: proto.TypeConnected, ClientID: ev.ClientID}
	case core.EventUsernameSet:
		return proto.Outbound{Type: proto.TypeUsernameSet, Username: ev.Username}
	case core.EventRoomCreated:
		return proto.Outbound{Type: proto.TypeRoomCreated, RoomCode: ev.RoomCode}
	case core.EventRoomJoined:
		return proto.Outbound{Type: proto.TypeRoomJoined, RoomCode: ev.RoomCode, Partner: ev.Partner}
	case core.EventPartnerJoined:
		return proto.Outbound{Type: proto.TypePartnerJoined, Username: ev.Username}
	case core.EventChat:
		return proto.Outbound{Type: proto.TypeChat, From: ev.From, Content: ev.Content}
	case core.EventPartnerTyping:
		return proto.Outbound{Type: proto.TypePartnerTyping}
	case core.EventPartnerStopTyping:
		return proto.Outbound{Type: proto.TypePartnerStopTyping}
	case core.EventPartnerLeft:
		return proto.Outbound{Type: proto.TypePartnerLeft}
	case core.EventError:
		if ev.Err == nil {
			return proto.Outbound{Type: proto.TypeError, Code: "unknown", Message: "unknown error"}
		}
		return proto.Outbound{Type: proto.TypeError, Code: ev.Err.Code, Message: ev.Err.Message}
	default:
		return proto.Outbound{Type: proto.TypeError, Code: "unknown", Message: "unknown event"}
	}
}
