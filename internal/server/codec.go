package server

import (
	"fmt"

	gamev1 "propstrike/api/gen/propstrike/v1"
	"propstrike/pkg/protocol"
)

// DecodePacket 解析服务器收到的数据包
func DecodePacket(data []byte) (*ServerEvent, error) {
	pkt, err := protocol.UnmarshalPacket(data)
	if err != nil {
		return nil, fmt.Errorf("解析包失败: %w", err)
	}

	switch pkt.Type {
	case gamev1.MessageType_MESSAGE_TYPE_JOIN_REQUEST:
		req, err := protocol.ParseJoinRequest(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind: EventJoin,
			Join: &JoinEvent{
				PlayerName: req.PlayerName,
			},
		}, nil

	case gamev1.MessageType_MESSAGE_TYPE_FIRE_REQUEST:
		req, err := protocol.ParseFireRequest(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind: EventFire,
			Fire: &FireEvent{
				Seq:        req.Seq,
				AimDir:     protocol.ProtoToVec3(req.AimDir),
				ClientTime: req.ClientTime,
				LerpMs:     req.LerpMs,
			},
		}, nil

	case gamev1.MessageType_MESSAGE_TYPE_PING:
		ping, err := protocol.ParsePing(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind: EventPing,
			Ping: &PingEvent{ClientTime: ping.ClientTime},
		}, nil

	case gamev1.MessageType_MESSAGE_TYPE_PONG:
		pong, err := protocol.ParsePong(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind: EventPong,
			Pong: &PongEvent{ClientTime: pong.ClientTime, ServerTime: pong.ServerTime, ServerFrame: pong.ServerFrame},
		}, nil

	case gamev1.MessageType_MESSAGE_TYPE_RECONNECT_REQUEST:
		req, err := protocol.ParseReconnectRequest(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind:      EventReconnect,
			Reconnect: &ReconnectEvent{SessionToken: req.SessionToken},
		}, nil

	case gamev1.MessageType_MESSAGE_TYPE_PREFS_UPDATE:
		prefs, err := protocol.ParsePrefsUpdate(pkt)
		if err != nil {
			return nil, err
		}
		return &ServerEvent{
			Kind:  EventPrefs,
			Prefs: &PrefsEvent{LagCompensation: prefs.LagCompensation},
		}, nil

	default:
		return &ServerEvent{Kind: EventUnknown}, nil
	}
}
