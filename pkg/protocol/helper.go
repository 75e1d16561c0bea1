package protocol

import (
	"errors"

	gamev1 "propstrike/api/gen/propstrike/v1"

	"google.golang.org/protobuf/proto"
)

// ========== 客户端消息构造 ==========

// NewJoinRequestPacket 构造加入请求消息包
func NewJoinRequestPacket(playerName string) (*gamev1.Packet, error) {
	req := &gamev1.JoinRequest{
		PlayerName: playerName,
	}

	payload, err := proto.Marshal(req)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_JOIN_REQUEST,
		Payload: payload,
	}, nil
}

// NewFireRequestPacket 构造射击请求消息包
func NewFireRequestPacket(seq int32, aimDir *gamev1.Vector3, clientTime int64, lerpMs int32) (*gamev1.Packet, error) {
	req := &gamev1.FireRequest{
		Seq:        seq,
		AimDir:     aimDir,
		ClientTime: clientTime,
		LerpMs:     lerpMs,
	}

	payload, err := proto.Marshal(req)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_FIRE_REQUEST,
		Payload: payload,
	}, nil
}

// NewPingPacket 构造心跳消息包
func NewPingPacket(clientTime int64) (*gamev1.Packet, error) {
	ping := &gamev1.Ping{
		ClientTime: clientTime,
	}

	payload, err := proto.Marshal(ping)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_PING,
		Payload: payload,
	}, nil
}

// NewReconnectRequestPacket 构造重连请求消息包
func NewReconnectRequestPacket(sessionToken string) (*gamev1.Packet, error) {
	req := &gamev1.ReconnectRequest{
		SessionToken: sessionToken,
	}

	payload, err := proto.Marshal(req)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_RECONNECT_REQUEST,
		Payload: payload,
	}, nil
}

// NewPrefsUpdatePacket 构造偏好更新消息包
func NewPrefsUpdatePacket(lagCompensation bool) (*gamev1.Packet, error) {
	prefs := &gamev1.PrefsUpdate{
		LagCompensation: lagCompensation,
	}

	payload, err := proto.Marshal(prefs)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_PREFS_UPDATE,
		Payload: payload,
	}, nil
}

// ========== 服务器消息构造 ==========

// NewJoinResponsePacket 构造加入响应消息包
func NewJoinResponsePacket(success bool, playerId int32, errorMessage string, tps int32, gameSeed int64, sessionToken string, station int32) (*gamev1.Packet, error) {
	resp := &gamev1.JoinResponse{
		Success:      success,
		PlayerId:     playerId,
		ErrorMessage: errorMessage,
		Tps:          tps,
		GameSeed:     gameSeed,
		SessionToken: sessionToken,
		Station:      station,
	}

	payload, err := proto.Marshal(resp)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE,
		Payload: payload,
	}, nil
}

// NewFireResultPacket 构造射击结果消息包
func NewFireResultPacket(result *gamev1.FireResult) (*gamev1.Packet, error) {
	payload, err := proto.Marshal(result)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_FIRE_RESULT,
		Payload: payload,
	}, nil
}

// NewPongPacket 构造心跳响应消息包
func NewPongPacket(clientTime, serverTime int64, serverFrame int32) (*gamev1.Packet, error) {
	pong := &gamev1.Pong{
		ClientTime:  clientTime,
		ServerTime:  serverTime,
		ServerFrame: serverFrame,
	}

	payload, err := proto.Marshal(pong)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_PONG,
		Payload: payload,
	}, nil
}

// NewServerStatePacket 构造状态广播消息包
func NewServerStatePacket(frameId int32, simTime float64, props []*gamev1.PropState, players []*gamev1.PlayerState) (*gamev1.Packet, error) {
	state := &gamev1.ServerState{
		FrameId: frameId,
		SimTime: simTime,
		Props:   props,
		Players: players,
	}

	payload, err := proto.Marshal(state)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_SERVER_STATE,
		Payload: payload,
	}, nil
}

// NewPlayerLeavePacket 构造玩家离开消息包
func NewPlayerLeavePacket(playerId int32) (*gamev1.Packet, error) {
	leave := &gamev1.PlayerLeave{
		PlayerId: playerId,
	}

	payload, err := proto.Marshal(leave)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE,
		Payload: payload,
	}, nil
}

// NewArenaResetPacket 构造靶场重置消息包
func NewArenaResetPacket(gameSeed int64) (*gamev1.Packet, error) {
	reset := &gamev1.ArenaReset{
		GameSeed: gameSeed,
	}

	payload, err := proto.Marshal(reset)
	if err != nil {
		return nil, err
	}

	return &gamev1.Packet{
		Type:    gamev1.MessageType_MESSAGE_TYPE_ARENA_RESET,
		Payload: payload,
	}, nil
}

// ========== 序列化与反序列化 ==========

// MarshalPacket 将 Packet 对象转换为字节切片
func MarshalPacket(pkt *gamev1.Packet) ([]byte, error) {
	return proto.Marshal(pkt)
}

// UnmarshalPacket 将字节切片转换为 Packet 对象
func UnmarshalPacket(data []byte) (*gamev1.Packet, error) {
	pkt := &gamev1.Packet{}
	err := proto.Unmarshal(data, pkt)
	if err != nil {
		return nil, err
	}
	return pkt, nil
}

// ========== 消息解析辅助 ==========

// ParseJoinRequest 从 Packet 中解析 JoinRequest
func ParseJoinRequest(pkt *gamev1.Packet) (*gamev1.JoinRequest, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_JOIN_REQUEST {
		return nil, errors.New("not a join request message")
	}

	req := &gamev1.JoinRequest{}
	err := proto.Unmarshal(pkt.Payload, req)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ParseJoinResponse 从 Packet 中解析 JoinResponse
func ParseJoinResponse(pkt *gamev1.Packet) (*gamev1.JoinResponse, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_JOIN_RESPONSE {
		return nil, errors.New("not a join response message")
	}

	resp := &gamev1.JoinResponse{}
	err := proto.Unmarshal(pkt.Payload, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ParseFireRequest 从 Packet 中解析 FireRequest
func ParseFireRequest(pkt *gamev1.Packet) (*gamev1.FireRequest, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_FIRE_REQUEST {
		return nil, errors.New("not a fire request message")
	}

	req := &gamev1.FireRequest{}
	err := proto.Unmarshal(pkt.Payload, req)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ParseFireResult 从 Packet 中解析 FireResult
func ParseFireResult(pkt *gamev1.Packet) (*gamev1.FireResult, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_FIRE_RESULT {
		return nil, errors.New("not a fire result message")
	}

	result := &gamev1.FireResult{}
	err := proto.Unmarshal(pkt.Payload, result)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ParsePing 从 Packet 中解析 Ping
func ParsePing(pkt *gamev1.Packet) (*gamev1.Ping, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_PING {
		return nil, errors.New("not a ping message")
	}

	ping := &gamev1.Ping{}
	err := proto.Unmarshal(pkt.Payload, ping)
	if err != nil {
		return nil, err
	}
	return ping, nil
}

// ParsePong 从 Packet 中解析 Pong
func ParsePong(pkt *gamev1.Packet) (*gamev1.Pong, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_PONG {
		return nil, errors.New("not a pong message")
	}

	pong := &gamev1.Pong{}
	err := proto.Unmarshal(pkt.Payload, pong)
	if err != nil {
		return nil, err
	}
	return pong, nil
}

// ParseReconnectRequest 从 Packet 中解析 ReconnectRequest
func ParseReconnectRequest(pkt *gamev1.Packet) (*gamev1.ReconnectRequest, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_RECONNECT_REQUEST {
		return nil, errors.New("not a reconnect request message")
	}

	req := &gamev1.ReconnectRequest{}
	err := proto.Unmarshal(pkt.Payload, req)
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ParsePrefsUpdate 从 Packet 中解析 PrefsUpdate
func ParsePrefsUpdate(pkt *gamev1.Packet) (*gamev1.PrefsUpdate, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_PREFS_UPDATE {
		return nil, errors.New("not a prefs update message")
	}

	prefs := &gamev1.PrefsUpdate{}
	err := proto.Unmarshal(pkt.Payload, prefs)
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

// ParsePlayerLeave 从 Packet 中解析 PlayerLeave
func ParsePlayerLeave(pkt *gamev1.Packet) (*gamev1.PlayerLeave, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_PLAYER_LEAVE {
		return nil, errors.New("not a player leave message")
	}

	leave := &gamev1.PlayerLeave{}
	err := proto.Unmarshal(pkt.Payload, leave)
	if err != nil {
		return nil, err
	}
	return leave, nil
}

// ParseArenaReset 从 Packet 中解析 ArenaReset
func ParseArenaReset(pkt *gamev1.Packet) (*gamev1.ArenaReset, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_ARENA_RESET {
		return nil, errors.New("not an arena reset message")
	}

	reset := &gamev1.ArenaReset{}
	err := proto.Unmarshal(pkt.Payload, reset)
	if err != nil {
		return nil, err
	}
	return reset, nil
}

// ParseServerState 从 Packet 中解析 ServerState
func ParseServerState(pkt *gamev1.Packet) (*gamev1.ServerState, error) {
	if pkt.Type != gamev1.MessageType_MESSAGE_TYPE_SERVER_STATE {
		return nil, errors.New("not a server state message")
	}

	state := &gamev1.ServerState{}
	err := proto.Unmarshal(pkt.Payload, state)
	if err != nil {
		return nil, err
	}
	return state, nil
}
