package server

import "github.com/go-gl/mathgl/mgl64"

type EventKind int

const (
	EventUnknown EventKind = iota
	EventJoin
	EventFire
	EventPing
	EventPong
	EventReconnect
	EventPrefs
)

type JoinEvent struct {
	PlayerName string
}

type FireEvent struct {
	PlayerID   int32
	Seq        int32
	AimDir     mgl64.Vec3
	ClientTime int64 // 客户端毫秒时间戳
	LerpMs     int32 // 客户端插值延迟（毫秒）
}

type PingEvent struct {
	ClientTime int64
}

type PongEvent struct {
	ClientTime  int64
	ServerTime  int64
	ServerFrame int32
}

type ReconnectEvent struct {
	SessionToken string
}

type PrefsEvent struct {
	PlayerID        int32
	LagCompensation bool
}

type ServerEvent struct {
	Kind      EventKind
	Join      *JoinEvent
	Fire      *FireEvent
	Ping      *PingEvent
	Pong      *PongEvent
	Reconnect *ReconnectEvent
	Prefs     *PrefsEvent
}
