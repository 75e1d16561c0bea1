package server

// Session 一条客户端会话的最小接口，Arena 只通过它与连接交互
type Session interface {
	ID() int32
	Send(data []byte) error
	Close()
	CloseWithoutNotify()
	SetPlayerID(id int32)
	RTTMillis() int64
}
