package server

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"propstrike/pkg/protocol"
)

// GameServer 靶场服务器
type GameServer struct {
	cfg   Config
	arena *Arena

	// 网络
	listener ServerListener

	// 控制
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	shutdown chan struct{}
}

// NewGameServer 创建新的靶场服务器
func NewGameServer(cfg Config) *GameServer {
	ctx, cancel := context.WithCancel(context.Background())

	return &GameServer{
		cfg:      cfg,                 // 服务器配置
		ctx:      ctx,                 // 上下文
		cancel:   cancel,              // 取消函数
		shutdown: make(chan struct{}), // 关闭信号
	}
}

// Start 启动服务器
func (s *GameServer) Start() error {
	log.Printf("启动靶场服务器: %s (%s)", s.cfg.Addr, s.cfg.Proto)

	arena, err := NewArena(s.ctx, s.cfg)
	if err != nil {
		// 补偿配置非法属于致命错误，拒绝激活
		return fmt.Errorf("创建靶场失败: %w", err)
	}
	s.arena = arena

	listener, err := newListener(s.cfg.Proto, s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("监听失败: %w", err)
	}
	s.listener = listener

	log.Printf("服务器监听中: %s", s.cfg.Addr)

	// 启动靶场循环
	s.wg.Add(1)
	go s.arena.Run(&s.wg)

	// 启动连接接受循环
	s.wg.Add(1)
	go s.acceptLoop()

	// 等待关闭信号
	<-s.shutdown

	log.Println("服务器正在关闭...")
	return nil
}

// Shutdown 优雅关闭服务器
func (s *GameServer) Shutdown() {
	log.Println("正在关闭服务器...")

	// 取消上下文
	s.cancel()

	if s.arena != nil {
		s.arena.Shutdown()
	}

	// 关闭监听器
	if s.listener != nil {
		s.listener.Close()
	}

	// 关闭 shutdown 通道
	close(s.shutdown)

	// 等待所有 goroutine 结束
	s.wg.Wait()

	log.Println("服务器已关闭")
}

// acceptLoop 接受客户端连接
func (s *GameServer) acceptLoop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.ctx.Done():
			log.Println("停止接受新连接")
			return
		default:
		}

		conn, err := s.listener.Accept()
		if err != nil {
			select {
			case <-s.ctx.Done():
				return
			default:
				log.Printf("接受连接失败: %v", err)
				continue
			}
		}

		log.Printf("新连接来自: %s", conn.RemoteAddr())

		// 创建连接对象
		connection := NewConnection(conn, s)

		// 启动连接处理
		s.wg.Add(1)
		go connection.Handle(s.ctx, &s.wg)
	}
}

// handleJoinRequest 处理加入请求
func (s *GameServer) handleJoinRequest(conn *Connection, req *JoinEvent) error {
	if s.arena == nil {
		return fmt.Errorf("靶场未初始化")
	}
	return s.arena.Join(conn, req)
}

// handleReconnect 验证会话 Token 并转交靶场
func (s *GameServer) handleReconnect(conn *Connection, req *ReconnectEvent) error {
	if s.arena == nil {
		return fmt.Errorf("靶场未初始化")
	}
	claims, err := VerifySessionToken(req.SessionToken)
	if err != nil {
		return fmt.Errorf("会话 Token 无效: %w", err)
	}
	return s.arena.Reconnect(conn, claims)
}

// handleFireRequest 处理射击请求
func (s *GameServer) handleFireRequest(ev *FireEvent) {
	if s.arena == nil {
		return
	}
	s.arena.EnqueueFire(ev)
}

// handlePrefsUpdate 处理偏好更新
func (s *GameServer) handlePrefsUpdate(ev *PrefsEvent) {
	if s.arena == nil {
		return
	}
	s.arena.EnqueuePrefs(ev)
}

// handlePing 回复心跳
func (s *GameServer) handlePing(conn *Connection, ping *PingEvent) {
	var frame int32
	if s.arena != nil {
		frame = s.arena.Frame()
	}

	packet, err := protocol.NewPongPacket(ping.ClientTime, time.Now().UnixMilli(), frame)
	if err != nil {
		return
	}
	data, err := protocol.MarshalPacket(packet)
	if err != nil {
		return
	}
	_ = conn.Send(data)
}

// removePlayer 移除玩家
func (s *GameServer) removePlayer(playerID int32) {
	if s.arena == nil {
		return
	}
	s.arena.Leave(playerID)
}
