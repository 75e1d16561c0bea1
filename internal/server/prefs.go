package server

import "sync"

// PrefsStore 按玩家名保存的客户端偏好（类似 cookie 的服务端存档）
// 对编排器而言是只读输入；断线重连或重新加入时偏好仍然生效
type PrefsStore struct {
	mu     sync.RWMutex
	byName map[string]bool // 玩家名 -> 是否启用延迟补偿
}

// NewPrefsStore 创建偏好存储
func NewPrefsStore() *PrefsStore {
	return &PrefsStore{byName: make(map[string]bool)}
}

// LagCompensation 查询玩家是否启用延迟补偿，未设置过默认启用
func (s *PrefsStore) LagCompensation(playerName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if enabled, ok := s.byName[playerName]; ok {
		return enabled
	}
	return true
}

// Has 玩家是否已保存过偏好
func (s *PrefsStore) Has(playerName string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byName[playerName]
	return ok
}

// SetLagCompensation 更新玩家的补偿偏好
func (s *PrefsStore) SetLagCompensation(playerName string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byName[playerName] = enabled
}
