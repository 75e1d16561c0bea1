// Package lagcomp 实现非玩家实体的延迟补偿核心：
// 按槽位记录定容快照历史，在一次交互判定期间把实体临时回溯到
// 请求方延迟对应的过去时刻，判定结束后无条件恢复权威状态。
package lagcomp

import (
	"errors"
	"fmt"
)

// DefaultEpsilon 时间戳精确匹配容差（秒）
const DefaultEpsilon = 1e-4

// ErrBadConfig 配置无效，激活失败
var ErrBadConfig = errors.New("补偿配置无效")

// Config 补偿引擎配置，初始化后固定
type Config struct {
	MaxEntities int     // 实体槽位上限
	MaxRecords  int     // 每实体历史条数
	MaxLookback float64 // 最大回溯秒数（防止伪造延迟无限回溯）
	Epsilon     float64 // 时间戳精确匹配容差（秒）
}

func (c *Config) validate() error {
	if c.MaxEntities <= 0 {
		return fmt.Errorf("%w: MaxEntities=%d", ErrBadConfig, c.MaxEntities)
	}
	if c.MaxRecords <= 0 {
		return fmt.Errorf("%w: MaxRecords=%d", ErrBadConfig, c.MaxRecords)
	}
	if c.MaxLookback <= 0 {
		return fmt.Errorf("%w: MaxLookback=%f", ErrBadConfig, c.MaxLookback)
	}
	if c.Epsilon < 0 {
		return fmt.Errorf("%w: Epsilon=%f", ErrBadConfig, c.Epsilon)
	}
	return nil
}

// StateAccessor 宿主世界的权威状态读写口
// 补偿核心只通过它读取/写回实体的变换与碰撞盒，不触碰其他字段
type StateAccessor interface {
	// ReadState 读取实体当前权威状态，实体不存在返回 false
	ReadState(id int) (Snapshot, bool)
	// WriteState 写回权威状态，实体不存在返回 false
	WriteState(id int, snap Snapshot) bool
}

// slot 单个实体槽位的补偿簿记
type slot struct {
	history *History
	gen     uint64 // 槽位世代，销毁/重用时递增
	session *Session
}

// Manager 延迟补偿管理器
// 仅允许在宿主模拟循环的单一 goroutine 中使用，无内部加锁
type Manager struct {
	cfg     Config
	acc     StateAccessor
	flags   *FlagTable
	slots   []slot
	simTime float64
}

// NewManager 创建管理器，配置无效时返回 ErrBadConfig
func NewManager(cfg Config, acc StateAccessor) (*Manager, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if acc == nil {
		return nil, fmt.Errorf("%w: StateAccessor 为空", ErrBadConfig)
	}

	m := &Manager{
		cfg:   cfg,
		acc:   acc,
		flags: NewFlagTable(cfg.MaxEntities),
		slots: make([]slot, cfg.MaxEntities),
	}
	for i := range m.slots {
		m.slots[i].history = NewHistory(cfg.MaxRecords)
	}
	return m, nil
}

// MaxEntities 槽位上限
func (m *Manager) MaxEntities() int {
	return m.cfg.MaxEntities
}

// SimTime 最近一次采样的模拟时间
func (m *Manager) SimTime() float64 {
	return m.simTime
}

// SetCompensated 启用/停用实体的延迟补偿
func (m *Manager) SetCompensated(id int, on bool) {
	if on {
		m.flags.Set(id, FlagCompensate)
	} else {
		m.flags.Clear(id, FlagCompensate)
	}
}

// SetBlacklisted 将实体加入/移出补偿黑名单
func (m *Manager) SetBlacklisted(id int, on bool) {
	if on {
		m.flags.Set(id, FlagBlacklist)
	} else {
		m.flags.Clear(id, FlagBlacklist)
	}
}

// CheckFlag 查询实体状态位
func (m *Manager) CheckFlag(id int, f Flag) bool {
	return m.flags.Check(id, f)
}

// HistoryLen 实体当前历史条数
func (m *Manager) HistoryLen(id int) int {
	m.flags.mustValid(id, FlagCompensate)
	return m.slots[id].history.Len()
}

// CaptureTick 每个模拟 tick 调用一次，为所有符合条件的实体追加快照
// 实体未移动也照样采样，保持历史在时间上均匀密集；
// 同一 tick 内必须先于任何 Rewind 调用（先采样后读取）
func (m *Manager) CaptureTick(now float64) {
	m.simTime = now
	for id := range m.slots {
		if !m.flags.Check(id, FlagCompensate) || m.flags.Check(id, FlagBlacklist) {
			continue
		}
		live, ok := m.acc.ReadState(id)
		if !ok {
			continue
		}
		live.Timestamp = now
		live.Valid = true
		m.slots[id].history.Append(live)
	}
}

// ResetSlot 实体销毁时重置槽位：清空历史与状态位，递增世代，
// 放弃尚未恢复的会话（避免写到重用该槽位的新实体上）
func (m *Manager) ResetSlot(id int) {
	m.flags.mustValid(id, FlagCompensate)
	s := &m.slots[id]
	s.history.Reset()
	s.gen++
	if s.session != nil {
		s.session.active = false
		s.session = nil
	}
	m.flags.ClearAll(id)
}

// Stats 一次补偿交互的统计信息
type Stats struct {
	TargetTime float64 // 实际使用的回溯目标时刻
	Rewound    int     // 成功回溯的实体数
	Conflicts  int     // 因会话冲突被跳过的实体数
	Clamped    bool    // 延迟被钳制到最大回溯上限
}

// EvaluateCompensated 补偿交互入口
// 按请求方延迟计算回溯目标时刻（钳制到 MaxLookback），回溯 ids 中所有
// 符合条件的实体，执行宿主提供的判定函数，随后无论判定结果如何
// （包括 panic）恢复所有已打开的会话
func (m *Manager) EvaluateCompensated(latency float64, ids []int, evaluate func()) Stats {
	stats := Stats{}

	if latency < 0 {
		latency = 0
	}
	if latency > m.cfg.MaxLookback {
		latency = m.cfg.MaxLookback
		stats.Clamped = true
	}
	stats.TargetTime = m.simTime - latency

	sessions := make([]*Session, 0, len(ids))
	defer func() {
		for _, s := range sessions {
			s.Restore()
		}
	}()

	for _, id := range ids {
		sess, err := m.Rewind(id, stats.TargetTime)
		if err != nil {
			stats.Conflicts++
			continue
		}
		if sess != nil {
			sessions = append(sessions, sess)
		}
	}
	stats.Rewound = len(sessions)

	evaluate()
	return stats
}
