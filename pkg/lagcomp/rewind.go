package lagcomp

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	// ErrSessionConflict 实体已有活动回溯会话（调用方顺序错误）
	ErrSessionConflict = errors.New("实体已存在活动回溯会话")
)

// Session 一次回溯会话：保存被临时覆盖的权威状态
// 由 Rewind 创建，必须且只会被 Restore 消费一次；每实体同时至多一个
type Session struct {
	m      *Manager
	id     int
	gen    uint64
	saved  Snapshot
	active bool
}

// EntityID 会话对应的实体槽位
func (s *Session) EntityID() int {
	return s.id
}

// Active 会话是否仍持有未恢复的状态
func (s *Session) Active() bool {
	return s != nil && s.active
}

// Rewind 将实体临时回溯到 targetTime 时刻的重建状态
// 不满足补偿条件（历史为空、未启用、黑名单、实体已失效）时返回 (nil, nil)，
// 权威状态不被触碰；同一实体存在活动会话时返回 ErrSessionConflict，不做任何修改
func (m *Manager) Rewind(id int, targetTime float64) (*Session, error) {
	if !m.flags.Check(id, FlagCompensate) || m.flags.Check(id, FlagBlacklist) {
		return nil, nil
	}

	slot := &m.slots[id]
	res := slot.history.Query(targetTime, m.cfg.Epsilon)
	if res.Kind == QueryEmpty {
		return nil, nil
	}

	if slot.session.Active() {
		return nil, ErrSessionConflict
	}

	live, ok := m.acc.ReadState(id)
	if !ok {
		return nil, nil
	}

	var rebuilt Snapshot
	switch res.Kind {
	case QueryExact:
		rebuilt = res.Before
	case QueryBracket:
		rebuilt = interpolate(res.Before, res.After, targetTime)
	}

	sess := &Session{m: m, id: id, gen: slot.gen, saved: live, active: true}
	slot.session = sess

	m.acc.WriteState(id, rebuilt)
	m.flags.Set(id, FlagRewound)
	m.flags.Set(id, FlagBlockTrigger)

	return sess, nil
}

// Restore 将保存的权威状态写回实体并结束会话
// 幂等：会话已结束时为空操作；槽位世代不匹配（实体已销毁/槽位已重用）时
// 放弃写回，避免污染重用该槽位的新实体
func (s *Session) Restore() {
	if !s.Active() {
		return
	}
	s.active = false

	slot := &s.m.slots[s.id]
	if slot.gen != s.gen {
		return
	}

	s.m.acc.WriteState(s.id, s.saved)
	s.m.flags.Clear(s.id, FlagRewound)
	s.m.flags.Clear(s.id, FlagBlockTrigger)
	slot.session = nil
}

// interpolate 在两条相邻快照之间按时间比例重建状态
// 位置与碰撞盒逐分量线性插值，朝向走最短路径球面插值
func interpolate(before, after Snapshot, targetTime float64) Snapshot {
	span := after.Timestamp - before.Timestamp
	if span <= 0 {
		return before
	}
	t := (targetTime - before.Timestamp) / span
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}

	return Snapshot{
		Timestamp:   targetTime,
		Position:    lerpVec3(before.Position, after.Position, t),
		Rotation:    slerpShortest(before.Rotation, after.Rotation, t),
		HalfExtents: lerpVec3(before.HalfExtents, after.HalfExtents, t),
		Valid:       true,
	}
}

func lerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

// slerpShortest 最短路径球面插值
// 四元数 q 与 -q 表示同一旋转，点积为负时翻转一侧避免绕远路
func slerpShortest(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t)
}
