package lagcomp

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// fakeWorld 测试用的权威状态存取器
type fakeWorld struct {
	states map[int]Snapshot
	writes int
}

func newFakeWorld() *fakeWorld {
	return &fakeWorld{states: make(map[int]Snapshot)}
}

func (w *fakeWorld) ReadState(id int) (Snapshot, bool) {
	s, ok := w.states[id]
	return s, ok
}

func (w *fakeWorld) WriteState(id int, snap Snapshot) bool {
	if _, ok := w.states[id]; !ok {
		return false
	}
	w.states[id] = snap
	w.writes++
	return true
}

func newTestManager(t *testing.T) (*Manager, *fakeWorld) {
	t.Helper()
	world := newFakeWorld()
	m, err := NewManager(Config{
		MaxEntities: 8,
		MaxRecords:  16,
		MaxLookback: 1.0,
		Epsilon:     DefaultEpsilon,
	}, world)
	require.NoError(t, err)
	return m, world
}

// capture 把实体移动到指定位置并采样一次
func capture(m *Manager, world *fakeWorld, id int, ts float64, pos mgl64.Vec3) {
	world.states[id] = Snapshot{
		Timestamp:   ts,
		Position:    pos,
		Rotation:    mgl64.QuatIdent(),
		HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5},
		Valid:       true,
	}
	m.CaptureTick(ts)
}

func TestRewindInterpolatesPosition(t *testing.T) {
	// 规定场景: t={0, 0.1, 0.2} 位置 {(0,0,0),(1,0,0),(2,0,0)}，
	// 回溯到 0.15 应重建出 (1.5, 0, 0)
	m, world := newTestManager(t)
	m.SetCompensated(0, true)

	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})
	capture(m, world, 0, 0.2, mgl64.Vec3{2, 0, 0})

	sess, err := m.Rewind(0, 0.15)
	require.NoError(t, err)
	require.NotNil(t, sess)

	rewound := world.states[0]
	require.InDelta(t, 1.5, rewound.Position.X(), 1e-9)
	require.InDelta(t, 0.0, rewound.Position.Y(), 1e-9)
	require.True(t, m.CheckFlag(0, FlagRewound))
	require.True(t, m.CheckFlag(0, FlagBlockTrigger))

	sess.Restore()
	require.False(t, m.CheckFlag(0, FlagRewound))
}

func TestRewindClampsToOldest(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)

	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})

	// 远早于最旧记录：钳制到最旧，不外推
	sess, err := m.Rewind(0, -5.0)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.Equal(t, 0.0, world.states[0].Position.X())
	sess.Restore()
}

func TestRewindRestoreRoundTrip(t *testing.T) {
	// rewind + restore 后权威状态逐位恢复
	m, world := newTestManager(t)
	m.SetCompensated(0, true)

	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{3, 1, 2})

	live := world.states[0]

	sess, err := m.Rewind(0, 0.05)
	require.NoError(t, err)
	require.NotNil(t, sess)
	require.NotEqual(t, live, world.states[0])

	sess.Restore()
	require.Equal(t, live, world.states[0])
}

func TestRestoreIsIdempotent(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})

	sess, err := m.Rewind(0, 0.05)
	require.NoError(t, err)

	sess.Restore()
	writesAfterFirst := world.writes

	// 第二次 Restore 必须是空操作，不产生新的写入
	sess.Restore()
	require.Equal(t, writesAfterFirst, world.writes)
}

func TestRewindSessionConflict(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})

	sess, err := m.Rewind(0, 0.05)
	require.NoError(t, err)
	require.NotNil(t, sess)

	stateDuring := world.states[0]

	// 未恢复前再次回溯：冲突且不做任何修改
	dup, err := m.Rewind(0, 0.08)
	require.ErrorIs(t, err, ErrSessionConflict)
	require.Nil(t, dup)
	require.Equal(t, stateDuring, world.states[0])

	sess.Restore()

	// 正确配对之后的会话不再冲突
	sess2, err := m.Rewind(0, 0.05)
	require.NoError(t, err)
	require.NotNil(t, sess2)
	sess2.Restore()
}

func TestRewindSkipsIneligible(t *testing.T) {
	m, world := newTestManager(t)

	// 未启用补偿
	capture(m, world, 1, 0.1, mgl64.Vec3{1, 0, 0})
	sess, err := m.Rewind(1, 0.05)
	require.NoError(t, err)
	require.Nil(t, sess)

	// 启用但无历史
	m.SetCompensated(2, true)
	world.states[2] = Snapshot{Valid: true}
	sess, err = m.Rewind(2, 0.05)
	require.NoError(t, err)
	require.Nil(t, sess)

	// 黑名单
	m.SetCompensated(3, true)
	capture(m, world, 3, 0.1, mgl64.Vec3{1, 0, 0})
	m.SetBlacklisted(3, true)
	sess, err = m.Rewind(3, 0.05)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestStaleSessionDoesNotTouchReusedSlot(t *testing.T) {
	// 会话期间实体被销毁、槽位被新实体重用：
	// 过期会话的 Restore 不得写到新实体上
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})

	sess, err := m.Rewind(0, 0.05)
	require.NoError(t, err)
	require.NotNil(t, sess)

	// 实体销毁，槽位重置
	m.ResetSlot(0)
	require.Equal(t, 0, m.HistoryLen(0))
	require.False(t, m.CheckFlag(0, FlagRewound))

	// 新实体重用槽位
	newOccupant := Snapshot{
		Timestamp: 9.0,
		Position:  mgl64.Vec3{42, 0, 0},
		Rotation:  mgl64.QuatIdent(),
		Valid:     true,
	}
	world.states[0] = newOccupant

	sess.Restore()
	require.Equal(t, newOccupant, world.states[0])
	require.False(t, sess.Active())
}

func TestInterpolateEndpointsAndMonotonic(t *testing.T) {
	before := snapAt(1.0, 0)
	after := snapAt(2.0, 10)

	// t=0 恰好等于 before，t=1 恰好等于 after
	require.Equal(t, before.Position, interpolate(before, after, 1.0).Position)
	require.Equal(t, after.Position, interpolate(before, after, 2.0).Position)

	// 位置分量随时间单调
	prev := -1.0
	for _, ts := range []float64{1.0, 1.2, 1.4, 1.6, 1.8, 2.0} {
		x := interpolate(before, after, ts).Position.X()
		require.Greater(t, x, prev)
		prev = x
	}
}

func TestInterpolateRotationShortestPath(t *testing.T) {
	before := Snapshot{
		Timestamp: 0.0,
		Rotation:  mgl64.QuatIdent(),
		Valid:     true,
	}
	after := Snapshot{
		Timestamp: 1.0,
		Rotation:  mgl64.QuatRotate(math.Pi/2, mgl64.Vec3{0, 1, 0}),
		Valid:     true,
	}

	mid := interpolate(before, after, 0.5)

	// 中点应为绕 Y 轴 45 度
	want := mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})
	gotFwd := mid.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	wantFwd := want.Rotate(mgl64.Vec3{0, 0, 1})
	require.InDelta(t, wantFwd.X(), gotFwd.X(), 1e-9)
	require.InDelta(t, wantFwd.Y(), gotFwd.Y(), 1e-9)
	require.InDelta(t, wantFwd.Z(), gotFwd.Z(), 1e-9)

	// 同一旋转的相反手性表示也必须走最短路径
	afterNeg := after
	afterNeg.Rotation = after.Rotation.Scale(-1)
	midNeg := interpolate(before, afterNeg, 0.5)
	gotFwdNeg := midNeg.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	require.InDelta(t, wantFwd.X(), gotFwdNeg.X(), 1e-9)
	require.InDelta(t, wantFwd.Z(), gotFwdNeg.Z(), 1e-9)
}
