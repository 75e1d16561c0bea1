package lagcomp

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func TestNewManagerValidatesConfig(t *testing.T) {
	world := newFakeWorld()

	cases := []struct {
		name string
		cfg  Config
	}{
		{"零实体", Config{MaxEntities: 0, MaxRecords: 8, MaxLookback: 1}},
		{"零历史", Config{MaxEntities: 4, MaxRecords: 0, MaxLookback: 1}},
		{"零回溯上限", Config{MaxEntities: 4, MaxRecords: 8, MaxLookback: 0}},
		{"负容差", Config{MaxEntities: 4, MaxRecords: 8, MaxLookback: 1, Epsilon: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewManager(tc.cfg, world)
			require.ErrorIs(t, err, ErrBadConfig)
		})
	}

	// 空存取器同样拒绝
	_, err := NewManager(Config{MaxEntities: 4, MaxRecords: 8, MaxLookback: 1}, nil)
	require.ErrorIs(t, err, ErrBadConfig)
}

func TestCaptureTickOnlyEligible(t *testing.T) {
	m, world := newTestManager(t)

	world.states[0] = Snapshot{Position: mgl64.Vec3{1, 0, 0}, Rotation: mgl64.QuatIdent(), Valid: true}
	world.states[1] = Snapshot{Position: mgl64.Vec3{2, 0, 0}, Rotation: mgl64.QuatIdent(), Valid: true}
	world.states[2] = Snapshot{Position: mgl64.Vec3{3, 0, 0}, Rotation: mgl64.QuatIdent(), Valid: true}

	m.SetCompensated(0, true)
	m.SetCompensated(2, true)
	m.SetBlacklisted(2, true)

	m.CaptureTick(0.5)

	require.Equal(t, 1, m.HistoryLen(0))
	require.Equal(t, 0, m.HistoryLen(1)) // 未启用
	require.Equal(t, 0, m.HistoryLen(2)) // 黑名单
	require.Equal(t, 0.5, m.SimTime())
}

func TestCaptureTickStationaryEntity(t *testing.T) {
	// 静止实体也逐 tick 采样，历史在时间上保持密集
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	world.states[0] = Snapshot{Position: mgl64.Vec3{5, 0, 0}, Rotation: mgl64.QuatIdent(), Valid: true}

	for i := 0; i < 4; i++ {
		m.CaptureTick(float64(i) * 0.1)
	}
	require.Equal(t, 4, m.HistoryLen(0))
}

func TestResetSlotClearsEverything(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	m.SetBlacklisted(0, true)
	m.SetBlacklisted(0, false)
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})

	m.ResetSlot(0)

	require.Equal(t, 0, m.HistoryLen(0))
	require.False(t, m.CheckFlag(0, FlagCompensate))
	require.False(t, m.CheckFlag(0, FlagBlacklist))
}

func TestEvaluateCompensatedRoundTrip(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	m.SetCompensated(1, true)

	for i, ts := range []float64{0.0, 0.1, 0.2} {
		world.states[0] = snapAt(ts, float64(i))
		world.states[1] = snapAt(ts, float64(i)*2)
		m.CaptureTick(ts)
	}
	live0 := world.states[0]
	live1 := world.states[1]

	var seen0, seen1 float64
	stats := m.EvaluateCompensated(0.05, []int{0, 1}, func() {
		seen0 = world.states[0].Position.X()
		seen1 = world.states[1].Position.X()
	})

	require.Equal(t, 2, stats.Rewound)
	require.Zero(t, stats.Conflicts)
	require.False(t, stats.Clamped)
	require.InDelta(t, 0.15, stats.TargetTime, 1e-9)

	// 判定函数看到的是回溯后的位置
	require.InDelta(t, 1.5, seen0, 1e-9)
	require.InDelta(t, 3.0, seen1, 1e-9)

	// 判定结束后权威状态完全恢复
	require.Equal(t, live0, world.states[0])
	require.Equal(t, live1, world.states[1])
	require.False(t, m.CheckFlag(0, FlagRewound))
	require.False(t, m.CheckFlag(1, FlagRewound))
}

func TestEvaluateCompensatedClampsLookback(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	capture(m, world, 0, 5.0, mgl64.Vec3{0, 0, 0})

	// 延迟远超上限：目标时刻钳制到 simTime - MaxLookback
	stats := m.EvaluateCompensated(99.0, []int{0}, func() {})
	require.True(t, stats.Clamped)
	require.InDelta(t, 4.0, stats.TargetTime, 1e-9)

	// 负延迟按零处理
	stats = m.EvaluateCompensated(-1.0, []int{0}, func() {})
	require.False(t, stats.Clamped)
	require.InDelta(t, 5.0, stats.TargetTime, 1e-9)
}

func TestEvaluateCompensatedRestoresOnPanic(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})
	live := world.states[0]

	require.Panics(t, func() {
		m.EvaluateCompensated(0.05, []int{0}, func() {
			panic("判定炸了")
		})
	})

	// panic 也不能留下回溯状态
	require.Equal(t, live, world.states[0])
	require.False(t, m.CheckFlag(0, FlagRewound))

	// 槽位未被冲突占用，下一次补偿照常进行
	stats := m.EvaluateCompensated(0.05, []int{0}, func() {})
	require.Equal(t, 1, stats.Rewound)
	require.Zero(t, stats.Conflicts)
}

func TestEvaluateCompensatedCountsConflicts(t *testing.T) {
	m, world := newTestManager(t)
	m.SetCompensated(0, true)
	capture(m, world, 0, 0.0, mgl64.Vec3{0, 0, 0})
	capture(m, world, 0, 0.1, mgl64.Vec3{1, 0, 0})

	// 手动占住会话，模拟嵌套调用
	sess, err := m.Rewind(0, 0.05)
	require.NoError(t, err)
	require.NotNil(t, sess)

	stats := m.EvaluateCompensated(0.05, []int{0}, func() {})
	require.Zero(t, stats.Rewound)
	require.Equal(t, 1, stats.Conflicts)

	sess.Restore()
}
