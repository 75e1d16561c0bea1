package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"propstrike/pkg/lagcomp"
)

func TestNewWorldSpawnsAllSlots(t *testing.T) {
	w := NewWorld(8, 42)
	require.Equal(t, 8, w.MaxProps())

	alive := 0
	w.Props(func(p *Prop) { alive++ })
	require.Equal(t, 8, alive)
}

func TestStepKeepsPropsInBounds(t *testing.T) {
	w := NewWorld(8, 42)

	for i := 0; i < 600; i++ {
		w.Step(1.0 / 60.0)
	}

	w.Props(func(p *Prop) {
		for axis := 0; axis < 3; axis++ {
			lo := w.Bounds.Min[axis] + p.HalfExtents[axis]
			hi := w.Bounds.Max[axis] - p.HalfExtents[axis]
			require.GreaterOrEqual(t, p.Position[axis], lo-1e-9)
			require.LessOrEqual(t, p.Position[axis], hi+1e-9)
		}
	})
	require.InDelta(t, 10.0, w.Time, 1e-6)
}

func TestDestroyAndRespawn(t *testing.T) {
	w := NewWorld(4, 7)

	w.Destroy(0)
	require.Nil(t, w.Prop(0))

	// 延迟未到不重生
	respawned := w.Step(RespawnDelaySeconds / 2)
	require.Empty(t, respawned)
	require.Nil(t, w.Prop(0))

	// 到期后槽位重生，重生列表包含该槽位
	respawned = w.Step(RespawnDelaySeconds)
	require.Equal(t, []int{0}, respawned)
	p := w.Prop(0)
	require.NotNil(t, p)
	require.True(t, p.Alive)
	require.Zero(t, p.Hits)
}

func TestDestroyDeadPropIsNoop(t *testing.T) {
	w := NewWorld(2, 7)
	w.Destroy(0)
	at := w.respawnAt[0]

	// 重复销毁不改写重生时刻
	w.Destroy(0)
	require.Equal(t, at, w.respawnAt[0])

	// 越界下标安全
	w.Destroy(-1)
	w.Destroy(99)
}

func TestResetRespawnsEverySlot(t *testing.T) {
	w := NewWorld(4, 7)
	w.Destroy(0)
	w.Destroy(2)
	w.Step(0.5)
	timeBefore := w.Time

	w.Reset(99)

	// 所有槽位立即存活，挂起的重生安排被清除，时间保持连续
	alive := 0
	w.Props(func(p *Prop) { alive++ })
	require.Equal(t, 4, alive)
	for id := range w.respawnAt {
		require.Zero(t, w.respawnAt[id])
	}
	require.Equal(t, timeBefore, w.Time)
}

func TestStateAccessorRoundTrip(t *testing.T) {
	w := NewWorld(2, 42)

	snap, ok := w.ReadState(0)
	require.True(t, ok)
	require.True(t, snap.Valid)
	require.Equal(t, w.Prop(0).Position, snap.Position)

	// 写回只改变换与碰撞盒，速度与自旋保持
	velBefore := w.Prop(0).Velocity
	override := lagcomp.Snapshot{
		Timestamp:   1.0,
		Position:    mgl64.Vec3{1, 2, 20},
		Rotation:    mgl64.QuatIdent(),
		HalfExtents: mgl64.Vec3{0.3, 0.3, 0.3},
		Valid:       true,
	}
	require.True(t, w.WriteState(0, override))
	require.Equal(t, override.Position, w.Prop(0).Position)
	require.Equal(t, override.HalfExtents, w.Prop(0).HalfExtents)
	require.Equal(t, velBefore, w.Prop(0).Velocity)
}

func TestStateAccessorDeadProp(t *testing.T) {
	w := NewWorld(2, 42)
	w.Destroy(1)

	_, ok := w.ReadState(1)
	require.False(t, ok)
	require.False(t, w.WriteState(1, lagcomp.Snapshot{Valid: true}))
}

func TestShooterEyePositions(t *testing.T) {
	// 四个射击位沿 X 轴对称分布，视线高度一致
	left := ShooterEyePos(0)
	right := ShooterEyePos(3)
	require.InDelta(t, -left.X(), right.X(), 1e-9)
	require.Equal(t, ShooterEyeY, left.Y())
	require.Zero(t, left.Z())
}
