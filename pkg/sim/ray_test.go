package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

// rayWorld 构造一个只含指定靶标的靶场，便于确定性命中测试
func rayWorld(props ...Prop) *World {
	w := NewWorld(len(props), 1)
	for i, p := range props {
		p.ID = i
		w.props[i] = p
	}
	return w
}

func axisBox(pos mgl64.Vec3, half mgl64.Vec3) Prop {
	return Prop{
		Alive:       true,
		Position:    pos,
		Rotation:    mgl64.QuatIdent(),
		HalfExtents: half,
		Durability:  DefaultDurability,
	}
}

func TestRaycastAxisAlignedHit(t *testing.T) {
	w := rayWorld(axisBox(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1}))

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, MaxShotDistance)
	require.True(t, ok)
	require.Equal(t, 0, hit.PropID)
	require.InDelta(t, 9.0, hit.Distance, 1e-9)
	require.InDelta(t, 9.0, hit.Point.Z(), 1e-9)
}

func TestRaycastRotatedBox(t *testing.T) {
	// 绕 Y 轴转 45 度的单位盒：迎面的是棱，命中距离为 10 - sqrt(2)
	box := axisBox(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1})
	box.Rotation = mgl64.QuatRotate(math.Pi/4, mgl64.Vec3{0, 1, 0})
	w := rayWorld(box)

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, MaxShotDistance)
	require.True(t, ok)
	require.InDelta(t, 10-math.Sqrt2, hit.Distance, 1e-9)
}

func TestRaycastMiss(t *testing.T) {
	w := rayWorld(axisBox(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1}))

	// 偏离目标的方向
	_, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, MaxShotDistance)
	require.False(t, ok)

	// 射程不够
	_, ok = w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, 5)
	require.False(t, ok)

	// 零方向向量
	_, ok = w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, MaxShotDistance)
	require.False(t, ok)
}

func TestRaycastSkipsDeadProps(t *testing.T) {
	near := axisBox(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{1, 1, 1})
	near.Alive = false
	far := axisBox(mgl64.Vec3{0, 0, 20}, mgl64.Vec3{1, 1, 1})
	w := rayWorld(near, far)

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, MaxShotDistance)
	require.True(t, ok)
	require.Equal(t, 1, hit.PropID)
	require.InDelta(t, 19.0, hit.Distance, 1e-9)
}

func TestRaycastPicksNearest(t *testing.T) {
	w := rayWorld(
		axisBox(mgl64.Vec3{0, 0, 20}, mgl64.Vec3{1, 1, 1}),
		axisBox(mgl64.Vec3{0, 0, 12}, mgl64.Vec3{1, 1, 1}),
	)

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, MaxShotDistance)
	require.True(t, ok)
	require.Equal(t, 1, hit.PropID)
}

func TestRaycastOriginInsideBox(t *testing.T) {
	w := rayWorld(axisBox(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}))

	hit, ok := w.Raycast(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, MaxShotDistance)
	require.True(t, ok)
	require.Zero(t, hit.Distance)
}
