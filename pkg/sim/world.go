package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"propstrike/pkg/lagcomp"
)

// AABB 轴对齐包围盒
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// DefaultBounds 默认靶道空间：射击位在 z=0 一侧，靶标在近端与远端之间漂移
func DefaultBounds() AABB {
	return AABB{
		Min: mgl64.Vec3{-ArenaHalfWidth, 0, ArenaNearZ},
		Max: mgl64.Vec3{ArenaHalfWidth, ArenaHeight, ArenaFarZ},
	}
}

// World 靶场世界：定长靶标槽位数组 + 场地边界
// 与补偿核心同样只允许在模拟循环的单一 goroutine 中使用
type World struct {
	Bounds AABB
	Time   float64 // 模拟时间（秒）

	props     []Prop
	respawnAt []float64 // 槽位重生时刻，0 表示无待重生
	rng       *rand.Rand
}

// NewWorld 创建靶场并在每个槽位生成一个初始靶标
func NewWorld(maxProps int, seed int64) *World {
	w := &World{
		Bounds:    DefaultBounds(),
		props:     make([]Prop, maxProps),
		respawnAt: make([]float64, maxProps),
		rng:       rand.New(rand.NewSource(seed)),
	}
	for id := range w.props {
		w.spawnProp(id)
	}
	return w
}

// MaxProps 槽位数
func (w *World) MaxProps() int {
	return len(w.props)
}

// Prop 按槽位取靶标，越界或槽位为空返回 nil
func (w *World) Prop(id int) *Prop {
	if id < 0 || id >= len(w.props) || !w.props[id].Alive {
		return nil
	}
	return &w.props[id]
}

// Props 遍历所有存活靶标
func (w *World) Props(fn func(p *Prop)) {
	for i := range w.props {
		if w.props[i].Alive {
			fn(&w.props[i])
		}
	}
}

// Step 推进一个物理步长，并处理到期的靶标重生
// 返回本步长内重生的槽位（宿主据此恢复补偿资格）
func (w *World) Step(dt float64) []int {
	w.Time += dt

	for i := range w.props {
		w.props[i].Step(dt, w.Bounds)
	}

	var respawned []int
	for id, at := range w.respawnAt {
		if at > 0 && w.Time >= at {
			w.respawnAt[id] = 0
			w.spawnProp(id)
			respawned = append(respawned, id)
		}
	}
	return respawned
}

// Reset 用新种子重开一轮：每个槽位立即重生一个全新靶标
// 模拟时间保持连续，历史时间戳的单调性不受影响
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	for id := range w.props {
		w.respawnAt[id] = 0
		w.spawnProp(id)
	}
}

// Destroy 销毁靶标并安排槽位重生
func (w *World) Destroy(id int) {
	if id < 0 || id >= len(w.props) || !w.props[id].Alive {
		return
	}
	w.props[id].Alive = false
	w.respawnAt[id] = w.Time + RespawnDelaySeconds
}

// spawnProp 在槽位上生成一个新靶标（重用槽位下标，状态全新）
func (w *World) spawnProp(id int) {
	class := PropCrate
	durability := DefaultDurability
	switch w.rng.Intn(4) {
	case 0:
		class = PropBarrel
		durability = DefaultDurability * 2
	case 1:
		class = PropDecoy
		durability = 1
	}

	half := mgl64.Vec3{0.5, 0.5, 0.5}
	if class == PropBarrel {
		half = mgl64.Vec3{0.4, 0.6, 0.4}
	}

	speed := PropMinSpeed + w.rng.Float64()*(PropMaxSpeed-PropMinSpeed)
	dir := w.randUnitVec()

	w.props[id] = Prop{
		ID:          id,
		Class:       class,
		Alive:       true,
		Position:    w.randPointInside(half),
		Velocity:    dir.Mul(speed),
		Rotation:    mgl64.QuatIdent(),
		SpinAxis:    w.randUnitVec(),
		SpinRate:    w.rng.Float64() * PropMaxSpinRate,
		HalfExtents: half,
		Durability:  durability,
	}
}

func (w *World) randPointInside(margin mgl64.Vec3) mgl64.Vec3 {
	var p mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		lo := w.Bounds.Min[axis] + margin[axis]
		hi := w.Bounds.Max[axis] - margin[axis]
		p[axis] = lo + w.rng.Float64()*(hi-lo)
	}
	return p
}

func (w *World) randUnitVec() mgl64.Vec3 {
	for {
		v := mgl64.Vec3{
			w.rng.Float64()*2 - 1,
			w.rng.Float64()*2 - 1,
			w.rng.Float64()*2 - 1,
		}
		if l := v.Len(); l > 1e-6 && l <= 1 {
			return v.Mul(1 / l)
		}
	}
}

// ShooterEyePos 第 station 号射击位的视线位置（z=0 一侧，面向 +Z）
func ShooterEyePos(station int) mgl64.Vec3 {
	offset := float64(station) - 1.5
	return mgl64.Vec3{offset * ShooterSpacing, ShooterEyeY, 0}
}

// ReadState 实现 lagcomp.StateAccessor：读取靶标当前权威状态
func (w *World) ReadState(id int) (lagcomp.Snapshot, bool) {
	p := w.Prop(id)
	if p == nil {
		return lagcomp.Snapshot{}, false
	}
	return lagcomp.Snapshot{
		Timestamp:   w.Time,
		Position:    p.Position,
		Rotation:    p.Rotation,
		HalfExtents: p.HalfExtents,
		Valid:       true,
	}, true
}

// WriteState 实现 lagcomp.StateAccessor：写回变换与碰撞盒
// 速度与自旋不属于补偿范围，保持不动
func (w *World) WriteState(id int, snap lagcomp.Snapshot) bool {
	p := w.Prop(id)
	if p == nil {
		return false
	}
	p.Position = snap.Position
	p.Rotation = snap.Rotation
	p.HalfExtents = snap.HalfExtents
	return true
}

// 保证接口实现
var _ lagcomp.StateAccessor = (*World)(nil)

// clampDir 归一化方向向量，零向量返回 false
func clampDir(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < 1e-9 || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}
