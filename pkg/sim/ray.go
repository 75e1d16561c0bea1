package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Hit 射线命中结果
type Hit struct {
	PropID   int
	Distance float64
	Point    mgl64.Vec3
}

// Raycast 从 origin 沿 dir 方向做一次命中检测，返回最近命中的靶标
// dir 不要求归一化；maxDist 为最大射程
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDist float64) (Hit, bool) {
	d, ok := clampDir(dir)
	if !ok {
		return Hit{}, false
	}

	best := Hit{PropID: -1, Distance: math.Inf(1)}
	for i := range w.props {
		p := &w.props[i]
		if !p.Alive {
			continue
		}
		dist, hit := rayVsProp(origin, d, p)
		if hit && dist <= maxDist && dist < best.Distance {
			best = Hit{
				PropID:   p.ID,
				Distance: dist,
				Point:    origin.Add(d.Mul(dist)),
			}
		}
	}

	if best.PropID < 0 {
		return Hit{}, false
	}
	return best, true
}

// rayVsProp 射线对有向包围盒的 slab 检测
// 把射线变换到靶标局部坐标系后对 [-HalfExtents, HalfExtents] 求交
func rayVsProp(origin, dir mgl64.Vec3, p *Prop) (float64, bool) {
	inv := p.Rotation.Inverse()
	lo := inv.Rotate(origin.Sub(p.Position))
	ld := inv.Rotate(dir)

	tmin := math.Inf(-1)
	tmax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		he := p.HalfExtents[axis]
		if math.Abs(ld[axis]) < 1e-12 {
			// 射线平行于该轴的两个面，起点不在夹层内则必不相交
			if lo[axis] < -he || lo[axis] > he {
				return 0, false
			}
			continue
		}
		t1 := (-he - lo[axis]) / ld[axis]
		t2 := (he - lo[axis]) / ld[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		// 起点在盒内
		return 0, true
	}
	return tmin, true
}
