package sim

import "github.com/go-gl/mathgl/mgl64"

// PropClass 靶标类型
type PropClass int

const (
	PropCrate  PropClass = iota // 标准木箱
	PropBarrel                  // 圆桶（高耐久）
	PropDecoy                   // 诱饵（命中扣分，不参与补偿）
)

// String 返回靶标类型的字符串表示
func (c PropClass) String() string {
	switch c {
	case PropCrate:
		return "crate"
	case PropBarrel:
		return "barrel"
	case PropDecoy:
		return "decoy"
	}
	return "unknown"
}

// Prop 物理靶标（纯逻辑，不包含渲染）
type Prop struct {
	ID    int       // 槽位下标
	Class PropClass // 类型
	Alive bool      // 是否存活

	Position mgl64.Vec3 // 位置（碰撞盒中心）
	Velocity mgl64.Vec3 // 速度（米/秒）
	Rotation mgl64.Quat // 朝向
	SpinAxis mgl64.Vec3 // 自旋轴（单位向量）
	SpinRate float64    // 自旋速率（弧度/秒）

	HalfExtents mgl64.Vec3 // 碰撞盒半尺寸

	Hits       int // 已被命中次数
	Durability int // 耐久：命中达到该值后销毁
}

// Step 推进一个物理步长：积分位置与自旋，撞到场地边界时反弹
func (p *Prop) Step(dt float64, bounds AABB) {
	if !p.Alive {
		return
	}

	p.Position = p.Position.Add(p.Velocity.Mul(dt))

	// 边界反弹：钳回界内并翻转对应速度分量
	for axis := 0; axis < 3; axis++ {
		lo := bounds.Min[axis] + p.HalfExtents[axis]
		hi := bounds.Max[axis] - p.HalfExtents[axis]
		if p.Position[axis] < lo {
			p.Position[axis] = lo
			p.Velocity[axis] = -p.Velocity[axis]
		} else if p.Position[axis] > hi {
			p.Position[axis] = hi
			p.Velocity[axis] = -p.Velocity[axis]
		}
	}

	if p.SpinRate != 0 {
		spin := mgl64.QuatRotate(p.SpinRate*dt, p.SpinAxis)
		p.Rotation = spin.Mul(p.Rotation).Normalize()
	}
}
