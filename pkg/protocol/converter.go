package protocol

import (
	"github.com/go-gl/mathgl/mgl64"

	gamev1 "propstrike/api/gen/propstrike/v1"
	"propstrike/pkg/sim"
)

// ========== 向量/四元数转换 ==========

// Vec3ToProto 将 mgl64.Vec3 转换为 gamev1.Vector3
func Vec3ToProto(v mgl64.Vec3) *gamev1.Vector3 {
	return &gamev1.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

// ProtoToVec3 将 gamev1.Vector3 转换为 mgl64.Vec3
func ProtoToVec3(v *gamev1.Vector3) mgl64.Vec3 {
	if v == nil {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// QuatToProto 将 mgl64.Quat 转换为 gamev1.Quaternion
func QuatToProto(q mgl64.Quat) *gamev1.Quaternion {
	return &gamev1.Quaternion{W: q.W, X: q.X(), Y: q.Y(), Z: q.Z()}
}

// ProtoToQuat 将 gamev1.Quaternion 转换为 mgl64.Quat
// 空值回退到单位四元数
func ProtoToQuat(q *gamev1.Quaternion) mgl64.Quat {
	if q == nil {
		return mgl64.QuatIdent()
	}
	return mgl64.Quat{W: q.W, V: mgl64.Vec3{q.X, q.Y, q.Z}}
}

// ========== PropClass 转换 ==========

// Proto 枚举保留 0 号 UNSPECIFIED，与 sim 枚举错开一位

// SimPropClassToProto 将 sim.PropClass 转换为 gamev1.PropClass
func SimPropClassToProto(c sim.PropClass) gamev1.PropClass {
	switch c {
	case sim.PropCrate:
		return gamev1.PropClass_PROP_CLASS_CRATE
	case sim.PropBarrel:
		return gamev1.PropClass_PROP_CLASS_BARREL
	case sim.PropDecoy:
		return gamev1.PropClass_PROP_CLASS_DECOY
	default:
		return gamev1.PropClass_PROP_CLASS_UNSPECIFIED
	}
}

// ProtoPropClassToSim 将 gamev1.PropClass 转换为 sim.PropClass
// 如果是 UNSPECIFIED (0)，则默认为木箱
func ProtoPropClassToSim(c gamev1.PropClass) sim.PropClass {
	switch c {
	case gamev1.PropClass_PROP_CLASS_BARREL:
		return sim.PropBarrel
	case gamev1.PropClass_PROP_CLASS_DECOY:
		return sim.PropDecoy
	default:
		return sim.PropCrate
	}
}

// ========== 靶标状态转换 ==========

// SimPropToProto 将 sim.Prop 转换为 gamev1.PropState
func SimPropToProto(p *sim.Prop) *gamev1.PropState {
	if p == nil {
		return nil
	}

	return &gamev1.PropState{
		Id:          int32(p.ID),
		Class:       SimPropClassToProto(p.Class),
		Alive:       p.Alive,
		Position:    Vec3ToProto(p.Position),
		Rotation:    QuatToProto(p.Rotation),
		HalfExtents: Vec3ToProto(p.HalfExtents),
		Hits:        int32(p.Hits),
	}
}

// SimPropsToProto 收集世界中所有存活靶标的状态
func SimPropsToProto(w *sim.World) []*gamev1.PropState {
	props := make([]*gamev1.PropState, 0, w.MaxProps())
	w.Props(func(p *sim.Prop) {
		props = append(props, SimPropToProto(p))
	})
	return props
}
