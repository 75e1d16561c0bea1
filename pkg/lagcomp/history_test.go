package lagcomp

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
)

func snapAt(ts float64, x float64) Snapshot {
	return Snapshot{
		Timestamp:   ts,
		Position:    mgl64.Vec3{x, 0, 0},
		Rotation:    mgl64.QuatIdent(),
		HalfExtents: mgl64.Vec3{0.5, 0.5, 0.5},
		Valid:       true,
	}
}

func TestHistoryAppendAndOrder(t *testing.T) {
	h := NewHistory(4)
	require.Equal(t, 0, h.Len())

	for i := 0; i < 3; i++ {
		require.True(t, h.Append(snapAt(float64(i)*0.1, float64(i))))
	}

	require.Equal(t, 3, h.Len())
	oldest, ok := h.Oldest()
	require.True(t, ok)
	require.Equal(t, 0.0, oldest.Timestamp)
	newest, ok := h.Newest()
	require.True(t, ok)
	require.InDelta(t, 0.2, newest.Timestamp, 1e-12)
}

func TestHistoryOverflowKeepsMostRecent(t *testing.T) {
	// 容量 3 追加 5 条，只保留最后 3 条，且按时间升序
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Append(snapAt(float64(i), float64(i)))
	}

	require.Equal(t, 3, h.Len())
	for i := 0; i < 3; i++ {
		s := h.At(i)
		require.Equal(t, float64(i+2), s.Timestamp)
		require.Equal(t, float64(i+2), s.Position.X())
	}
}

func TestHistoryRejectsTimeRegression(t *testing.T) {
	h := NewHistory(4)
	require.True(t, h.Append(snapAt(1.0, 0)))
	require.False(t, h.Append(snapAt(0.5, 0)))
	require.Equal(t, 1, h.Len())

	// 相同时间戳允许（时间单调不减）
	require.True(t, h.Append(snapAt(1.0, 1)))
	require.Equal(t, 2, h.Len())
}

func TestHistoryQueryEmpty(t *testing.T) {
	h := NewHistory(4)
	res := h.Query(1.0, DefaultEpsilon)
	require.Equal(t, QueryEmpty, res.Kind)
}

func TestHistoryQueryClamping(t *testing.T) {
	h := NewHistory(8)
	for i := 0; i < 5; i++ {
		h.Append(snapAt(float64(i)*0.1, float64(i)))
	}

	// 早于最旧记录：钳制到最旧，不向后外推
	res := h.Query(-5.0, DefaultEpsilon)
	require.Equal(t, QueryExact, res.Kind)
	require.Equal(t, 0.0, res.Before.Timestamp)
	require.Equal(t, 0.0, res.Before.Position.X())

	// 晚于最新记录：钳制到最新，不向前外推
	res = h.Query(99.0, DefaultEpsilon)
	require.Equal(t, QueryExact, res.Kind)
	require.InDelta(t, 0.4, res.Before.Timestamp, 1e-12)
	require.Equal(t, 4.0, res.Before.Position.X())
}

func TestHistoryQueryExactMatch(t *testing.T) {
	h := NewHistory(8)
	for i := 0; i < 5; i++ {
		h.Append(snapAt(float64(i)*0.1, float64(i)))
	}

	// 容差内的时间戳视为精确命中，不插值
	res := h.Query(0.2+1e-5, 1e-4)
	require.Equal(t, QueryExact, res.Kind)
	require.Equal(t, 2.0, res.Before.Position.X())
}

func TestHistoryQueryBracket(t *testing.T) {
	h := NewHistory(8)
	for i := 0; i < 5; i++ {
		h.Append(snapAt(float64(i)*0.1, float64(i)))
	}

	res := h.Query(0.15, DefaultEpsilon)
	require.Equal(t, QueryBracket, res.Kind)
	require.InDelta(t, 0.1, res.Before.Timestamp, 1e-12)
	require.InDelta(t, 0.2, res.After.Timestamp, 1e-12)
}

func TestHistoryQueryBracketAfterWrap(t *testing.T) {
	// 环形覆盖之后查询仍然正确
	h := NewHistory(3)
	for i := 0; i < 7; i++ {
		h.Append(snapAt(float64(i), float64(i)))
	}
	// 剩余记录: t=4,5,6

	res := h.Query(4.5, DefaultEpsilon)
	require.Equal(t, QueryBracket, res.Kind)
	require.Equal(t, 4.0, res.Before.Timestamp)
	require.Equal(t, 5.0, res.After.Timestamp)

	res = h.Query(0.0, DefaultEpsilon)
	require.Equal(t, QueryExact, res.Kind)
	require.Equal(t, 4.0, res.Before.Timestamp)
}

func TestHistoryReset(t *testing.T) {
	h := NewHistory(4)
	h.Append(snapAt(1.0, 0))
	h.Reset()
	require.Equal(t, 0, h.Len())
	res := h.Query(1.0, DefaultEpsilon)
	require.Equal(t, QueryEmpty, res.Kind)
}
