package lagcomp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFlagTableSetClearCheck(t *testing.T) {
	ft := NewFlagTable(128)

	require.False(t, ft.Check(0, FlagCompensate))

	ft.Set(0, FlagCompensate)
	require.True(t, ft.Check(0, FlagCompensate))

	// 各状态位互相独立
	require.False(t, ft.Check(0, FlagBlacklist))
	require.False(t, ft.Check(0, FlagRewound))

	ft.Set(127, FlagBlacklist)
	require.True(t, ft.Check(127, FlagBlacklist))
	require.False(t, ft.Check(126, FlagBlacklist))

	ft.Clear(0, FlagCompensate)
	require.False(t, ft.Check(0, FlagCompensate))

	// 清除不存在的位是空操作
	ft.Clear(0, FlagCompensate)
	require.False(t, ft.Check(0, FlagCompensate))
}

func TestFlagTableClearAll(t *testing.T) {
	ft := NewFlagTable(8)

	ft.Set(3, FlagCompensate)
	ft.Set(3, FlagRewound)
	ft.Set(3, FlagBlockTrigger)
	ft.Set(4, FlagCompensate)

	ft.ClearAll(3)

	require.False(t, ft.Check(3, FlagCompensate))
	require.False(t, ft.Check(3, FlagRewound))
	require.False(t, ft.Check(3, FlagBlockTrigger))

	// 相邻槽位不受影响
	require.True(t, ft.Check(4, FlagCompensate))
}

func TestFlagTableOutOfRangePanics(t *testing.T) {
	ft := NewFlagTable(16)

	require.Panics(t, func() { ft.Set(16, FlagCompensate) })
	require.Panics(t, func() { ft.Check(-1, FlagCompensate) })
	require.Panics(t, func() { ft.Clear(100, FlagBlacklist) })
}
