package lagcomp

import "fmt"

// Flag 实体布尔状态位
type Flag int

const (
	FlagCompensate   Flag = iota // 参与延迟补偿
	FlagBlacklist                // 黑名单：永不补偿
	FlagRewound                  // 当前处于回溯状态
	FlagBlockTrigger             // 屏蔽触发器等副作用逻辑
	flagCount
)

// String 返回状态位的字符串表示
func (f Flag) String() string {
	switch f {
	case FlagCompensate:
		return "compensate"
	case FlagBlacklist:
		return "blacklist"
	case FlagRewound:
		return "rewound"
	case FlagBlockTrigger:
		return "block_trigger"
	}
	return "unknown"
}

// FlagTable 按实体槽位索引的定长位集合
// 初始化后不再分配内存，所有操作 O(1)
type FlagTable struct {
	bits [flagCount][]uint64
	max  int
}

// NewFlagTable 创建位表，maxEntities 为槽位上限
func NewFlagTable(maxEntities int) *FlagTable {
	t := &FlagTable{max: maxEntities}
	words := (maxEntities + 63) / 64
	for i := range t.bits {
		t.bits[i] = make([]uint64, words)
	}
	return t
}

// Set 置位
func (t *FlagTable) Set(id int, f Flag) {
	t.mustValid(id, f)
	t.bits[f][id>>6] |= 1 << uint(id&63)
}

// Clear 清位
func (t *FlagTable) Clear(id int, f Flag) {
	t.mustValid(id, f)
	t.bits[f][id>>6] &^= 1 << uint(id&63)
}

// Check 查询
func (t *FlagTable) Check(id int, f Flag) bool {
	t.mustValid(id, f)
	return t.bits[f][id>>6]&(1<<uint(id&63)) != 0
}

// ClearAll 清除某个槽位的所有状态位（槽位重置时使用）
func (t *FlagTable) ClearAll(id int) {
	for f := Flag(0); f < flagCount; f++ {
		t.Clear(id, f)
	}
}

// mustValid 越界属于调用方编程错误，直接 panic
func (t *FlagTable) mustValid(id int, f Flag) {
	if id < 0 || id >= t.max {
		panic(fmt.Sprintf("实体槽位越界: %d (上限 %d)", id, t.max))
	}
	if f < 0 || f >= flagCount {
		panic(fmt.Sprintf("未知状态位: %d", f))
	}
}
