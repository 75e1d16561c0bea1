package lagcomp

import "github.com/go-gl/mathgl/mgl64"

// Snapshot 实体某一时刻的记录状态，写入历史后不可变
type Snapshot struct {
	Timestamp   float64    // 模拟时间（秒），每实体单调不减
	Position    mgl64.Vec3 // 位置
	Rotation    mgl64.Quat // 朝向
	HalfExtents mgl64.Vec3 // 碰撞盒半尺寸
	Valid       bool
}

// History 单个实体的定容环形快照缓冲
// 通过游标运算保证按逻辑下标读取时时间戳升序（0 为最旧）
type History struct {
	records []Snapshot
	cursor  int // 下一个写入下标
	count   int
}

// NewHistory 创建容量为 capacity 的历史缓冲
func NewHistory(capacity int) *History {
	return &History{records: make([]Snapshot, capacity)}
}

// Len 当前记录数
func (h *History) Len() int {
	return h.count
}

// Cap 容量
func (h *History) Cap() int {
	return len(h.records)
}

// At 按逻辑下标读取，0 为最旧，Len()-1 为最新
func (h *History) At(i int) Snapshot {
	cap := len(h.records)
	oldest := (h.cursor - h.count + cap) % cap
	return h.records[(oldest+i)%cap]
}

// Newest 最新一条记录
func (h *History) Newest() (Snapshot, bool) {
	if h.count == 0 {
		return Snapshot{}, false
	}
	return h.At(h.count - 1), true
}

// Oldest 最旧一条记录
func (h *History) Oldest() (Snapshot, bool) {
	if h.count == 0 {
		return Snapshot{}, false
	}
	return h.At(0), true
}

// Append 追加一条快照，缓冲满时覆盖最旧记录
// 时间戳早于当前最新记录的样本违反单调性，直接丢弃
func (h *History) Append(s Snapshot) bool {
	if newest, ok := h.Newest(); ok && s.Timestamp < newest.Timestamp {
		return false
	}
	h.records[h.cursor] = s
	h.cursor = (h.cursor + 1) % len(h.records)
	if h.count < len(h.records) {
		h.count++
	}
	return true
}

// Reset 清空历史（槽位重置时使用）
func (h *History) Reset() {
	h.cursor = 0
	h.count = 0
}

// QueryKind 查询结果种类
type QueryKind int

const (
	QueryEmpty   QueryKind = iota // 无记录
	QueryExact                    // 单条记录可直接使用（精确命中或钳制到边界）
	QueryBracket                  // 落在相邻两条记录之间，需要插值
)

// QueryResult 历史查询结果
// Exact 时 Before 即为命中记录；Bracket 时 Before/After 为目标时间两侧记录
type QueryResult struct {
	Kind   QueryKind
	Before Snapshot
	After  Snapshot
}

// Query 定位 targetTime 两侧的记录
// 边界策略：早于最旧记录钳制到最旧，晚于最新记录钳制到最新（不做外推）；
// 与某条记录的时间差在 epsilon 内视为精确命中
func (h *History) Query(targetTime, epsilon float64) QueryResult {
	if h.count == 0 {
		return QueryResult{Kind: QueryEmpty}
	}

	oldest := h.At(0)
	newest := h.At(h.count - 1)

	if targetTime <= oldest.Timestamp+epsilon {
		return QueryResult{Kind: QueryExact, Before: oldest}
	}
	if targetTime >= newest.Timestamp-epsilon {
		return QueryResult{Kind: QueryExact, Before: newest}
	}

	// 对逻辑下标二分，找到第一条时间戳大于 targetTime 的记录
	lo, hi := 0, h.count-1
	for lo < hi {
		mid := (lo + hi) / 2
		if h.At(mid).Timestamp > targetTime {
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	after := h.At(lo)
	before := h.At(lo - 1)

	if targetTime-before.Timestamp <= epsilon {
		return QueryResult{Kind: QueryExact, Before: before}
	}
	if after.Timestamp-targetTime <= epsilon {
		return QueryResult{Kind: QueryExact, Before: after}
	}

	return QueryResult{Kind: QueryBracket, Before: before, After: after}
}
