package sim

// 靶场布局
const (
	ArenaHalfWidth = 16.0 // X 半宽
	ArenaHeight    = 8.0  // Y 高度
	ArenaNearZ     = 8.0  // 靶道近端
	ArenaFarZ      = 40.0 // 靶道远端
	ShooterSpacing = 4.0  // 射击位间距
	ShooterEyeY    = 1.6  // 射击位视线高度
)

// 靶标配置
const (
	DefaultDurability   = 3   // 默认耐久（被命中次数）
	RespawnDelaySeconds = 2.0 // 销毁后重生延迟
	PropMinSpeed        = 1.0 // 最小漂移速度（米/秒）
	PropMaxSpeed        = 4.0 // 最大漂移速度
	PropMaxSpinRate     = 2.0 // 最大自旋速率（弧度/秒）
	MaxShotDistance     = 64.0
)
