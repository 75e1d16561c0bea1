package server

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"propstrike/pkg/lagcomp"
)

const MaxPlayers = 4 // 射击位数量

// Config 服务器配置，启动时从环境变量读取并固定
type Config struct {
	Addr  string `env:"PROPSTRIKE_ADDR" envDefault:":8080"`
	Proto string `env:"PROPSTRIKE_PROTO" envDefault:"kcp"`

	TPS int `env:"PROPSTRIKE_TPS" envDefault:"60"` // 服务器每秒更新次数

	MaxProps         int  `env:"PROPSTRIKE_MAX_PROPS" envDefault:"16"`            // 靶标槽位数
	HistoryDepth     int  `env:"PROPSTRIKE_HISTORY_DEPTH" envDefault:"64"`        // 每靶标历史条数
	MaxLookbackMs    int  `env:"PROPSTRIKE_MAX_LOOKBACK_MS" envDefault:"1000"`    // 最大回溯毫秒数
	CompensateDecoys bool `env:"PROPSTRIKE_COMPENSATE_DECOYS" envDefault:"false"` // 诱饵是否参与补偿

	RoundSeconds int `env:"PROPSTRIKE_ROUND_SECONDS" envDefault:"0"` // 一轮时长，0 表示不限时

	Seed int64 `env:"PROPSTRIKE_SEED"` // 0 表示取当前时间
}

// LoadConfig 从环境变量读取配置
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("读取环境变量失败: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate 校验配置，非法值直接拒绝启动
func (c *Config) Validate() error {
	if c.TPS <= 0 || c.TPS > 240 {
		return fmt.Errorf("TPS 非法: %d", c.TPS)
	}
	if c.MaxProps <= 0 {
		return fmt.Errorf("靶标槽位数非法: %d", c.MaxProps)
	}
	if c.HistoryDepth <= 0 {
		return fmt.Errorf("历史条数非法: %d", c.HistoryDepth)
	}
	if c.MaxLookbackMs <= 0 {
		return fmt.Errorf("最大回溯毫秒数非法: %d", c.MaxLookbackMs)
	}
	if c.RoundSeconds < 0 {
		return fmt.Errorf("一轮时长非法: %d", c.RoundSeconds)
	}
	return nil
}

// TickDuration 单个 tick 的时长
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// LagcompConfig 导出补偿引擎配置
func (c *Config) LagcompConfig() lagcomp.Config {
	return lagcomp.Config{
		MaxEntities: c.MaxProps,
		MaxRecords:  c.HistoryDepth,
		MaxLookback: float64(c.MaxLookbackMs) / 1000.0,
		Epsilon:     lagcomp.DefaultEpsilon,
	}
}

// SeedOrNow 返回配置的种子，未配置时取当前时间
func (c *Config) SeedOrNow() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
