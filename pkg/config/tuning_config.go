package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BurstTier 一圈爆炸粒子的参数
type BurstTier struct {
	Count    int     `yaml:"count"`    // 粒子数量
	MinSpeed float64 `yaml:"minSpeed"` // 最小速度（像素/秒）
	MaxSpeed float64 `yaml:"maxSpeed"` // 最大速度（像素/秒）
	MinScale float64 `yaml:"minScale"` // 最小缩放
	Lifetime float64 `yaml:"lifetime"` // 生命周期（秒）

	// 粒子染色（0-1 通道值）
	TintR float64 `yaml:"tintR"`
	TintG float64 `yaml:"tintG"`
	TintB float64 `yaml:"tintB"`
}

// TuningConfig 可调的玩法参数
// 从 YAML 文件加载；文件缺失或字段缺省时使用默认值
type TuningConfig struct {
	// 幽灵移动参数
	GhostSpeed         float64 `yaml:"ghostSpeed"`         // 跟随光标速度系数
	GhostRotationSpeed float64 `yaml:"ghostRotationSpeed"` // 转向速度系数
	GhostBaseScale     float64 `yaml:"ghostBaseScale"`     // 基础缩放

	// 幽灵悬浮动画
	GhostFloatAmplitude float64 `yaml:"ghostFloatAmplitude"`
	GhostFloatFrequency float64 `yaml:"ghostFloatFrequency"`

	// 气球悬浮动画
	BalloonFloatAmplitude float64 `yaml:"balloonFloatAmplitude"`
	BalloonFloatFrequency float64 `yaml:"balloonFloatFrequency"`

	// 幽灵淡化周期（秒）
	FadePeriod float64 `yaml:"fadePeriod"`

	// 房屋灯光切换
	LightSwitchInterval float64 `yaml:"lightSwitchInterval"` // 切换判定间隔（秒）
	LightFlipChance     float64 `yaml:"lightFlipChance"`     // 每栋房屋的翻转概率

	// 残影生成
	TrailSpawnInterval float64 `yaml:"trailSpawnInterval"` // 生成间隔（秒）
	TrailLifetime      float64 `yaml:"trailLifetime"`      // 残影存活时间（秒）

	// 漂浮文本
	FloatingTextLifetime float64 `yaml:"floatingTextLifetime"` // 存活时间（秒）
	FloatingTextRise     float64 `yaml:"floatingTextRise"`     // 上升距离（像素）

	// 气球爆炸粒子（由内到外三圈）
	BurstTiers []BurstTier `yaml:"burstTiers"`
}

// DefaultTuning 返回默认玩法参数
// 数值与原版设计一致
func DefaultTuning() *TuningConfig {
	return &TuningConfig{
		GhostSpeed:         10.0,
		GhostRotationSpeed: 5.0,
		GhostBaseScale:     0.2,

		GhostFloatAmplitude: 10.0,
		GhostFloatFrequency: 2.0,

		BalloonFloatAmplitude: 15.0,
		BalloonFloatFrequency: 1.5,

		FadePeriod: 3.0,

		LightSwitchInterval: 5.0,
		LightFlipChance:     0.3,

		TrailSpawnInterval: 0.05,
		TrailLifetime:      0.8,

		FloatingTextLifetime: 1.0,
		FloatingTextRise:     50.0,

		BurstTiers: []BurstTier{
			{Count: 12, MinSpeed: 200, MaxSpeed: 300, MinScale: 0.1, Lifetime: 0.5, TintR: 1.0, TintG: 0.9, TintB: 0.3},
			{Count: 8, MinSpeed: 150, MaxSpeed: 250, MinScale: 0.15, Lifetime: 0.7, TintR: 1.0, TintG: 0.8, TintB: 0.0},
			{Count: 6, MinSpeed: 100, MaxSpeed: 200, MinScale: 0.2, Lifetime: 1.0, TintR: 0.9, TintG: 0.7, TintB: 0.0},
		},
	}
}

// LoadTuningConfig 从 YAML 文件加载玩法参数
// 文件不存在时返回默认配置（不报错）；文件存在但解析失败时返回错误
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cfg := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	return cfg, nil
}
