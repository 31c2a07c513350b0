package components

import "github.com/gonewx/spooky/pkg/utils"

// ParticleComponent 爆炸粒子
// 由 TransientSystem 统一推进：按速度移动、按剩余生命周期淡出、
// 计时器完成后销毁实体
type ParticleComponent struct {
	VelocityX float64
	VelocityY float64

	// Lifetime 一次性生命周期计时器
	Lifetime utils.Timer
}
