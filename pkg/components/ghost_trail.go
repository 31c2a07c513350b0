package components

import "github.com/gonewx/spooky/pkg/utils"

// GhostTrailComponent 幽灵运动残影
// 是幽灵当前精灵姿态的快照克隆，在 0.8 秒内淡出后销毁
type GhostTrailComponent struct {
	// Lifetime 一次性生命周期计时器
	Lifetime utils.Timer
}
