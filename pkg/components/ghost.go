package components

// GhostState 表示幽灵的显隐状态
type GhostState int

const (
	GhostNormal GhostState = iota // 正常显示
	GhostFaded                    // 半透明淡化
)

// GhostComponent 标记玩家实体（幽灵），并存储移动参数
type GhostComponent struct {
	// Speed 跟随光标的线性速度系数
	Speed float64

	// RotationSpeed 朝向移动方向的转向速度系数
	RotationSpeed float64

	// State 当前显隐状态，由 FadeSystem 周期性切换
	State GhostState

	// BaseScale 静止时的基础缩放，移动时在此基础上脉冲放大
	BaseScale float64
}
