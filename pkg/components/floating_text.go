package components

import "github.com/gonewx/spooky/pkg/utils"

// FloatingTextComponent 漂浮反馈文本（收集/存入/击中提示）
// 在 1 秒内上升 50 像素并淡出，之后销毁
//
// 同时带有 FullSackNoticeComponent 的文本是常驻提示，
// TransientSystem 会跳过它（由 HouseInteractionSystem 负责移除）
type FloatingTextComponent struct {
	Text string

	// Timer 一次性生命周期计时器
	Timer utils.Timer

	// InitialY 出生时的 Y 坐标，上升动画以此为基准
	InitialY float64
}
