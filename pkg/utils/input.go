// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState 存储当前帧的输入状态
// 在场景 Update 开头采样一次，之后各系统只读取纯数据，
// 保证模拟核心不直接依赖输入设备
type InputState struct {
	// CursorX, CursorY 光标的屏幕坐标
	CursorX, CursorY int
	// FirePrimary 左键刚刚按下（红色子弹）
	FirePrimary bool
	// FireSecondary 右键刚刚按下（蓝色子弹）
	FireSecondary bool
	// PauseToggled P 键刚刚按下
	PauseToggled bool
	// AdvanceMenu 空格键刚刚按下（菜单确认）
	AdvanceMenu bool
	// SaveRequested / LoadRequested F5 / F9 刚刚按下
	SaveRequested bool
	LoadRequested bool
	// ExitRequested Esc 键刚刚按下
	ExitRequested bool
}

// ReadInputState 采样当前帧的鼠标和键盘输入
func ReadInputState() InputState {
	state := InputState{}
	state.CursorX, state.CursorY = ebiten.CursorPosition()
	state.FirePrimary = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	state.FireSecondary = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	state.PauseToggled = inpututil.IsKeyJustPressed(ebiten.KeyP)
	state.AdvanceMenu = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	state.SaveRequested = inpututil.IsKeyJustPressed(ebiten.KeyF5)
	state.LoadRequested = inpututil.IsKeyJustPressed(ebiten.KeyF9)
	state.ExitRequested = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return state
}
