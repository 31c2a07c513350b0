package components

import "github.com/gonewx/spooky/pkg/utils"

// FadeEffectComponent 驱动幽灵 Normal/Faded 状态切换的重复计时器
type FadeEffectComponent struct {
	Timer utils.Timer
}
