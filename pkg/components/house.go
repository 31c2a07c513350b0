package components

import "github.com/gonewx/spooky/pkg/utils"

// HouseState 表示房屋的亮灯状态
type HouseState int

const (
	HouseLit  HouseState = iota // 亮灯，可以互动
	HouseDark                   // 熄灯，互动被跳过
)

// HouseComponent 存储单个房屋的状态
//
// 不变量：LightStatus == (State == HouseLit)
// 两个字段必须一起更新（LightCycleSystem 负责翻转）
type HouseComponent struct {
	State       HouseState
	LightStatus bool

	// Loot 当前房屋提供的战利品描述符
	// 被收集后重置为默认糖果
	Loot LootType

	// InteractionTimer 互动进度计时器（一次性，3秒）
	// 幽灵必须连续停留：离开范围会重置而不是暂停
	InteractionTimer utils.Timer
}
