package game

import "github.com/gonewx/spooky/pkg/components"

// EventKind 事件种类
type EventKind int

const (
	// EventLootCollected 房屋互动完成，收集到战利品
	EventLootCollected EventKind = iota
	// EventSackFull 糖果袋刚刚装满
	EventSackFull
	// EventDeposited 糖果已存入南瓜枢纽
	EventDeposited
	// EventBalloonPopped 气球被子弹击中
	EventBalloonPopped
)

// Event 同帧事件记录
// 由状态机系统追加，场景在 tick 末尾排空（用于日志和外部反馈钩子）
type Event struct {
	Kind EventKind

	// Loot 战利品描述符（仅 EventLootCollected 使用）
	Loot components.LootType

	// Amount 数量（仅 EventDeposited 使用，表示存入的糖果数）
	Amount int
}
