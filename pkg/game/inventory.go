package game

import "github.com/gonewx/spooky/pkg/components"

// Inventory 玩家库存（持久化对象）
//
// 与糖果袋不同，库存记录的是累计收集总量，存入枢纽不会减少它。
// 序列化为 YAML 后通过 SaveManager 持久化
type Inventory struct {
	Candies   int      `yaml:"candies"`   // 累计收集的糖果总数
	RareItems []string `yaml:"rareItems"` // 收集到的稀有物品/特殊糖果名称列表
}

// NewInventory 创建空库存
func NewInventory() *Inventory {
	return &Inventory{
		RareItems: []string{},
	}
}

// AddLoot 按战利品描述符更新库存
// 所有战利品都计一颗糖果；带名称的战利品额外记录名称
func (inv *Inventory) AddLoot(loot components.LootType) {
	inv.Candies++
	switch loot.Kind {
	case components.LootRareItem, components.LootSpecialTreat:
		if loot.Name != "" {
			inv.RareItems = append(inv.RareItems, loot.Name)
		}
	}
}

// CopyFrom 用另一份库存的内容覆盖当前库存
// 加载存档时使用，保持指针不变以免系统持有过期引用
func (inv *Inventory) CopyFrom(other *Inventory) {
	inv.Candies = other.Candies
	inv.RareItems = append(inv.RareItems[:0], other.RareItems...)
}
