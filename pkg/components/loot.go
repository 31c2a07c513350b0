package components

// LootKind 表示战利品的种类标签
type LootKind int

const (
	LootCandy        LootKind = iota // 普通糖果（默认）
	LootRareItem                     // 稀有物品（带名称）
	LootSpecialTreat                 // 特殊糖果（带名称）
)

// LootType 是战利品描述符：种类标签加可选名称
// 只有 LootRareItem 和 LootSpecialTreat 使用 Name 字段
type LootType struct {
	Kind LootKind
	Name string
}

// DefaultLoot 返回默认战利品（普通糖果）
func DefaultLoot() LootType {
	return LootType{Kind: LootCandy}
}
