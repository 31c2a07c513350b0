package components

// 标记组件（marker components）
// 不携带数据，只用于实体查询；每种标记的实体最多存在一个，
// 系统每帧按需查找，找不到时本帧静默跳过

// PumpkinComponent 标记中心南瓜（糖果存放枢纽）
type PumpkinComponent struct{}

// BalloonComponent 标记漂浮的气球南瓜（射击目标）
type BalloonComponent struct{}

// FullSackNoticeComponent 标记"糖果袋已满"提示文本实体
type FullSackNoticeComponent struct{}
