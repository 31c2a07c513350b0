package components

// CandySackComponent 幽灵携带的糖果袋（有容量上限的临时计数器）
//
// 不变量：0 <= Current <= Capacity
// 袋满后继续收集会被忽略（不回绕、不报错）；
// 存入南瓜枢纽后 Current 归零
type CandySackComponent struct {
	Capacity int
	Current  int
}
