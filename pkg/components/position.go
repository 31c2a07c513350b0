package components

// PositionComponent 存储实体的世界坐标
// 世界坐标系以屏幕中心为原点，X 向右，Y 向上
type PositionComponent struct {
	X float64
	Y float64
}
