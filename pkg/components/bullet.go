package components

// BulletComponent 标记子弹实体，存储飞行参数
// 子弹从幽灵位置射出，沿固定方向匀速飞行，
// 击中气球或飞出世界边界后销毁
type BulletComponent struct {
	Speed float64

	// DirX, DirY 单位方向向量
	DirX float64
	DirY float64
}
