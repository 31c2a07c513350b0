package components

// FloatAnimationComponent 叠加在基准 Y 之上的正弦悬浮动画
//
// OriginalY 是实体的"静止基准线"：移动系统只更新基准线，
// 悬浮系统在基准线之上叠加偏移，两者互不干扰
type FloatAnimationComponent struct {
	OriginalY float64 // 静止基准 Y 坐标
	Amplitude float64 // 悬浮幅度（像素）
	Frequency float64 // 悬浮频率（弧度/秒）
}
