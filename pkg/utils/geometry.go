package utils

import "math"

// 2D 几何工具函数
// 游戏世界使用以原点为中心的世界坐标系（像素单位）

// Distance 计算两点之间的欧几里得距离
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Normalize 将向量归一化为单位向量
// 零向量返回 (0, 0)，避免除零
func Normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}

// LerpAngle 沿最短弧在两个角度之间插值（弧度）
// 等价于 2D 旋转的球面插值：先把角度差折叠到 (-π, π]，再线性插值
func LerpAngle(from, to, t float64) float64 {
	diff := math.Mod(to-from, 2*math.Pi)
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return from + diff*t
}
