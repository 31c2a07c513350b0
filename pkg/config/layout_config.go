package config

// 布局配置常量
// 本文件定义了游戏场景中的布局参数，包括房屋网格、互动范围等
// 所有坐标使用"世界坐标系"（以屏幕中心为原点，像素单位）

// House Grid Configuration (房屋网格配置)
const (
	// GridRows 房屋网格的行数
	GridRows = 3

	// GridColumns 房屋网格的列数
	GridColumns = 3

	// GridSpacing 相邻房屋之间的间距（像素）
	GridSpacing = 300.0

	// 网格以原点为中心；中心格子 (1,1) 留给南瓜枢纽，不生成房屋
)

// Interaction Range Configuration (互动范围配置)
const (
	// HouseInteractionRange 幽灵与房屋互动的触发距离
	HouseInteractionRange = 100.0

	// DepositRange 幽灵向南瓜枢纽存入糖果的触发距离
	DepositRange = 100.0

	// BulletHitRadius 子弹命中气球的判定半径
	BulletHitRadius = 50.0

	// WorldDespawnBound 子弹距原点超过此距离后被清理（脱靶回收）
	WorldDespawnBound = 1000.0
)

// Gameplay Constants (玩法常量)
const (
	// CandySackCapacity 糖果袋容量
	// 满袋存入贡献 25% 进度，恰好 4 满袋填满进度条
	CandySackCapacity = 10

	// HouseInteractionDuration 房屋互动所需的连续停留时间（秒）
	HouseInteractionDuration = 3.0

	// DepositSlicePercent 满袋存入贡献的进度百分比
	DepositSlicePercent = 25.0

	// BulletSpeed 子弹飞行速度（像素/秒）
	BulletSpeed = 500.0
)

// Screen Configuration (屏幕配置)
const (
	// ScreenWidth, ScreenHeight 逻辑屏幕尺寸
	ScreenWidth  = 800
	ScreenHeight = 600
)

// GetHouseGridPositions 计算所有房屋的世界坐标
// 网格以原点为中心，跳过中心格子（留给南瓜）
// 返回: 各房屋的 (x, y) 坐标对
func GetHouseGridPositions() [][2]float64 {
	startX := -(float64(GridColumns-1) * GridSpacing) / 2.0
	startY := -(float64(GridRows-1) * GridSpacing) / 2.0

	positions := make([][2]float64, 0, GridRows*GridColumns-1)
	for row := 0; row < GridRows; row++ {
		for col := 0; col < GridColumns; col++ {
			if row == GridRows/2 && col == GridColumns/2 {
				continue
			}
			x := startX + float64(col)*GridSpacing
			y := startY + float64(row)*GridSpacing
			positions = append(positions, [2]float64{x, y})
		}
	}
	return positions
}
