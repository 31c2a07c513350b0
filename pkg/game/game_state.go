package game

// GameState 存储一局游戏的全局状态
//
// 架构说明：
//   - 显式上下文结构体，由场景创建并通过构造函数传给各系统，
//     不使用包级全局变量
//   - 每个字段在一个 tick 内只有一个写入者（由固定的系统顺序保证），
//     因此无需加锁
type GameState struct {
	// CursorX, CursorY 光标目标位置（世界坐标），每帧由场景写入
	CursorX float64
	CursorY float64

	// FirePrimary, FireSecondary 本帧的开火指令（红色/蓝色子弹）
	// 场景在采样输入时写入，BulletSystem 读取
	FirePrimary   bool
	FireSecondary bool

	// ElapsedTime 模拟累计运行时间（秒），暂停时不增加
	// 悬浮动画和灯光切换以此为时间基准
	ElapsedTime float64

	// Progress 进度条百分比 [0, 100]
	// 只增不减：当前设计中没有任何路径会降低进度
	Progress float64

	// MeterFull 进度条是否已达到 100%（单向切换，用于"满"染色和开火解锁）
	MeterFull bool

	// Inventory 玩家库存（糖果总数 + 稀有物品），通过事件间接更新
	Inventory *Inventory

	// events 本帧内累积的事件列表，场景在 tick 末尾排空
	events []Event
}

// NewGameState 创建初始游戏状态
func NewGameState() *GameState {
	return &GameState{
		Inventory: NewInventory(),
	}
}

// AddProgress 增加进度条百分比，上限 100
// 到达 100 后 MeterFull 单向置位
func (gs *GameState) AddProgress(amount float64) {
	gs.Progress += amount
	if gs.Progress >= 100 {
		gs.Progress = 100
		gs.MeterFull = true
	}
}

// CanShoot 返回是否允许发射子弹（进度条已满）
func (gs *GameState) CanShoot() bool {
	return gs.Progress >= 100
}

// PushEvent 追加一个本帧事件
// 事件是同帧副作用的记录，不是延迟队列
func (gs *GameState) PushEvent(e Event) {
	gs.events = append(gs.events, e)
}

// DrainEvents 取出并清空本帧事件列表
// 由场景在所有系统运行完毕后调用一次
func (gs *GameState) DrainEvents() []Event {
	events := gs.events
	gs.events = nil
	return events
}
