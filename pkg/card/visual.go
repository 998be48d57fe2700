// Package card 实现手牌与牌堆的卡牌布局/动画引擎。
//
// 核心对象是 CardLayout：一个固定边界框内的有序卡牌容器。
// 成员或顺序变化时重新计算所有卡牌的目标位置/缩放，并通过
// tween 驱动从当前状态平滑过渡到目标状态。画布渲染、游戏规则
// 等都是外部协作者，通过接口注入。
package card

// Point 全局坐标系中的一个点
type Point struct {
	X float64
	Y float64
}

// CardVisual 卡面视觉对象（外部协作者）。
// 每个 LayoutChild 包裹恰好一个卡面；布局引擎通过此接口
// 读取卡面的自然尺寸、查询花色、下发共情模式和动画通知。
type CardVisual interface {
	// NaturalSize 返回卡面的自然（未缩放）宽高。
	// 高度非正的卡面被布局排除（保持原有几何状态）。
	NaturalSize() (w, h float64)

	// Suit 返回卡面的花色标识，用于查找对应的打出牌堆锚点
	Suit() string

	// SetEmpathy 切换共情显示模式（以他人视角展示手牌）
	SetEmpathy(enabled bool)

	// TweenStarted 补间开始通知（卡面可借此抬升到兄弟节点之上）
	TweenStarted()

	// TweenFinished 补间结束通知
	TweenFinished()

	// RefreshShadowOffset 刷新抬起/阴影偏移
	RefreshShadowOffset()

	// Draggable 返回卡面当前是否应接受拖拽（委托给游戏规则）
	Draggable() bool
}

// StackFinder 打出牌堆锚点查询（外部协作者）。
// 失误动画的第一段需要飞到对应花色牌堆的绝对位置。
type StackFinder interface {
	// StackLocation 按花色返回牌堆锚点的绝对位置和显示高度。
	// 找不到对应牌堆时 ok 为 false。
	StackLocation(suit string) (pos Point, height float64, ok bool)
}
