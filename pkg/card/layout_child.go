package card

import (
	"github.com/decker502/hanabi/pkg/tween"
)

// AnimState 卡牌当前所处的动画阶段
type AnimState int

const (
	// AnimIdle 无动画（静止或瞬时吸附后）
	AnimIdle AnimState = iota

	// AnimMisplayTravel 失误动画第一段：飞向打出牌堆锚点
	AnimMisplayTravel

	// AnimSettling 归位动画（普通布局补间，或失误动画第二段）
	AnimSettling
)

// LayoutChild 单张卡牌的布局包装。
//
// 包裹恰好一个卡面视觉对象，持有当前几何状态（相对所属容器的
// 位置、缩放、旋转、不透明度）和至多一个进行中的补间句柄。
// 补间槽位只由所属容器在布局时写入：容器在创建新补间前
// 无条件销毁旧补间，保证任意时刻至多一个补间在驱动同一张卡。
type LayoutChild struct {
	visual CardVisual
	parent *CardLayout

	// 相对所属容器的几何状态
	x, y     float64
	scaleX   float64
	scaleY   float64
	rotation float64 // 度
	opacity  float64
	visible  bool

	draggable bool

	// misplayPending 下一次布局需要先播放失误动画（消费后清除）
	misplayPending bool

	animState AnimState

	// tw 进行中的补间句柄（至多一个），仅由所属容器写入
	tw *tween.Tween
}

// NewLayoutChild 创建一个卡牌布局包装。
// visual 可以为 nil（回放回退期间卡面可能暂缺）。
func NewLayoutChild(visual CardVisual) *LayoutChild {
	return &LayoutChild{
		visual:  visual,
		scaleX:  1,
		scaleY:  1,
		opacity: 1,
		visible: true,
	}
}

// Visual 返回包裹的卡面视觉对象（可能为 nil）
func (c *LayoutChild) Visual() CardVisual {
	return c.visual
}

// Parent 返回当前所属容器（未入容器时为 nil）
func (c *LayoutChild) Parent() *CardLayout {
	return c.parent
}

// Position 返回相对所属容器的坐标
func (c *LayoutChild) Position() (float64, float64) {
	return c.x, c.y
}

// SetPosition 设置相对所属容器的坐标
func (c *LayoutChild) SetPosition(x, y float64) {
	c.x, c.y = x, y
}

// Scale 返回当前缩放
func (c *LayoutChild) Scale() (float64, float64) {
	return c.scaleX, c.scaleY
}

// SetScale 设置缩放
func (c *LayoutChild) SetScale(sx, sy float64) {
	c.scaleX, c.scaleY = sx, sy
}

// Rotation 返回当前旋转（度）
func (c *LayoutChild) Rotation() float64 {
	return c.rotation
}

// SetRotation 设置旋转（度）
func (c *LayoutChild) SetRotation(deg float64) {
	c.rotation = deg
}

// Opacity 返回当前不透明度
func (c *LayoutChild) Opacity() float64 {
	return c.opacity
}

// SetOpacity 设置不透明度
func (c *LayoutChild) SetOpacity(a float64) {
	c.opacity = a
}

// Visible 返回卡牌当前是否可见
func (c *LayoutChild) Visible() bool {
	return c.visible
}

// SetVisible 设置可见性（牌堆叠放逻辑会隐藏被压住的卡）
func (c *LayoutChild) SetVisible(v bool) {
	c.visible = v
}

// AbsolutePosition 返回卡牌在全局坐标系中的位置。
// 所属容器的固定朝向参与换算；未入容器时等于相对坐标。
func (c *LayoutChild) AbsolutePosition() Point {
	if c.parent == nil {
		return Point{X: c.x, Y: c.y}
	}
	return c.parent.toAbsolute(Point{X: c.x, Y: c.y})
}

// SetAbsolutePosition 以全局坐标设置卡牌位置。
// 换算为所属容器的相对坐标后写入，跨容器移动时用于保持
// 卡牌在屏幕上的视觉位置不跳变。
func (c *LayoutChild) SetAbsolutePosition(p Point) {
	if c.parent == nil {
		c.x, c.y = p.X, p.Y
		return
	}
	local := c.parent.toLocal(p)
	c.x, c.y = local.X, local.Y
}

// SetMisplayPending 标记下一次布局先播放失误动画（飞向牌堆再归位）
func (c *LayoutChild) SetMisplayPending() {
	c.misplayPending = true
}

// MisplayPending 返回失误动画标记是否待消费
func (c *LayoutChild) MisplayPending() bool {
	return c.misplayPending
}

// AnimState 返回当前动画阶段
func (c *LayoutChild) AnimState() AnimState {
	return c.animState
}

// Draggable 返回卡牌当前是否接受拖拽输入
func (c *LayoutChild) Draggable() bool {
	return c.draggable
}

// RefreshDraggable 重新计算是否接受拖拽。
// 委托给卡面的规则判定；每次几何状态落定（吸附或补间完成）后调用。
func (c *LayoutChild) RefreshDraggable() {
	if c.visual == nil {
		c.draggable = false
		return
	}
	c.draggable = c.visual.Draggable()
}

// Tween 返回进行中的补间句柄（无补间时为 nil）
func (c *LayoutChild) Tween() *tween.Tween {
	return c.tw
}

// takeTween 取出并销毁当前补间句柄。
// 容器在每次布局为卡牌创建新补间前调用，保证至多一个补间在飞。
func (c *LayoutChild) takeTween() {
	if c.tw != nil {
		c.tw.Kill()
		c.tw = nil
	}
}
