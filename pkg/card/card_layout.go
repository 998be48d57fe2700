package card

import (
	"fmt"
	"math"

	"github.com/decker502/hanabi/pkg/config"
	"github.com/decker502/hanabi/pkg/tween"
	"github.com/decker502/hanabi/pkg/utils"
)

// Alignment 容器内的水平对齐方式
type Alignment int

const (
	// AlignLeft 从左边界开始排列（默认）
	AlignLeft Alignment = iota

	// AlignCenter 剩余空间左右均分
	AlignCenter
)

// Options 容器的构造参数。
// Width 和 Height 必须为正数，缺失属于调用方的编程错误。
type Options struct {
	// X, Y 容器左上角的绝对坐标
	X float64
	Y float64

	// Width, Height 布局边界框（必须为正数）
	Width  float64
	Height float64

	// Rotation 容器的初始朝向（顺时针角度）。
	// 构造后不变，与场景中的实时旋转分开保存，供绝对坐标换算使用。
	Rotation float64

	// Align 对齐方式，默认 AlignLeft
	Align Alignment

	// Reverse 从右向左镜像布局
	Reverse bool
}

// LayoutOptions 一次布局的全局开关。
// 显式传入而不读取环境状态，便于测试。
type LayoutOptions struct {
	// Instant 跳过补间系统，同步吸附到目标几何状态
	Instant bool

	// CompressionLimit Keldon 桌面模式，使用更紧的间距上限
	CompressionLimit bool

	// SkipAnimation 速通/观战快进：补间机制照常运行但立即完成
	SkipAnimation bool
}

// CardLayout 固定边界框内的有序卡牌容器。
//
// 容器独占子卡牌的槽位归属和布局目标几何状态；成员或顺序变化时
// 必须整体重排（没有局部更新路径）。子卡牌的顺序即显示层级，
// 也决定布局方向。
type CardLayout struct {
	x, y   float64
	width  float64
	height float64

	// origRotation 构造时固定的朝向（顺时针角度）。
	// 绝对中心/坐标换算始终用它，不受场景实时旋转影响。
	origRotation float64

	align   Alignment
	reverse bool
	empathy bool

	children []*LayoutChild

	tweens *tween.Manager
	stacks StackFinder
}

// NewCardLayout 创建卡牌容器。
//
// 参数：
//   - opts: 几何与对齐参数（Width/Height 必须为正数）
//   - tm: 补间调度器（容器为子卡牌创建的所有补间都注册到这里）
//   - stacks: 打出牌堆锚点查询，可为 nil（失误动画将直接归位）
//
// 返回：
//   - *CardLayout: 容器实例
//   - error: 宽高非法时返回错误（编程错误，不可恢复）
func NewCardLayout(opts Options, tm *tween.Manager, stacks StackFinder) (*CardLayout, error) {
	if !(opts.Width > 0) || !(opts.Height > 0) {
		return nil, fmt.Errorf("card layout requires positive width and height (got %vx%v)",
			opts.Width, opts.Height)
	}
	if tm == nil {
		return nil, fmt.Errorf("card layout requires a tween manager")
	}

	return &CardLayout{
		x:            opts.X,
		y:            opts.Y,
		width:        opts.Width,
		height:       opts.Height,
		origRotation: opts.Rotation,
		align:        opts.Align,
		reverse:      opts.Reverse,
		children:     make([]*LayoutChild, 0),
		tweens:       tm,
		stacks:       stacks,
	}, nil
}

// X 返回容器左上角的绝对 X 坐标
func (l *CardLayout) X() float64 { return l.x }

// Y 返回容器左上角的绝对 Y 坐标
func (l *CardLayout) Y() float64 { return l.y }

// Width 返回布局边界框宽度
func (l *CardLayout) Width() float64 { return l.width }

// Height 返回布局边界框高度
func (l *CardLayout) Height() float64 { return l.height }

// Rotation 返回构造时固定的朝向（顺时针角度）
func (l *CardLayout) Rotation() float64 { return l.origRotation }

// Empathy 返回共情模式是否开启
func (l *CardLayout) Empathy() bool { return l.empathy }

// Children 返回子卡牌的有序切片（显示顺序）。
// 调用方不应修改返回的切片。
func (l *CardLayout) Children() []*LayoutChild {
	return l.children
}

// AddChild 将卡牌追加/转移到本容器并整体重排。
//
// 先捕获卡牌当前的全局位置，脱离原容器、挂入本容器后再恢复，
// 保证插入瞬间卡牌不跳变（随后的布局补间会从原地开始移动）。
// 共情模式开启时立即下发到新卡牌的卡面。
func (l *CardLayout) AddChild(c *LayoutChild, opts LayoutOptions) {
	abs := c.AbsolutePosition()

	if old := c.parent; old != nil && old != l {
		old.detach(c)
		old.DoLayout(opts)
	} else if old == l {
		l.detach(c)
	}

	c.parent = l
	l.children = append(l.children, c)
	c.SetAbsolutePosition(abs)

	if l.empathy && c.visual != nil {
		c.visual.SetEmpathy(true)
	}

	l.DoLayout(opts)
}

// RemoveChild 将卡牌移出容器并整体重排。
// 卡牌保持全局位置不变（相对坐标换算为全局坐标）。
func (l *CardLayout) RemoveChild(c *LayoutChild, opts LayoutOptions) {
	if c.parent != l {
		return
	}
	abs := c.AbsolutePosition()
	l.detach(c)
	c.parent = nil
	c.x, c.y = abs.X, abs.Y

	l.DoLayout(opts)
}

// SetChildIndex 调整卡牌在容器内的顺序并整体重排。
// 顺序即显示层级；渲染层触发的任何换序都必须走这里，
// 容器没有局部更新路径。
func (l *CardLayout) SetChildIndex(c *LayoutChild, index int, opts LayoutOptions) {
	if c.parent != l {
		return
	}
	l.detach(c)

	if index < 0 {
		index = 0
	}
	if index > len(l.children) {
		index = len(l.children)
	}
	l.children = append(l.children, nil)
	copy(l.children[index+1:], l.children[index:])
	l.children[index] = c

	l.DoLayout(opts)
}

// detach 从子节点切片移除卡牌，不触发重排
func (l *CardLayout) detach(c *LayoutChild) {
	for i, other := range l.children {
		if other == c {
			l.children = append(l.children[:i], l.children[i+1:]...)
			return
		}
	}
}

// SetEmpathy 切换共情模式并级联到所有子卡牌的卡面。
// 状态未变化时不做任何事；回放回退期间卡面可能暂缺，静默跳过。
func (l *CardLayout) SetEmpathy(enabled bool) {
	if l.empathy == enabled {
		return
	}
	l.empathy = enabled

	for _, c := range l.children {
		if c.visual == nil {
			continue
		}
		c.visual.SetEmpathy(enabled)
	}
}

// DoLayout 重新计算所有子卡牌的目标几何状态并调度过渡动画。
//
// 算法：
//  1. 按容器高度等比缩放每张卡（s_i = H / 自然高度），累计占用宽度
//  2. 剩余宽度均分为间距，间距有上限（压缩模式下更紧）；
//     间距为负表示溢出，卡牌允许视觉重叠，不另行截断
//  3. 居中对齐时剩余空间左右均分；镜像布局时锚点翻到右边界
//  4. 按顺序推进游标，为每张卡创建归位补间（或瞬时吸附）；
//     带失误标记的卡先飞向对应牌堆锚点，完成后再归位
func (l *CardLayout) DoLayout(opts LayoutOptions) {
	n := len(l.children)

	// 第一遍：计算每张卡的缩放和总占用宽度
	// 自然高度非正的卡（卡面暂缺等）完全不参与间距计算
	scales := make([]float64, n)
	widths := make([]float64, n)
	usedWidth := 0.0
	for i, c := range l.children {
		w, h := 0.0, 0.0
		if c.visual != nil {
			w, h = c.visual.NaturalSize()
		}
		widths[i] = w
		if h > 0 {
			scales[i] = l.height / h
			usedWidth += scales[i] * w
		}
	}

	spacing := 0.0
	if n > 1 {
		spacing = (l.width - usedWidth) / float64(n-1)
	}
	maxSpacing := config.HandSpacingCapRatio * usedWidth
	if opts.CompressionLimit {
		maxSpacing = config.KeldonSpacingCapRatio * usedWidth
	}
	if spacing > maxSpacing {
		spacing = maxSpacing
	}
	usedWidth += spacing * float64(n-1)

	// 起始偏移：居中对齐时均分剩余空间，镜像布局时锚点翻转
	x0 := 0.0
	if l.align == AlignCenter && usedWidth < l.width {
		x0 = (l.width - usedWidth) / 2
	}
	if l.reverse {
		x0 = l.width - x0
	}

	dir := 1.0
	if l.reverse {
		dir = -1.0
	}

	// 第二遍：推进游标，逐卡下发目标状态
	x := x0
	for i, c := range l.children {
		// 撤销牌堆叠放逻辑留下的隐藏状态
		c.visible = true

		scaledWidth := scales[i] * widths[i]

		// 自然高度非正的卡保持原有几何状态，只推进游标
		if scales[i] > 0 {
			// 旧补间无条件销毁，保证至多一个补间在飞
			c.takeTween()

			newX := x
			if l.reverse {
				// 镜像布局下游标对齐的是卡牌的远端而不是近端
				newX = x - scaledWidth
			}

			if opts.Instant {
				l.snapChild(c, newX, scales[i])
			} else {
				l.animateChild(c, newX, scales[i], opts)
			}
		}

		x += (scaledWidth + spacing) * dir
	}
}

// snapChild 同步吸附到目标几何状态，完全绕过补间系统
func (l *CardLayout) snapChild(c *LayoutChild, newX, scale float64) {
	c.x, c.y = newX, 0
	c.scaleX, c.scaleY = scale, scale
	c.rotation = 0
	c.opacity = 1
	c.animState = AnimIdle
	// 瞬时模式下失误动画不播放，标记直接消费掉
	c.misplayPending = false

	c.RefreshDraggable()
	if c.visual != nil {
		c.visual.RefreshShadowOffset()
	}
}

// animateChild 为卡牌调度过渡动画。
// 带失误标记的卡先进入两段式动画，否则直接归位。
func (l *CardLayout) animateChild(c *LayoutChild, newX, scale float64, opts LayoutOptions) {
	if c.visual != nil {
		c.visual.TweenStarted()
		c.visual.RefreshShadowOffset()
	}

	if c.misplayPending {
		c.misplayPending = false
		l.startMisplayTravel(c, newX, scale, opts)
		return
	}
	l.startSettle(c, newX, scale, opts)
}

// startMisplayTravel 失误动画第一段：飞向对应花色牌堆的绝对位置。
// 缩放按牌堆显示高度等比换算；完成时旋转直接置为整圈
// （翻转动画收尾标记），随后衔接第二段归位补间。
func (l *CardLayout) startMisplayTravel(c *LayoutChild, homeX, homeScale float64, opts LayoutOptions) {
	var anchor Point
	var anchorHeight float64
	ok := false
	if l.stacks != nil && c.visual != nil {
		anchor, anchorHeight, ok = l.stacks.StackLocation(c.visual.Suit())
	}
	if !ok {
		// 查不到牌堆锚点（规则层缺失）时退化为普通归位
		l.startSettle(c, homeX, homeScale, opts)
		return
	}

	local := l.toLocal(anchor)
	travelScale := anchorHeight * homeScale / l.height

	c.animState = AnimMisplayTravel
	c.tw = l.tweens.Animate(c, tween.Params{
		Duration: config.CardAnimationDuration,
		X:        tween.Float(local.X),
		Y:        tween.Float(local.Y),
		ScaleX:   tween.Float(travelScale),
		ScaleY:   tween.Float(travelScale),
		Rotation: tween.Float(0),
		Easing:   utils.EaseOutCubic,
		OnFinish: func() {
			c.tw = nil
			c.rotation = config.MisplayFinishRotation
			l.startSettle(c, homeX, homeScale, opts)
		},
	}, opts.SkipAnimation)
}

// startSettle 归位补间：移动到布局目标位置并恢复标准缩放/旋转/不透明度
func (l *CardLayout) startSettle(c *LayoutChild, newX, scale float64, opts LayoutOptions) {
	c.animState = AnimSettling
	c.tw = l.tweens.Animate(c, tween.Params{
		Duration: config.CardAnimationDuration,
		X:        tween.Float(newX),
		Y:        tween.Float(0),
		ScaleX:   tween.Float(scale),
		ScaleY:   tween.Float(scale),
		Rotation: tween.Float(0),
		Opacity:  tween.Float(1),
		Easing:   utils.EaseOutCubic,
		OnFinish: func() {
			c.tw = nil
			c.animState = AnimIdle
			if c.visual != nil {
				c.visual.TweenFinished()
			}
			c.RefreshDraggable()
		},
	}, opts.SkipAnimation)
}

// AbsoluteCenter 返回容器几何中心的全局坐标。
//
// 围桌布局下手牌容器本身带朝向，朝向角（顺时针角度）换算为
// 逆时针弧度 r = -θ·π/180 后：
//
//	center.x = x + (W/2)·cos(r) + (H/2)·sin(r)
//	center.y = y - (W/2)·sin(r) + (H/2)·cos(r)
func (l *CardLayout) AbsoluteCenter() Point {
	r := -l.origRotation * math.Pi / 180
	return Point{
		X: l.x + (l.width/2)*math.Cos(r) + (l.height/2)*math.Sin(r),
		Y: l.y - (l.width/2)*math.Sin(r) + (l.height/2)*math.Cos(r),
	}
}

// toAbsolute 容器相对坐标 → 全局坐标（按固定朝向旋转）
func (l *CardLayout) toAbsolute(p Point) Point {
	r := -l.origRotation * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	return Point{
		X: l.x + p.X*cos + p.Y*sin,
		Y: l.y - p.X*sin + p.Y*cos,
	}
}

// toLocal 全局坐标 → 容器相对坐标（toAbsolute 的逆变换）
func (l *CardLayout) toLocal(p Point) Point {
	r := -l.origRotation * math.Pi / 180
	sin, cos := math.Sin(r), math.Cos(r)
	dx, dy := p.X-l.x, p.Y-l.y
	return Point{
		X: dx*cos - dy*sin,
		Y: dx*sin + dy*cos,
	}
}
