package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/hanabi/pkg/card"
	"github.com/decker502/hanabi/pkg/config"
)

// suitColors 各花色卡面的底色
var suitColors = map[string]color.RGBA{
	"red":    {R: 200, G: 60, B: 60, A: 255},
	"yellow": {R: 200, G: 180, B: 50, A: 255},
	"green":  {R: 70, G: 160, B: 70, A: 255},
	"blue":   {R: 70, G: 100, B: 200, A: 255},
	"purple": {R: 140, G: 70, B: 180, A: 255},
}

// empathyColor 共情模式下统一的卡背色（隐藏自己视角的信息）
var empathyColor = color.RGBA{R: 90, G: 90, B: 100, A: 255}

// CardSprite 演示场景的卡面实现。
// 实现 card.CardVisual 接口：自然尺寸、花色查询、共情切换、
// 补间通知（抬起阴影）和拖拽规则。
type CardSprite struct {
	suit string
	rank int

	empathy  bool
	tweening bool

	// shadowOffset 抬起偏移（像素），补间进行中卡面略微浮起
	shadowOffset float64

	// base 懒加载的卡面底图（自然尺寸）
	base        *ebiten.Image
	baseEmpathy *ebiten.Image
}

// NewCardSprite 创建演示卡面
func NewCardSprite(suit string, rank int) *CardSprite {
	return &CardSprite{suit: suit, rank: rank}
}

// NaturalSize 返回卡面的自然（未缩放）尺寸
func (s *CardSprite) NaturalSize() (float64, float64) {
	return config.CardNaturalWidth, config.CardNaturalHeight
}

// Suit 返回卡面花色
func (s *CardSprite) Suit() string {
	return s.suit
}

// Rank 返回卡面点数
func (s *CardSprite) Rank() int {
	return s.rank
}

// SetEmpathy 切换共情显示模式
func (s *CardSprite) SetEmpathy(enabled bool) {
	s.empathy = enabled
}

// TweenStarted 补间开始：卡面抬起
func (s *CardSprite) TweenStarted() {
	s.tweening = true
}

// TweenFinished 补间结束：卡面落回
func (s *CardSprite) TweenFinished() {
	s.tweening = false
}

// RefreshShadowOffset 根据补间状态刷新抬起偏移
func (s *CardSprite) RefreshShadowOffset() {
	if s.tweening {
		s.shadowOffset = 6
	} else {
		s.shadowOffset = 0
	}
}

// Draggable 演示规则：动画落定后的卡可拖拽
func (s *CardSprite) Draggable() bool {
	return !s.tweening
}

// baseImage 返回当前显示模式下的卡面底图（首次使用时绘制）
func (s *CardSprite) baseImage() *ebiten.Image {
	if s.empathy {
		if s.baseEmpathy == nil {
			s.baseEmpathy = s.renderBase(empathyColor, "?")
		}
		return s.baseEmpathy
	}
	if s.base == nil {
		clr, ok := suitColors[s.suit]
		if !ok {
			clr = color.RGBA{R: 120, G: 120, B: 120, A: 255}
		}
		s.base = s.renderBase(clr, fmt.Sprintf("%d", s.rank))
	}
	return s.base
}

// renderBase 绘制自然尺寸的卡面底图
func (s *CardSprite) renderBase(fill color.RGBA, label string) *ebiten.Image {
	w := int(config.CardNaturalWidth)
	h := int(config.CardNaturalHeight)
	img := ebiten.NewImage(w, h)
	img.Fill(fill)

	// 简易边框
	border := ebiten.NewImage(w-16, h-16)
	border.Fill(color.RGBA{
		R: uint8(min(int(fill.R)+30, 255)),
		G: uint8(min(int(fill.G)+30, 255)),
		B: uint8(min(int(fill.B)+30, 255)),
		A: 255,
	})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, 8)
	img.DrawImage(border, op)

	ebitenutil.DebugPrintAt(img, label, w/2-4, h/2-8)
	return img
}

// Draw 把卡面绘制到屏幕。
// 几何状态来自布局包装（绝对位置、缩放、旋转、不透明度），
// 容器自身的朝向叠加在卡面旋转之上。
func (s *CardSprite) Draw(screen *ebiten.Image, c *card.LayoutChild, containerRotation float64) {
	if !c.Visible() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	sx, sy := c.Scale()
	op.GeoM.Scale(sx, sy)

	rot := (c.Rotation() + containerRotation) * math.Pi / 180
	op.GeoM.Rotate(rot)

	abs := c.AbsolutePosition()
	op.GeoM.Translate(abs.X, abs.Y-s.shadowOffset)

	op.ColorScale.ScaleAlpha(float32(c.Opacity()))
	screen.DrawImage(s.baseImage(), op)
}
