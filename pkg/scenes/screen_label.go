package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debugFontCharWidth 调试字体的单字符宽度（像素）
const debugFontCharWidth = 6.0

// ScreenLabel 基于调试字体的屏幕文本标签。
// 实现 hud.Label 接口；调试字体不支持着色，颜色以色块形式
// 绘制在文本左侧。
type ScreenLabel struct {
	text string
	fill color.RGBA
	x, y float64
}

// NewScreenLabel 创建屏幕标签
func NewScreenLabel(text string, x, y float64) *ScreenLabel {
	return &ScreenLabel{
		text: text,
		fill: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		x:    x,
		y:    y,
	}
}

// SetText 设置标签文本
func (l *ScreenLabel) SetText(s string) {
	l.text = s
}

// SetFill 设置文字颜色
func (l *ScreenLabel) SetFill(c color.RGBA) {
	l.fill = c
}

// X 返回标签左边界 X 坐标
func (l *ScreenLabel) X() float64 {
	return l.x
}

// SetX 设置标签左边界 X 坐标
func (l *ScreenLabel) SetX(x float64) {
	l.x = x
}

// Width 返回当前文本的测量宽度（调试字体为等宽字体）
func (l *ScreenLabel) Width() float64 {
	return float64(len(l.text)) * debugFontCharWidth
}

// Draw 绘制标签：颜色色块 + 文本
func (l *ScreenLabel) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(l.x-8), float32(l.y+3), 5, 10, l.fill, false)
	ebitenutil.DebugPrintAt(screen, l.text, int(l.x), int(l.y))
}
