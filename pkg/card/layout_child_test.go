package card

import (
	"math"
	"testing"

	"github.com/decker502/hanabi/pkg/tween"
)

// TestLayoutChildDefaults 测试新建卡牌包装的初始几何状态
func TestLayoutChildDefaults(t *testing.T) {
	c := NewLayoutChild(newFakeVisual(100, 100))

	sx, sy := c.Scale()
	if sx != 1 || sy != 1 {
		t.Errorf("初始缩放 = (%v, %v), 期望 (1, 1)", sx, sy)
	}
	if c.Opacity() != 1 {
		t.Errorf("初始不透明度 = %v, 期望 1", c.Opacity())
	}
	if !c.Visible() {
		t.Error("初始应可见")
	}
	if c.AnimState() != AnimIdle {
		t.Errorf("初始动画状态 = %v, 期望 AnimIdle", c.AnimState())
	}
	if c.Tween() != nil {
		t.Error("初始补间槽位应为空")
	}
}

// TestAbsolutePositionRoundTrip 测试旋转容器下绝对坐标换算的往返一致性
func TestAbsolutePositionRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
	}{
		{"无旋转", 0},
		{"旋转90度", 90},
		{"旋转45度", 45},
		{"旋转负角度", -30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := tween.NewManager()
			l, err := NewCardLayout(Options{
				X: 123, Y: -45, Width: 400, Height: 100, Rotation: tt.rotation,
			}, tm, nil)
			if err != nil {
				t.Fatalf("NewCardLayout 失败: %v", err)
			}

			c := NewLayoutChild(newFakeVisual(100, 100))
			l.AddChild(c, LayoutOptions{Instant: true})

			target := Point{X: 300, Y: 200}
			c.SetAbsolutePosition(target)
			got := c.AbsolutePosition()

			if math.Abs(got.X-target.X) > 1e-9 || math.Abs(got.Y-target.Y) > 1e-9 {
				t.Errorf("往返后 = (%v, %v), 期望 (%v, %v)", got.X, got.Y, target.X, target.Y)
			}
		})
	}
}

// TestAbsolutePositionWithoutParent 测试未入容器时绝对坐标即相对坐标
func TestAbsolutePositionWithoutParent(t *testing.T) {
	c := NewLayoutChild(newFakeVisual(100, 100))
	c.SetAbsolutePosition(Point{X: 11, Y: 22})

	x, y := c.Position()
	if x != 11 || y != 22 {
		t.Errorf("相对坐标 = (%v, %v), 期望 (11, 22)", x, y)
	}
	abs := c.AbsolutePosition()
	if abs.X != 11 || abs.Y != 22 {
		t.Errorf("绝对坐标 = (%v, %v), 期望 (11, 22)", abs.X, abs.Y)
	}
}

// TestRefreshDraggable 测试拖拽状态委托给卡面规则，卡面暂缺时不可拖拽
func TestRefreshDraggable(t *testing.T) {
	v := newFakeVisual(100, 100)
	c := NewLayoutChild(v)

	v.draggableAllowed = true
	c.RefreshDraggable()
	if !c.Draggable() {
		t.Error("规则允许时应可拖拽")
	}

	v.draggableAllowed = false
	c.RefreshDraggable()
	if c.Draggable() {
		t.Error("规则禁止时不应可拖拽")
	}

	orphan := NewLayoutChild(nil)
	orphan.RefreshDraggable()
	if orphan.Draggable() {
		t.Error("卡面暂缺时不应可拖拽")
	}
}

// TestMisplayFlagConsumedOnce 测试失误标记是一次性的
func TestMisplayFlagConsumedOnce(t *testing.T) {
	c := NewLayoutChild(newFakeVisual(100, 100))

	if c.MisplayPending() {
		t.Error("初始不应带失误标记")
	}
	c.SetMisplayPending()
	if !c.MisplayPending() {
		t.Error("标记未生效")
	}
}
