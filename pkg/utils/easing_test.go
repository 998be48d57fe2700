package utils

import (
	"math"
	"testing"
)

// TestEaseLinear 测试线性缓动函数
func TestEaseLinear(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseLinear(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseLinear(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875}, // 1 - (1-0.5)^3 = 0.875
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubicMonotonic 测试缓出曲线单调递增
func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := EaseOutCubic(0)
	for i := 1; i <= 100; i++ {
		cur := EaseOutCubic(float64(i) / 100)
		if cur < prev {
			t.Fatalf("EaseOutCubic 在 t=%v 处不单调: %v < %v", float64(i)/100, cur, prev)
		}
		prev = cur
	}
}

// TestEaseInOutCubic 测试缓入缓出函数的端点和对称性
func TestEaseInOutCubic(t *testing.T) {
	if v := EaseInOutCubic(0); math.Abs(v) > 0.001 {
		t.Errorf("EaseInOutCubic(0) = %v, 期望 0", v)
	}
	if v := EaseInOutCubic(1); math.Abs(v-1) > 0.001 {
		t.Errorf("EaseInOutCubic(1) = %v, 期望 1", v)
	}
	if v := EaseInOutCubic(0.5); math.Abs(v-0.5) > 0.001 {
		t.Errorf("EaseInOutCubic(0.5) = %v, 期望 0.5", v)
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 10, 20, 0.0, 10},
		{"终点", 10, 20, 1.0, 20},
		{"中点", 10, 20, 0.5, 15},
		{"反向区间", 20, 10, 0.5, 15},
		{"负数区间", -10, 10, 0.25, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, result, tt.expected)
			}
		})
	}
}
