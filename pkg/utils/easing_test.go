package utils

import (
	"math"
	"testing"
)

const easingEpsilon = 1e-9

// TestEaseOutCubicEndpoints 测试缓出函数端点值
func TestEaseOutCubicEndpoints(t *testing.T) {
	if math.Abs(EaseOutCubic(0)) > easingEpsilon {
		t.Errorf("Expected EaseOutCubic(0)=0, got %f", EaseOutCubic(0))
	}
	if math.Abs(EaseOutCubic(1)-1) > easingEpsilon {
		t.Errorf("Expected EaseOutCubic(1)=1, got %f", EaseOutCubic(1))
	}
}

// TestEaseOutCubicMidpoint 测试缓出函数中点值（1 - 0.5³ = 0.875）
func TestEaseOutCubicMidpoint(t *testing.T) {
	got := EaseOutCubic(0.5)
	if math.Abs(got-0.875) > easingEpsilon {
		t.Errorf("Expected EaseOutCubic(0.5)=0.875, got %f", got)
	}
}

// TestEaseOutCubicFrontLoaded 测试缓出曲线前段快于线性
func TestEaseOutCubicFrontLoaded(t *testing.T) {
	for _, v := range []float64{0.1, 0.3, 0.5, 0.7, 0.9} {
		if EaseOutCubic(v) <= v {
			t.Errorf("Expected EaseOutCubic(%f) > %f, got %f", v, v, EaseOutCubic(v))
		}
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		a, b, t  float64
		expected float64
	}{
		{"起点", 10, 20, 0, 10},
		{"终点", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"负值区间", -10, 10, 0.75, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(tt.a, tt.b, tt.t)
			if math.Abs(got-tt.expected) > easingEpsilon {
				t.Errorf("Expected Lerp(%f, %f, %f)=%f, got %f",
					tt.a, tt.b, tt.t, tt.expected, got)
			}
		})
	}
}

// TestClamp 测试区间限制
func TestClamp(t *testing.T) {
	if Clamp(-0.5, 0, 1) != 0 {
		t.Errorf("Expected Clamp(-0.5, 0, 1)=0, got %f", Clamp(-0.5, 0, 1))
	}
	if Clamp(1.5, 0, 1) != 1 {
		t.Errorf("Expected Clamp(1.5, 0, 1)=1, got %f", Clamp(1.5, 0, 1))
	}
	if Clamp(0.3, 0, 1) != 0.3 {
		t.Errorf("Expected Clamp(0.3, 0, 1)=0.3, got %f", Clamp(0.3, 0, 1))
	}
}
