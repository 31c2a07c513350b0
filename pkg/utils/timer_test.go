package utils

import "testing"

// TestTimerOnceJustFinished 测试一次性计时器的 JustFinished 只触发一帧
func TestTimerOnceJustFinished(t *testing.T) {
	timer := NewTimer(3.0, TimerOnce)

	// 未到时长之前不应完成
	timer.Tick(1.0)
	if timer.Finished() {
		t.Error("Expected timer not finished after 1.0s")
	}
	if timer.JustFinished() {
		t.Error("Expected JustFinished=false after 1.0s")
	}

	timer.Tick(1.0)
	timer.Tick(1.0)

	// 恰好到达时长的这一帧
	if !timer.Finished() {
		t.Error("Expected timer finished after 3.0s")
	}
	if !timer.JustFinished() {
		t.Error("Expected JustFinished=true on completion tick")
	}

	// 之后的帧 JustFinished 必须回落
	timer.Tick(1.0)
	if timer.JustFinished() {
		t.Error("Expected JustFinished=false on tick after completion")
	}
	if !timer.Finished() {
		t.Error("Expected Finished to stay true for once timer")
	}
}

// TestTimerRepeatingWraps 测试重复计时器回绕并保留超出部分
func TestTimerRepeatingWraps(t *testing.T) {
	timer := NewTimer(1.0, TimerRepeating)

	timer.Tick(0.6)
	if timer.JustFinished() {
		t.Error("Expected JustFinished=false at 0.6s")
	}

	timer.Tick(0.6)
	if !timer.JustFinished() {
		t.Error("Expected JustFinished=true when crossing 1.0s")
	}
	// 超出的 0.2 秒应保留在新周期内
	if timer.Elapsed < 0.19 || timer.Elapsed > 0.21 {
		t.Errorf("Expected Elapsed≈0.2 after wrap, got %f", timer.Elapsed)
	}

	// 重复计时器的 Finished 只在完成帧为真
	timer.Tick(0.1)
	if timer.Finished() {
		t.Error("Expected Finished=false for repeating timer mid-period")
	}
}

// TestTimerRepeatingLongFrame 测试单帧跨越多个周期时只回绕不累积
func TestTimerRepeatingLongFrame(t *testing.T) {
	timer := NewTimer(0.5, TimerRepeating)

	// 一帧跨越 3 个完整周期
	timer.Tick(1.7)
	if !timer.JustFinished() {
		t.Error("Expected JustFinished=true after long frame")
	}
	if timer.Elapsed >= 0.5 {
		t.Errorf("Expected Elapsed < Duration after wrap, got %f", timer.Elapsed)
	}
}

// TestTimerReset 测试重置后计时器可以再次运行
func TestTimerReset(t *testing.T) {
	timer := NewTimer(2.0, TimerOnce)

	timer.Tick(2.0)
	if !timer.Finished() {
		t.Error("Expected timer finished after 2.0s")
	}

	timer.Reset()
	if timer.Finished() || timer.JustFinished() {
		t.Error("Expected timer cleared after Reset")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Expected Elapsed=0 after Reset, got %f", timer.Elapsed)
	}

	// 重置后再次完整运行
	timer.Tick(2.0)
	if !timer.JustFinished() {
		t.Error("Expected JustFinished=true after re-running reset timer")
	}
}

// TestTimerOnceStopsTicking 测试一次性计时器完成后不再推进
func TestTimerOnceStopsTicking(t *testing.T) {
	timer := NewTimer(1.0, TimerOnce)

	timer.Tick(5.0)
	if timer.Elapsed != 1.0 {
		t.Errorf("Expected Elapsed clamped to Duration, got %f", timer.Elapsed)
	}

	timer.Tick(1.0)
	if timer.Elapsed != 1.0 {
		t.Errorf("Expected Elapsed unchanged after completion, got %f", timer.Elapsed)
	}
	if timer.JustFinished() {
		t.Error("Expected JustFinished=false for already-finished once timer")
	}
}

// TestTimerFraction 测试进度比例在 [0, 1] 区间
func TestTimerFraction(t *testing.T) {
	timer := NewTimer(4.0, TimerOnce)

	if timer.Fraction() != 0 {
		t.Errorf("Expected Fraction=0 at start, got %f", timer.Fraction())
	}

	timer.Tick(1.0)
	if timer.Fraction() != 0.25 {
		t.Errorf("Expected Fraction=0.25, got %f", timer.Fraction())
	}

	timer.Tick(10.0)
	if timer.Fraction() != 1.0 {
		t.Errorf("Expected Fraction=1.0 after completion, got %f", timer.Fraction())
	}
}

// TestTimerZeroDuration 测试零时长计时器每帧都完成
func TestTimerZeroDuration(t *testing.T) {
	timer := NewTimer(0, TimerRepeating)

	for i := 0; i < 3; i++ {
		timer.Tick(0.016)
		if !timer.JustFinished() {
			t.Errorf("Expected zero-duration timer to complete on tick %d", i)
		}
	}
	if timer.Fraction() != 1 {
		t.Errorf("Expected Fraction=1 for zero-duration timer, got %f", timer.Fraction())
	}
}
