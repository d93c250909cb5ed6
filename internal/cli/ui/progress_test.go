package ui

import "testing"

func TestFakeBar_SucceedIsIdempotent(t *testing.T) {
	bar := StartFakeBar("test")
	bar.Succeed()
	bar.Succeed() // second call must be a no-op
	bar.Abort()   // terminal state already reached
}

func TestFakeBar_AbortStopsTimer(t *testing.T) {
	bar := StartFakeBar("test")
	bar.Abort()
	bar.Abort()
}
