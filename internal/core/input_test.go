package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone) // ignored
	f.Set(ActionLeft)
	f.Set(ActionUp)

	got := f.Actions()
	want := []Action{ActionUp, ActionLeft, ActionUp}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionLeft) || f.Has(ActionPause) {
		t.Error("Has() does not reflect the frame contents")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRestart)
	clone := f.Clone()

	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionRestart) {
		t.Error("Clone must not share storage with the original")
	}
}

func TestActionTextRoundTrip(t *testing.T) {
	for a := ActionNone; a <= ActionPause; a++ {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", a, err)
		}
		var back Action
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != a {
			t.Errorf("round trip of %v produced %v", a, back)
		}
	}

	if _, err := ParseAction("jump"); err == nil {
		t.Error("ParseAction should reject unknown names")
	}
}

func TestRGB(t *testing.T) {
	if got := RGB(50, 205, 50); got != "#32cd32" {
		t.Errorf("RGB(50, 205, 50) = %q, expected #32cd32", got)
	}
	if got := Lerp(50, 255, 1); got != 255 {
		t.Errorf("Lerp(50, 255, 1) = %d, expected 255", got)
	}
	if got := Lerp(205, 105, 0.5); got != 155 {
		t.Errorf("Lerp(205, 105, 0.5) = %d, expected 155", got)
	}
}
