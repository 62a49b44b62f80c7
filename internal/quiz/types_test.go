package quiz

import "testing"

func TestKnownType(t *testing.T) {
	for _, code := range []string{"WR", "SA", "M", "MC", "TF", "MS", "O"} {
		if !KnownType(code) {
			t.Errorf("KnownType(%q) = false", code)
		}
	}
	for _, code := range []string{"", "ZZ", "mc", "TRUE"} {
		if KnownType(code) {
			t.Errorf("KnownType(%q) = true", code)
		}
	}
}

func TestTrueFalseLatest(t *testing.T) {
	a := &TFOption{Order: 1}
	b := &TFOption{Order: 2}

	if got := (&TrueFalse{}).Latest(); got != nil {
		t.Errorf("Latest() on empty = %v, want nil", got)
	}
	if got := (&TrueFalse{True: a}).Latest(); got != a {
		t.Error("Latest() with only True set did not return it")
	}
	if got := (&TrueFalse{False: a}).Latest(); got != a {
		t.Error("Latest() with only False set did not return it")
	}
	if got := (&TrueFalse{True: a, False: b}).Latest(); got != b {
		t.Error("Latest() did not pick the later-defined False option")
	}
	if got := (&TrueFalse{True: b, False: a}).Latest(); got != b {
		t.Error("Latest() did not pick the later-defined True option")
	}
}
