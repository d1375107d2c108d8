package strength

import "testing"

func TestLevelFor(t *testing.T) {
	want := map[int]Level{
		-3: VeryWeak,
		0:  VeryWeak, 1: VeryWeak, 2: VeryWeak,
		3: Weak, 4: Weak,
		5: Medium, 6: Medium,
		7: Strong, 8: Strong,
		9: VeryStrong, 10: VeryStrong,
		42: VeryStrong,
	}

	for score, level := range want {
		if got := LevelFor(score); got != level {
			t.Errorf("LevelFor(%d) = %q, want %q", score, got, level)
		}
	}
}

func TestLevelLabel(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{VeryWeak, "Very Weak"},
		{Medium, "Medium"},
		{VeryStrong, "Very Strong"},
		{Level("bogus"), ""},
	}

	for _, tt := range tests {
		if got := tt.level.Label(); got != tt.want {
			t.Errorf("%q.Label() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
