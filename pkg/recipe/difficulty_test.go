package recipe

import (
	"testing"
)

func TestDifficultyString(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want string
	}{
		{DifficultyEasy, "easy"},
		{DifficultyMedium, "medium"},
		{DifficultyHard, "hard"},
		{DifficultyExpert, "expert"},
		{Difficulty(0), "unknown"},
		{Difficulty(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input   string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{"  HARD  ", DifficultyHard, false},
		{"expert", DifficultyExpert, false},
		{"", 0, true},
		{"impossible", 0, true},
		{"easyy", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDifficulty(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDifficulty(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDifficulty(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDifficultyOrdering(t *testing.T) {
	levels := Difficulties()
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Compare(levels[i]) != -1 {
			t.Errorf("%v should compare below %v", levels[i-1], levels[i])
		}
		if levels[i].Compare(levels[i-1]) != 1 {
			t.Errorf("%v should compare above %v", levels[i], levels[i-1])
		}
	}
	if DifficultyHard.Compare(DifficultyHard) != 0 {
		t.Error("a level should compare equal to itself")
	}
}

func TestDifficultyIsValid(t *testing.T) {
	for _, d := range Difficulties() {
		if !d.IsValid() {
			t.Errorf("IsValid(%v) = false, want true", d)
		}
	}
	if Difficulty(0).IsValid() || Difficulty(5).IsValid() {
		t.Error("out-of-set values should not be valid")
	}
}

func TestDifficultyTextRoundTrip(t *testing.T) {
	for _, d := range Difficulties() {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error = %v", d, err)
		}

		var got Difficulty
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%s) error = %v", text, err)
		}
		if got != d {
			t.Errorf("round trip = %v, want %v", got, d)
		}
	}

	if _, err := Difficulty(0).MarshalText(); err == nil {
		t.Error("MarshalText on invalid difficulty should fail")
	}
}
