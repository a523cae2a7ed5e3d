package utils

import "testing"

func TestTimeToInt(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"0:00", 0},
		{"9:30", 570},
		{"09:05", 545},
		{"12:00", 720},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got := TimeToInt(c.input)
		if got != c.want {
			t.Errorf("TimeToInt(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}
