package loop

import "testing"

func TestFormatScore(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, c := range cases {
		if got := formatScore(c.in); got != c.want {
			t.Fatalf("formatScore(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}
