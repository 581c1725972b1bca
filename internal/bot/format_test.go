package bot

import "testing"

func TestFormatUSD(t *testing.T) {
	cases := map[float64]string{
		1234.5:  "$1,234.50",
		50000:   "$50,000.00",
		0.12:    "$0.12",
		1000000: "$1,000,000.00",
	}
	for in, want := range cases {
		if got := FormatUSD(in); got != want {
			t.Fatalf("FormatUSD(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatUSDWhole(t *testing.T) {
	if got := FormatUSDWhole(1234567); got != "$1,234,567" {
		t.Fatalf("FormatUSDWhole = %q", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(-3.456); got != "-3.46%" {
		t.Fatalf("FormatPercent = %q", got)
	}
	if got := FormatPercent(2.5); got != "2.50%" {
		t.Fatalf("FormatPercent = %q", got)
	}
}

func TestTitleFirst(t *testing.T) {
	if got := titleFirst("bitcoin"); got != "Bitcoin" {
		t.Fatalf("titleFirst = %q", got)
	}
	if got := titleFirst(""); got != "" {
		t.Fatalf("titleFirst empty = %q", got)
	}
}

func TestFirstSentence(t *testing.T) {
	in := "Bitcoin is the first cryptocurrency. It was created in 2009."
	if got := firstSentence(in); got != "Bitcoin is the first cryptocurrency." {
		t.Fatalf("firstSentence = %q", got)
	}
	if got := firstSentence("no terminator"); got != "no terminator." {
		t.Fatalf("firstSentence without dot = %q", got)
	}
}
