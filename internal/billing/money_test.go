package billing

import "testing"

func TestLineAmountRaw(t *testing.T) {
	cases := []struct {
		name     string
		qty      int64 // hundredths
		price    int64 // cents
		expected int64 // hundredths of a cent
	}{
		{"whole units", 200, 1500, 300000},  // 2 x 15.00
		{"fractional qty", 150, 1000, 150000}, // 1.5 x 10.00
		{"sub-cent amount", 33, 50, 1650},   // 0.33 x 0.50 = 0.165, exact
		{"zero price", 500, 0, 0},
	}
	for _, tc := range cases {
		if got := LineAmountRaw(tc.qty, tc.price); got != tc.expected {
			t.Errorf("%s: LineAmountRaw(%d, %d) = %d, want %d", tc.name, tc.qty, tc.price, got, tc.expected)
		}
	}
}

func TestCentsFromRaw(t *testing.T) {
	cases := map[int64]int64{
		0:      0,
		1650:   17, // 0.165 -> 0.17, half up
		3300:   33,
		149:    1, // 0.0149 -> 0.01
		150:    2, // 0.0150 -> 0.02
		300000: 3000,
	}
	for raw, want := range cases {
		if got := CentsFromRaw(raw); got != want {
			t.Errorf("CentsFromRaw(%d) = %d, want %d", raw, got, want)
		}
	}
}

func TestTaxCents(t *testing.T) {
	cases := []struct {
		name     string
		subtotal int64
		rateBps  int64
		expected int64
	}{
		{"no tax", 10000, 0, 0},
		{"ten percent", 10000, 1000, 1000},
		{"8.25 percent", 10000, 825, 825},
		{"rounds half up", 1999, 825, 165}, // 164.9175 -> 165
		{"tiny amount", 1, 825, 0},
	}
	for _, tc := range cases {
		if got := TaxCents(tc.subtotal, tc.rateBps); got != tc.expected {
			t.Errorf("%s: TaxCents(%d, %d) = %d, want %d", tc.name, tc.subtotal, tc.rateBps, got, tc.expected)
		}
	}
}

func TestFormatCents(t *testing.T) {
	cases := map[int64]string{
		0:     "0.00",
		5:     "0.05",
		1234:  "12.34",
		-1234: "-12.34",
		100:   "1.00",
	}
	for cents, want := range cases {
		if got := FormatCents(cents); got != want {
			t.Errorf("FormatCents(%d) = %q, want %q", cents, got, want)
		}
	}
}
