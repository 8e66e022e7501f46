package table

import "testing"

func TestClassifySeparator(t *testing.T) {
	cases := []struct {
		cell string
		want Alignment
	}{
		{":--:", Center},
		{":-:", Center},
		{":---------:", Center},
		{":--", Left},
		{":-", Left},
		{"--:", Right},
		{"-:", Right},
		{"--", Left},      // no colon: default
		{"---", Left},     // no colon: default
		{":", Left},       // colon without dashes: default
		{"::", Left},      // no dashes between colons: default
		{"", Left},        // empty cell: default
		{":--:x", Left},   // trailing junk: default
		{"x:--:", Left},   // leading junk: default
		{": --", Left},    // inner space: default
	}
	for _, tc := range cases {
		if got := classifySeparator(tc.cell); got != tc.want {
			t.Errorf("classifySeparator(%q) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestParseAlignment(t *testing.T) {
	cases := []struct {
		in       string
		fallback Alignment
		want     Alignment
	}{
		{"left", Center, Left},
		{"RIGHT", Center, Right},
		{" Center ", Left, Center},
		{"", Center, Center},
		{"", Left, Left},
		{"justify", Center, Center},
	}
	for _, tc := range cases {
		if got := ParseAlignment(tc.in, tc.fallback); got != tc.want {
			t.Errorf("ParseAlignment(%q, %v) = %v, want %v", tc.in, tc.fallback, got, tc.want)
		}
	}
}

func TestMarker(t *testing.T) {
	cases := []struct {
		align Alignment
		width int
		want  string
	}{
		{Left, 4, ":---"},
		{Right, 4, "---:"},
		{Center, 5, ":---:"},
		{Left, 1, ":"},
		{Right, 1, ":"},
		{Center, 1, ":"},
		{Center, 2, "::"},
	}
	for _, tc := range cases {
		got := marker(tc.align, tc.width)
		if got != tc.want {
			t.Errorf("marker(%v, %d) = %q, want %q", tc.align, tc.width, got, tc.want)
		}
		if len(got) != tc.width {
			t.Errorf("marker(%v, %d) has length %d, want %d", tc.align, tc.width, len(got), tc.width)
		}
	}
}

func TestAlignmentString(t *testing.T) {
	if Left.String() != "left" || Center.String() != "center" || Right.String() != "right" {
		t.Errorf("Alignment.String() mapping broken: %s %s %s", Left, Center, Right)
	}
}
