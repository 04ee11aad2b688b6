package model

import "testing"

func TestDisplayMode_IsValid(t *testing.T) {
	tests := []struct {
		mode     DisplayMode
		expected bool
	}{
		{ModeCircular, true},
		{ModeBar, true},
		{DisplayMode(""), false},
		{DisplayMode("pie"), false},
		{DisplayMode("Circular"), false},
	}

	for _, tt := range tests {
		result := tt.mode.IsValid()
		if result != tt.expected {
			t.Errorf("DisplayMode(%q).IsValid() = %v, expected %v", tt.mode, result, tt.expected)
		}
	}
}

func TestParseDisplayMode(t *testing.T) {
	tests := []struct {
		input    string
		expected DisplayMode
		ok       bool
	}{
		{"circular", ModeCircular, true},
		{"bar", ModeBar, true},
		{"", DefaultMode, false},
		{"spiral", DefaultMode, false},
		{"BAR", DefaultMode, false},
	}

	for _, tt := range tests {
		mode, ok := ParseDisplayMode(tt.input)
		if mode != tt.expected || ok != tt.ok {
			t.Errorf("ParseDisplayMode(%q) = (%s, %v), expected (%s, %v)",
				tt.input, mode, ok, tt.expected, tt.ok)
		}
	}
}

func TestDisplayMode_String(t *testing.T) {
	if ModeCircular.String() != "circular" {
		t.Errorf("ModeCircular.String() = %s, expected circular", ModeCircular.String())
	}
	if ModeBar.String() != "bar" {
		t.Errorf("ModeBar.String() = %s, expected bar", ModeBar.String())
	}
}
