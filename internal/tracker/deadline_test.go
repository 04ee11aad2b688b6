package tracker

import (
	"errors"
	"testing"
	"time"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"picker format", "2030-06-15T18:30", time.Date(2030, 6, 15, 18, 30, 0, 0, time.Local)},
		{"picker format with seconds", "2030-06-15T18:30:45", time.Date(2030, 6, 15, 18, 30, 45, 0, time.Local)},
		{"space separated", "2030-06-15 18:30", time.Date(2030, 6, 15, 18, 30, 0, 0, time.Local)},
		{"space separated with seconds", "2030-06-15 18:30:45", time.Date(2030, 6, 15, 18, 30, 45, 0, time.Local)},
		{"bare date means midnight", "2030-06-15", time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local)},
		{"surrounding whitespace", "  2030-06-15T18:30  ", time.Date(2030, 6, 15, 18, 30, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDeadline(tt.input)
			if err != nil {
				t.Fatalf("ParseDeadline(%q) error = %v, expected nil", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDeadline(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDeadline_RFC3339(t *testing.T) {
	got, err := ParseDeadline("2030-06-15T18:30:00+02:00")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := time.Date(2030, 6, 15, 18, 30, 0, 0, time.FixedZone("", 2*60*60))
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestParseDeadline_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"tomorrow",
		"15/06/2030",
		"2030-13-40T99:99",
		"2030-06-15T",
	}

	for _, input := range inputs {
		if _, err := ParseDeadline(input); !errors.Is(err, ErrInvalidDeadline) {
			t.Errorf("ParseDeadline(%q) error = %v, expected ErrInvalidDeadline", input, err)
		}
	}
}
