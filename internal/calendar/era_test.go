package calendar

import (
	"math"
	"testing"
)

func TestFormatYear(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{-2100, "2100 BCE"},
		{-100, "100 BCE"},
		{0, "0 CE"},
		{33, "33 CE"},
		{2025, "2025 CE"},
		{math.MinInt, "9223372036854775808 BCE"},
		{math.MaxInt, "9223372036854775807 CE"},
	}

	for _, tt := range tests {
		if got := FormatYear(tt.year); got != tt.want {
			t.Errorf("FormatYear(%d) = %q, want %q", tt.year, got, tt.want)
		}
	}
}

func TestFormatSpan(t *testing.T) {
	if got := FormatSpan(538, 1798); got != "538 CE to 1798 CE" {
		t.Errorf("FormatSpan() = %q", got)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "538", want: 538},
		{in: "-2100", want: -2100},
		{in: "+33", want: 33},
		{in: "2100BCE", want: -2100},
		{in: "2100 bce", want: -2100},
		{in: "100 BC", want: -100},
		{in: "100 B.C.", want: -100},
		{in: "33 CE", want: 33},
		{in: "33AD", want: 33},
		{in: "AD 33", want: 33},
		{in: " 1798 ", want: 1798},
		{in: "", wantErr: true},
		{in: "year", wantErr: true},
		{in: "12.5", wantErr: true},
		{in: "-100 BCE", wantErr: true},
		{in: "-33 CE", wantErr: true},
		{in: "AD 33 CE", wantErr: true},
		{in: "AD -33", wantErr: true},
		{in: "1000000 BCE", want: -MaxAbsYear},
		{in: "1000000", want: MaxAbsYear},
		{in: "1000001", wantErr: true},
		{in: "-1000001", wantErr: true},
		{in: "-9223372036854775808", wantErr: true},
		{in: "9223372036854775808 BCE", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseYear(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseYear(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseYear(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseYear_RoundTrip(t *testing.T) {
	for _, year := range []int{-2100, -1, 0, 8, 3285} {
		got, err := ParseYear(FormatYear(year))
		if err != nil {
			t.Fatalf("ParseYear(FormatYear(%d)) error = %v", year, err)
		}
		if got != year {
			t.Errorf("round trip %d -> %d", year, got)
		}
	}
}
