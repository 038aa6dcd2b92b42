package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2024-06-01", "2024-06-01", false},
		{" 2024-06-01 ", "2024-06-01", false},
		{"01-06-2024", "2024-06-01", false},
		{"2024/06/01", "2024-06-01", false},
		{"01/06/2024", "2024-06-01", false},
		{"", "", true},
		{"next tuesday", "", true},
		{"2024-13-40", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeDate(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeDate(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAlphaNumericCode(t *testing.T) {
	code := AlphaNumericCode(8, "Agency One")
	if len(code) != 8 {
		t.Fatalf("expected 8 chars, got %q", code)
	}
	if code[:6] != "AGENCY" {
		t.Fatalf("code should start with seed letters, got %q", code)
	}
}
