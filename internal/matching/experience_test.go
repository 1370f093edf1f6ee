package matching

import "testing"

func TestDetectRequiredExperience(t *testing.T) {
	cases := []struct {
		text string
		want *int
	}{
		{"5 years of experience required", intPtr(5)},
		{"5+ years with Go", intPtr(5)},
		{"minimum 4 years in backend development", intPtr(4)},
		{"at least 3 yrs", intPtr(3)},
		{"10 Years Experience", intPtr(10)},
		{"years of fun", nil},
		{"", nil},
		{"no numeric requirement here", nil},
	}
	for _, tc := range cases {
		got := DetectRequiredExperience(tc.text)
		switch {
		case tc.want == nil && got != nil:
			t.Fatalf("DetectRequiredExperience(%q) = %d, want nil", tc.text, *got)
		case tc.want != nil && got == nil:
			t.Fatalf("DetectRequiredExperience(%q) = nil, want %d", tc.text, *tc.want)
		case tc.want != nil && *got != *tc.want:
			t.Fatalf("DetectRequiredExperience(%q) = %d, want %d", tc.text, *got, *tc.want)
		}
	}
}

func TestDetectRequiredExperience_FirstMatchWins(t *testing.T) {
	got := DetectRequiredExperience("2 years preferred, 7 years a plus")
	if got == nil || *got != 2 {
		t.Fatalf("expected first mention (2), got %v", got)
	}
}
