package form

import "testing"

func TestSuggest(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"adhd", "ADHD"},
		{"Dislexia", "Dyslexia"},
		{"publik", "Public"},
		{"", ""},
		{"completely unrelated", ""},
	}
	for _, tc := range cases {
		var options []string
		options = append(options, Diagnoses...)
		options = append(options, SchoolTypes...)
		if got := Suggest(tc.input, options); got != tc.want {
			t.Errorf("Suggest(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
