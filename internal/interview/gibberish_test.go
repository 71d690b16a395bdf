package interview

import "testing"

func TestIsGibberish(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"digits only", "12345", true},
		{"punctuation only", "?!?!...", true},
		{"keyboard mash no vowels", "xkcdqwrtpsdfghjkl", true},
		{"vowel flood", "aaaaeeeeiiiioooo", true},
		{"tiny alphabet repeated", "ababababababab", true},
		{"long run without spaces", "asdkfjhaskdjfhaksjdfh", true},
		{"normal sentence", "Binary search halves the search space at each step.", false},
		{"short valid answer", "O(log n)", false},
		{"technical answer", "REST uses stateless HTTP verbs to operate on resources.", false},
		{"single word", "polymorphism", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsGibberish(tc.text); got != tc.want {
				t.Errorf("IsGibberish(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}
