package slug_test

import (
	"testing"

	"sukhan/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Greetings & Basics": "greetings-basics",
		"  Lesson 1.2  ":     "lesson-1-2",
		"Салом, дӯст!":       "салом-дӯст",
		"---":                "untitled",
		"":                   "untitled",
	}
	for input, want := range cases {
		if got := slug.Make(input); got != want {
			t.Fatalf("slug.Make(%q) = %q, want %q", input, got, want)
		}
	}
}
