package main

import (
	"bytes"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLessonFlowThroughCLI(t *testing.T) {
	t.Parallel()
	data := t.TempDir()

	out, err := run(t, "--data", data, "units")
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	if !strings.Contains(out, "unit-1") || !strings.Contains(out, "0/5 lessons") {
		t.Fatalf("unexpected units output: %s", out)
	}

	if out, err = run(t, "--data", data, "session", "start", "unit-1", "lesson-1-1"); err != nil {
		t.Fatalf("session start: %v", err)
	}
	if !strings.Contains(out, "салом") {
		t.Fatalf("lesson cards missing: %s", out)
	}
	if out, err = run(t, "--data", data, "session", "rate", "greetings_0", "easy"); err != nil {
		t.Fatalf("session rate: %v", err)
	}
	if !strings.Contains(out, "2 cards left") {
		t.Fatalf("unexpected rate output: %s", out)
	}
	if _, err = run(t, "--data", data, "session", "end"); err != nil {
		t.Fatalf("session end: %v", err)
	}

	out, err = run(t, "--data", data, "unit", "show", "unit-1")
	if err != nil {
		t.Fatalf("unit show: %v", err)
	}
	if !strings.Contains(out, "(1/5 lessons)") || !strings.Contains(out, "✓ Hello and goodbye") {
		t.Fatalf("lesson must show completed: %s", out)
	}

	out, err = run(t, "--data", data, "word", "show", "greetings_0")
	if err != nil {
		t.Fatalf("word show: %v", err)
	}
	if !strings.Contains(out, "easy") {
		t.Fatalf("rating must persist across invocations: %s", out)
	}
}

func TestSessionStartRejectsLockedLesson(t *testing.T) {
	t.Parallel()
	if _, err := run(t, "--data", t.TempDir(), "session", "start", "unit-1", "lesson-1-3"); err == nil {
		t.Fatalf("locked lesson must fail")
	}
}

func TestParseAnswers(t *testing.T) {
	t.Parallel()
	answers, err := parseAnswers([]string{"1=3", " 2 = 1"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if answers[0] != 2 || answers[1] != 0 || len(answers) != 2 {
		t.Fatalf("unexpected answers: %v", answers)
	}
	for _, bad := range []string{"1", "0=1", "a=1", "1=b"} {
		if _, err := parseAnswers([]string{bad}); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}
