package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epitrack/spreader-detector/pkg/report"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	fileName := filepath.Join(dir, name)
	if err := os.WriteFile(fileName, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return fileName
}

func TestRunReportDefault(t *testing.T) {
	dir := t.TempDir()
	people := writeInput(t, dir, "people.in", "Alice 1 30\nBob 2 70\n")
	meetings := writeInput(t, dir, "meetings.in", "1\n1 2 1.0 30.0\n")

	var out bytes.Buffer
	if err := runReport(&out, people, meetings, "", FormatDefault); err != nil {
		t.Fatalf("runReport returned unexpected error: %v", err)
	}

	want := "Hospitalization Required: Bob 2.\n" +
		"Hospitalization Required: Alice 1.\n"
	if out.String() != want {
		t.Errorf("Expected report:\n%q\ngot:\n%q", want, out.String())
	}
}

func TestRunReportJSON(t *testing.T) {
	dir := t.TempDir()
	people := writeInput(t, dir, "people.in", "Alice 1 30\nBob 2 70\n")
	meetings := writeInput(t, dir, "meetings.in", "1\n1 2 2.0 15.0\n")

	var out bytes.Buffer
	if err := runReport(&out, people, meetings, "", FormatJSON); err != nil {
		t.Fatalf("runReport returned unexpected error: %v", err)
	}

	var lines []report.Line
	if err := json.Unmarshal(out.Bytes(), &lines); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, out.String())
	}
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	if lines[0].Name != "Alice" || lines[0].Probability != 1.0 {
		t.Errorf("Expected Alice first with probability 1, got %+v", lines[0])
	}
	if lines[1].Name != "Bob" || lines[1].Probability != 0.25 {
		t.Errorf("Expected Bob second with probability 0.25, got %+v", lines[1])
	}
}

func TestRunCheck(t *testing.T) {
	tt := []struct {
		name      string
		people    string
		meetings  string
		expectErr bool
	}{
		{"valid inputs", "Alice 1 30\nBob 2 70\n", "1\n1 2 1.0 30.0\n", false},
		{"empty meetings", "Alice 1 30\n", "", false},
		{"duplicate ids", "Alice 1 30\nBob 1 70\n", "", true},
		{"unknown participant", "Alice 1 30\n", "1\n1 9 1.0 30.0\n", true},
		{"malformed roster", "Alice\n", "", true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			people := writeInput(t, dir, "people.in", tc.people)
			meetings := writeInput(t, dir, "meetings.in", tc.meetings)

			var out bytes.Buffer
			err := runCheck(&out, people, meetings, "")
			if tc.expectErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tc.expectErr {
				if err != nil {
					t.Fatalf("runCheck returned unexpected error: %v", err)
				}
				if !strings.HasPrefix(out.String(), "OK:") {
					t.Errorf("Expected OK output, got %q", out.String())
				}
			}
		})
	}
}

func TestRunStats(t *testing.T) {
	dir := t.TempDir()
	people := writeInput(t, dir, "people.in", "Alice 1 30\nBob 2 70\nCarol 3 65\n")
	meetings := writeInput(t, dir, "meetings.in", "1\n1 2 1.0 30.0\n")

	var out bytes.Buffer
	if err := runStats(&out, people, meetings, ""); err != nil {
		t.Fatalf("runStats returned unexpected error: %v", err)
	}

	want := "People: 3\n" +
		"At risk (age >= 65): 2\n" +
		"Meetings: 1\n" +
		"hospitalization: 2\n" +
		"quarantine: 0\n" +
		"no-risk: 1\n"
	if out.String() != want {
		t.Errorf("Expected stats:\n%q\ngot:\n%q", want, out.String())
	}
}

func TestRunStatsNoMeetings(t *testing.T) {
	dir := t.TempDir()
	people := writeInput(t, dir, "people.in", "Alice 1 30\nBob 2 70\n")

	var out bytes.Buffer
	if err := runStats(&out, people, "", ""); err != nil {
		t.Fatalf("runStats returned unexpected error: %v", err)
	}

	want := "People: 2\n" +
		"At risk (age >= 65): 1\n"
	if out.String() != want {
		t.Errorf("Expected stats:\n%q\ngot:\n%q", want, out.String())
	}
}
