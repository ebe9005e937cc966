package contagion

import (
	"errors"
	"strings"
	"testing"
)

func TestReadStream(t *testing.T) {
	input := "1\n1 2 1.0 30.0\n2 3 0.5 12\n"
	stream, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read returned unexpected error: %v", err)
	}
	if !stream.HasSick || stream.SickID != 1 {
		t.Errorf("Expected sick id 1, got %+v", stream)
	}
	want := []Meeting{
		{InfectorID: 1, InfectedID: 2, Distance: 1.0, Time: 30.0},
		{InfectorID: 2, InfectedID: 3, Distance: 0.5, Time: 12},
	}
	if len(stream.Meetings) != len(want) {
		t.Fatalf("Expected %d meetings, got %d", len(want), len(stream.Meetings))
	}
	for i, w := range want {
		if stream.Meetings[i] != w {
			t.Errorf("Meeting %d: expected %+v, got %+v", i, w, stream.Meetings[i])
		}
	}
}

func TestReadStreamEmpty(t *testing.T) {
	stream, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read of empty input returned error: %v", err)
	}
	if stream.HasSick {
		t.Errorf("Empty input should not designate a sick person, got %+v", stream)
	}
	if len(stream.Meetings) != 0 {
		t.Errorf("Empty input should yield no meetings, got %+v", stream.Meetings)
	}
}

func TestReadStreamSickOnly(t *testing.T) {
	stream, err := Read(strings.NewReader("42\n"))
	if err != nil {
		t.Fatalf("Read returned unexpected error: %v", err)
	}
	if !stream.HasSick || stream.SickID != 42 {
		t.Errorf("Expected sick id 42 and no meetings, got %+v", stream)
	}
	if len(stream.Meetings) != 0 {
		t.Errorf("Expected no meetings, got %+v", stream.Meetings)
	}
}

func TestReadStreamMalformed(t *testing.T) {
	tt := []struct {
		input       string
		failMessage string
	}{
		{"abc\n", "Non-numeric sick id should fail"},
		{"1\n1 2 1.0\n", "Missing time field should fail"},
		{"1\n1 2 1.0 30.0 9\n", "Extra field should fail"},
		{"1\nx 2 1.0 30.0\n", "Non-numeric infector id should fail"},
		{"1\n1 y 1.0 30.0\n", "Non-numeric infected id should fail"},
		{"1\n1 2 near 30.0\n", "Non-numeric distance should fail"},
		{"1\n1 2 1.0 long\n", "Non-numeric time should fail"},
	}

	for i, tc := range tt {
		_, err := Read(strings.NewReader(tc.input))
		if !errors.Is(err, ErrMalformedMeeting) {
			t.Errorf("Case %d: %s, got err=%v", i, tc.failMessage, err)
		}
	}
}
