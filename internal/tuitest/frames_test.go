package tuitest

import (
	"bytes"
	"testing"
	"time"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[Hfirst  \r\n\x1b[1mbold\x1b[0m\x1b[2J\x1b[Hsecond\n\n")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2: %#v", len(frames), frames)
	}
	if frames[0].Plain != "first\nbold" {
		t.Fatalf("first frame = %q", frames[0].Plain)
	}
	if frames[1].Plain != "second" || frames[1].Index != 1 {
		t.Fatalf("second frame = %+v", frames[1])
	}
}

func TestParseFramesWithoutClear(t *testing.T) {
	frames := parseFrames([]byte("\x1b]0;title\x07plain √(3² + 4²) = 5"))
	if len(frames) != 1 || frames[0].Plain != "plain √(3² + 4²) = 5" {
		t.Fatalf("unexpected frames %#v", frames)
	}
}

func TestRecordingContains(t *testing.T) {
	rec := &Recording{Raw: []byte("a\x1b[32m = 5\x1b[0m")}
	rec.Frames = parseFrames(rec.Raw)
	if !rec.Contains("a = 5") {
		t.Fatal("expected match across stripped escape codes")
	}
	if rec.Contains("= 6") {
		t.Fatal("unexpected match")
	}
	var nilRec *Recording
	if nilRec.Contains("x") {
		t.Fatal("nil recording should contain nothing")
	}
	if _, ok := nilRec.FinalFrame(); ok {
		t.Fatal("nil recording has no final frame")
	}
}

func TestTerminalResponderAnswersCursorQuery(t *testing.T) {
	var out bytes.Buffer
	tr := newTerminalResponder(&out)
	tr.Process([]byte("noise\x1b[6"))
	tr.Process([]byte("n more"))
	if out.String() != "\x1b[1;1R" {
		t.Fatalf("responder wrote %q", out.String())
	}
}

func TestKeysBuildsSteps(t *testing.T) {
	steps := Keys(time.Millisecond, KeyTab, KeyBackspace)
	if len(steps) != 2 || steps[1].Input[0] != 127 || steps[0].Delay != time.Millisecond {
		t.Fatalf("unexpected steps %#v", steps)
	}
	if step := Type(0, "3,5"); string(step.Input) != "3,5" {
		t.Fatalf("Type step = %q", step.Input)
	}
}
