package tuitest

import (
	"regexp"
	"strings"
)

// Frame is one screen redraw with and without escape sequences.
type Frame struct {
	Index int
	ANSI  string
	Plain string
}

var (
	// bubbletea clears the screen (ED) before every full redraw
	clearScreen = regexp.MustCompile(`\x1b\[[0-9;]*J`)
	escapeCodes = regexp.MustCompile(`\x1b\][^\x07]*(?:\x07|\x1b\\)|\x1b\[[0-9;?]*[A-Za-z]|[\x0e\x0f]`)
)

func parseFrames(raw []byte) []Frame {
	stream := strings.ReplaceAll(string(raw), "\r", "")
	var frames []Frame
	for _, segment := range clearScreen.Split(stream, -1) {
		segment = strings.TrimPrefix(strings.Trim(segment, "\x00"), "\x1b[H")
		plain := stripANSI(segment)
		if strings.TrimSpace(plain) == "" {
			continue
		}
		frames = append(frames, Frame{Index: len(frames), ANSI: segment, Plain: normalizeLines(plain)})
	}
	if len(frames) == 0 && stream != "" {
		frames = []Frame{{ANSI: stream, Plain: normalizeLines(stripANSI(stream))}}
	}
	return frames
}

// FinalFrame returns the last captured frame. The second return value is false
// when no frames were recorded.
func (r *Recording) FinalFrame() (Frame, bool) {
	if r == nil || len(r.Frames) == 0 {
		return Frame{}, false
	}
	return r.Frames[len(r.Frames)-1], true
}

// Contains reports whether text was visible at any point of the session.
// Partial redraws that never formed a full frame are searched too.
func (r *Recording) Contains(text string) bool {
	if r == nil {
		return false
	}
	for _, frame := range r.Frames {
		if strings.Contains(frame.Plain, text) {
			return true
		}
	}
	return strings.Contains(stripANSI(string(r.Raw)), text)
}

func stripANSI(s string) string {
	return escapeCodes.ReplaceAllString(s, "")
}

// normalizeLines drops trailing blanks per line and trailing empty lines.
func normalizeLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return strings.Join(lines[:end], "\n")
}
