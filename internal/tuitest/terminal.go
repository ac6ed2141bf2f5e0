package tuitest

import (
	"bytes"
	"io"
)

// terminalQuery pairs a capability probe emitted by the program with the
// reply a real terminal would send back.
type terminalQuery struct {
	probe []byte
	reply []byte
}

// Cursor position plus foreground/background colour probes, in both the BEL
// and ST terminated forms that termenv emits.
var terminalQueries = []terminalQuery{
	{probe: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{probe: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{probe: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{probe: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{probe: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

const (
	responderMaxBuffer = 256
	responderTail      = 64
)

type terminalResponder struct {
	w   io.Writer
	buf []byte
}

func newTerminalResponder(w io.Writer) *terminalResponder {
	return &terminalResponder{w: w, buf: make([]byte, 0, responderMaxBuffer/2)}
}

// Process feeds program output to the responder, answering every complete
// probe seen so far in stream order.
func (tr *terminalResponder) Process(chunk []byte) {
	tr.buf = append(tr.buf, chunk...)
	for tr.answerEarliest() {
	}
	if len(tr.buf) > responderMaxBuffer {
		tr.buf = tr.buf[len(tr.buf)-responderTail:]
	}
}

// answerEarliest replies to the first probe in the buffer and discards the
// bytes up to its end.
func (tr *terminalResponder) answerEarliest() bool {
	best, at := -1, -1
	for i, q := range terminalQueries {
		idx := bytes.Index(tr.buf, q.probe)
		if idx >= 0 && (at < 0 || idx < at) {
			best, at = i, idx
		}
	}
	if best < 0 {
		return false
	}
	q := terminalQueries[best]
	tr.buf = tr.buf[at+len(q.probe):]
	_, _ = tr.w.Write(q.reply)
	return true
}
