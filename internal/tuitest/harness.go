package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 120
	defaultHeight  = 32
	defaultTimeout = 5 * time.Second
	fallbackTerm   = "xterm-256color"
)

// Step is one scripted input replayed against the pseudo terminal. Delay is
// waited before Input is written.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Config configures how the harness spawns and drives the CLI program.
type Config struct {
	Command          []string
	Dir              string
	Env              []string
	Width            int
	Height           int
	Steps            []Step
	Timeout          time.Duration
	AllowedExitCodes []int
	// AllowInterrupt accepts termination by SIGINT as a clean exit.
	AllowInterrupt bool
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c
}

// exitAllowed reports whether err from cmd.Wait counts as a clean exit.
func (c Config) exitAllowed(err error) bool {
	if err == nil {
		return true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		for _, code := range c.AllowedExitCodes {
			if exitErr.ExitCode() == code {
				return true
			}
		}
	}
	return c.AllowInterrupt && strings.Contains(err.Error(), "signal: interrupt")
}

// Recording contains the raw terminal stream plus parsed frames.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// Run starts the configured command inside a PTY, replays the scripted
// steps and records everything the program draws until it exits.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	cfg = cfg.withDefaults()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = buildEnv(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Height), Cols: uint16(cfg.Width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	output, drained := capture(ptmx)
	start := time.Now()
	if err := replay(ctx, ptmx, cfg.Steps); err != nil {
		return nil, err
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()
	select {
	case err := <-exited:
		if !cfg.exitAllowed(err) {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	// closing the PTY ends the capture loop
	_ = ptmx.Close()
	<-drained

	raw := output.Bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

// capture copies PTY output into a buffer, answering terminal probes along
// the way. The buffer is safe to read once drained is closed.
func capture(ptmx *os.File) (*bytes.Buffer, <-chan struct{}) {
	var output bytes.Buffer
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		responder := newTerminalResponder(ptmx)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				responder.Process(buf[:n])
				output.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return &output, drained
}

func replay(ctx context.Context, ptmx *os.File, steps []Step) error {
	for i, step := range steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("tuitest: context cancelled at step %d: %w", i, ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := ptmx.Write(step.Input); err != nil {
			return fmt.Errorf("tuitest: write step %d: %w", i, err)
		}
	}
	return nil
}

func buildEnv(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, entry := range env {
		if strings.HasPrefix(entry, "TERM=") {
			return env
		}
	}
	return append(env, "TERM="+fallbackTerm)
}

// Keys sends each key sequence as its own step, spaced by delay.
func Keys(delay time.Duration, keys ...[]byte) []Step {
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		steps = append(steps, Step{Delay: delay, Input: k})
	}
	return steps
}

// Type returns a step that writes text as typed runes.
func Type(delay time.Duration, text string) Step {
	return Step{Delay: delay, Input: []byte(text)}
}

var (
	KeyEnter     = []byte{'\r'}
	KeyCtrlC     = []byte{3}
	KeyEsc       = []byte{27}
	KeyTab       = []byte{'\t'}
	KeyShiftTab  = []byte("\x1b[Z")
	KeyBackspace = []byte{127}
	// KeyRight cycles the focused selector forward.
	KeyRight = []byte("\x1b[C")
	KeyLeft  = []byte("\x1b[D")
)
