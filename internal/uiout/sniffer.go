package uiout

import (
	"bytes"
	"io"
	"strings"

	"github.com/jwalton/gchalk"
)

// Level is a guessed severity for one line of forwarded child stdout.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// SniffLevel guesses line's log level by substring match, the same
// loose heuristic Minecraft's own log4j2 lines lend themselves to:
// WARN takes priority over INFO, and ERROR is only checked when WARN
// isn't present.
func SniffLevel(line string) Level {
	level := LevelInfo
	if strings.Contains(line, "WARN") {
		level = LevelWarn
	} else if strings.Contains(line, "ERROR") {
		level = LevelError
	}
	return level
}

func colorize(level Level, line string) string {
	switch level {
	case LevelWarn:
		return gchalk.Yellow(line)
	case LevelError:
		return gchalk.Red(line)
	default:
		return line
	}
}

// stdoutSniffer splits incoming bytes on newlines, classifies and
// colorizes each complete line, and forwards to the underlying writer.
// Partial lines are held back until their terminating '\n' arrives.
type stdoutSniffer struct {
	w       io.Writer
	color   bool
	pending bytes.Buffer
}

// NewStdoutSniffer wraps w so that full lines written through it are
// classified as INFO/WARN/ERROR and, when color is true, colorized
// before being forwarded.
func NewStdoutSniffer(w io.Writer, color bool) io.Writer {
	return &stdoutSniffer{w: w, color: color}
}

func (s *stdoutSniffer) Write(p []byte) (int, error) {
	n := len(p)
	s.pending.Write(p)

	for {
		buf := s.pending.Bytes()
		idx := bytes.IndexByte(buf, '\n')
		if idx < 0 {
			break
		}
		line := string(buf[:idx])
		if err := s.emit(line); err != nil {
			return n, err
		}
		s.pending.Next(idx + 1)
	}
	return n, nil
}

func (s *stdoutSniffer) emit(line string) error {
	out := line
	if s.color {
		out = colorize(SniffLevel(line), line)
	}
	_, err := io.WriteString(s.w, out+"\n")
	return err
}
