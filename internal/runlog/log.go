// Package runlog accumulates the human-readable conversion log that is
// written next to the converted project.
package runlog

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const filePerm = 0o644

// Log is an append-only list of lines. It is owned by a single conversion
// run and is not safe for concurrent use.
type Log struct {
	lines []string
	echo  io.Writer
}

// New creates a Log. When echo is non-nil every line is also written to it
// as it is appended.
func New(echo io.Writer) *Log {
	return &Log{echo: echo}
}

// Println appends one line.
func (l *Log) Println(line string) {
	l.lines = append(l.lines, line)

	if l.echo != nil {
		_, _ = fmt.Fprintln(l.echo, line)
	}
}

// Printf appends one formatted line.
func (l *Log) Printf(format string, args ...any) {
	l.Println(fmt.Sprintf(format, args...))
}

// Append copies the lines of other onto the end of l.
func (l *Log) Append(other *Log) {
	for _, line := range other.lines {
		l.Println(line)
	}
}

// String returns every line terminated by a newline.
func (l *Log) String() string {
	var sb strings.Builder

	for _, line := range l.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// WriteFile writes the log to path.
func (l *Log) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(l.String()), filePerm); err != nil {
		return fmt.Errorf("writing convert log %s: %w", path, err)
	}

	return nil
}
