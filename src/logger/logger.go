// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/gc"
)

// Logger defines the interface for diagnostic output.
//
// Diagnostics never share a stream with the result protocol: implementations
// write to stderr unless redirected with SetOutput.
type Logger interface {
	// Printf formats and prints an informational message.
	Printf(format string, v ...any)
	// Println prints an informational message with a newline.
	Println(v ...any)
	// Errorf formats and prints a fatal diagnostic. It is never silenced.
	Errorf(format string, v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// errorMark renders the prefix of fatal diagnostics. Color is dropped
// automatically when the terminal does not support it or NO_COLOR is set.
var errorMark = color.New(color.FgRed, color.Bold)

// CLILogger implements Logger using the standard log package.
// It's designed for human-readable output on a terminal.
type CLILogger struct {
	logger *log.Logger
	silent bool
}

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// SetSilent suppresses informational messages. Errors are still written.
func (c *CLILogger) SetSilent(silent bool) { c.silent = silent }

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) {
	if c.silent {
		return
	}
	c.logger.Printf(format, v...)
}

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) {
	if c.silent {
		return
	}
	c.logger.Println(v...)
}

// Errorf prints a diagnostic prefixed with a red "error:" marker.
func (c *CLILogger) Errorf(format string, v ...any) {
	c.logger.Print(errorMark.Sprint("error:") + " " + fmt.Sprintf(format, v...))
}

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger with one JSON object per line, carrying a
// "level" and a "message" field, for consumers that collect diagnostics
// with other tooling.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a new structured logger writing to writer.
// A nil writer discards output. With silent set, only errors are written.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs an info-level entry.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write("info", fmt.Sprintf(format, v...))
}

// Println logs an info-level entry.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write("info", fmt.Sprint(v...))
}

// Errorf formats and logs an error-level entry, regardless of silent mode.
func (j *JSONLogger) Errorf(format string, v ...any) {
	j.write("error", fmt.Sprintf(format, v...))
}

// write encodes the entry into a pooled buffer so each line reaches the
// writer in a single call.
func (j *JSONLogger) write(level, msg string) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	// Encoder appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry{Level: level, Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	buf.WriteTo(j.writer)
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
