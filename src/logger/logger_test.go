// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/logger"
)

func decodeLines(t *testing.T, output string) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(output), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "failed to parse JSON line %q", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestCLILogger(t *testing.T) {
	color.NoColor = true

	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Printf("loaded %d trust anchor(s)", 3)

				assert.Equal(t, "loaded 3 trust anchor(s)\n", buf.String())
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Println("end", "of", "input")

				assert.Equal(t, "end of input\n", buf.String())
			},
		},
		{
			name: "Errorf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				log.Errorf("protocol: %s", "leaf not read yet")

				assert.Equal(t, "error: protocol: leaf not read yet\n", buf.String())
			},
		},
		{
			name: "Silent Keeps Errors",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)
				log.SetSilent(true)

				log.Printf("hidden %d", 1)
				log.Println("hidden")
				log.Errorf("shown")

				assert.Equal(t, "error: shown\n", buf.String())
			},
		},
		{
			name: "SetOutput",
			testFunc: func(t *testing.T) {
				var buf1, buf2 bytes.Buffer
				log := logger.NewCLILogger()

				log.SetOutput(&buf1)
				log.Println("first")

				log.SetOutput(&buf2)
				log.Println("second")

				assert.Contains(t, buf1.String(), "first")
				assert.Contains(t, buf2.String(), "second")
				assert.NotContains(t, buf1.String(), "second")
			},
		},
		{
			name: "ConcurrentUsage",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewCLILogger()
				log.SetOutput(&buf)

				const numGoroutines = 50
				const messagesPerGoroutine = 10

				var wg sync.WaitGroup
				for i := range numGoroutines {
					wg.Go(func() {
						for j := range messagesPerGoroutine {
							log.Printf("goroutine %d message %d", i, j)
						}
					})
				}
				wg.Wait()

				lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
				assert.Len(t, lines, numGoroutines*messagesPerGoroutine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Printf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Printf("loaded %d trust anchor(s)", 2)

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "info", entries[0]["level"])
				assert.Equal(t, "loaded 2 trust anchor(s)", entries[0]["message"])
			},
		},
		{
			name: "Println",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("end of input")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "info", entries[0]["level"])
				assert.Equal(t, "end of input", entries[0]["message"])
			},
		},
		{
			name: "Errorf",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Errorf("roots: %s", "no trust anchors found")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "error", entries[0]["level"])
				assert.Equal(t, "roots: no trust anchors found", entries[0]["message"])
			},
		},
		{
			name: "Silent Keeps Errors",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, true)

				for i := range 20 {
					log.Printf("message %d", i)
					log.Println("message", i)
				}
				log.Errorf("fatal")

				entries := decodeLines(t, buf.String())
				require.Len(t, entries, 1)
				assert.Equal(t, "error", entries[0]["level"])
			},
		},
		{
			name: "SetOutput_Nil",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				log.Println("before")
				log.SetOutput(nil)
				log.Println("after")

				assert.Contains(t, buf.String(), "before")
				assert.NotContains(t, buf.String(), "after")
			},
		},
		{
			name: "NilWriter",
			testFunc: func(t *testing.T) {
				log := logger.NewJSONLogger(nil, false)

				assert.NotPanics(t, func() {
					log.Printf("test")
					log.Errorf("test")
				})
			},
		},
		{
			name: "JSONEscaping",
			testFunc: func(t *testing.T) {
				var buf bytes.Buffer
				log := logger.NewJSONLogger(&buf, false)

				inputs := []string{
					`quote"test`,
					`back\slash`,
					"newline\ntest",
					"carriage\rreturn",
					"tab\ttest",
					"control\x01test",
					`protocol: invalid command (line "leaf: <MII...>")`,
				}

				for _, input := range inputs {
					buf.Reset()
					log.Printf("%s", input)

					entries := decodeLines(t, buf.String())
					require.Len(t, entries, 1, "input %q", input)
					assert.Equal(t, input, entries[0]["message"], "input %q", input)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.testFunc(t)
		})
	}
}

func TestJSONLogger_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf, false)

	const numGoroutines = 50
	const messagesPerGoroutine = 20

	var wg sync.WaitGroup
	for i := range numGoroutines {
		wg.Go(func() {
			for j := range messagesPerGoroutine {
				if j%2 == 0 {
					log.Printf("goroutine %d message %d", i, j)
				} else {
					log.Println("goroutine", i, "message", j)
				}
			}
		})
	}
	wg.Wait()

	entries := decodeLines(t, buf.String())
	assert.Len(t, entries, numGoroutines*messagesPerGoroutine)
}

func TestLoggerInterface(t *testing.T) {
	var _ logger.Logger = logger.NewCLILogger()
	var _ logger.Logger = logger.NewJSONLogger(nil, false)
}
