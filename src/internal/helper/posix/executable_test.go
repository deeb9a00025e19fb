// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/internal/helper/posix"
)

func TestBaseName(t *testing.T) {
	tests := []struct {
		name     string
		arg0     string
		expected string
	}{
		{name: "Just Filename", arg0: "x509-cert-bench", expected: "x509-cert-bench"},
		{name: "Relative Path", arg0: "./bench", expected: "bench"},
		{name: "Absolute Unix Path", arg0: "/usr/local/bin/bench", expected: "bench"},
		{name: "Windows Path With Exe", arg0: `C:\Program Files\bench\bench.exe`, expected: "bench"},
		{name: "Windows Path Without Exe", arg0: `C:\tools\bench`, expected: "bench"},
		{name: "Mixed Separators", arg0: `C:\tools/bin\bench.exe`, expected: "bench"},
		{name: "Trailing Separator", arg0: "/opt/bench/", expected: "bench"},
		{name: "Other Extensions Kept", arg0: "/opt/bench.sh", expected: "bench.sh"},
		{name: "Empty", arg0: "", expected: posix.DefaultName},
		{name: "Only Separators", arg0: "///", expected: posix.DefaultName},
		{name: "Dot", arg0: ".", expected: posix.DefaultName},
		{name: "Bare Exe Suffix", arg0: ".exe", expected: posix.DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, posix.BaseName(tt.arg0))
		})
	}
}

func TestExecutableName(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	os.Args = []string{"/tmp/go-build/bench.test"}
	assert.Equal(t, "bench.test", posix.ExecutableName())

	os.Args = nil
	assert.Equal(t, posix.DefaultName, posix.ExecutableName())
}
