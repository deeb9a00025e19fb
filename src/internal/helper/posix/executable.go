// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"strings"
)

// DefaultName is reported when the process was started without argv[0].
const DefaultName = "x509-cert-bench"

// ExecutableName returns the name the process was invoked as, for usage strings.
func ExecutableName() string {
	if len(os.Args) == 0 {
		return DefaultName
	}
	return BaseName(os.Args[0])
}

// BaseName reduces an invocation path to a bare command name.
//
// Both '/' and '\' separate components regardless of the host OS, so a
// Windows path yields the same name on every platform. A trailing ".exe"
// is removed. Empty input yields [DefaultName].
func BaseName(arg0 string) string {
	parts := strings.FieldsFunc(arg0, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return DefaultName
	}

	name := strings.TrimSuffix(parts[len(parts)-1], ".exe")
	if name == "" || name == "." || name == ".." {
		return DefaultName
	}
	return name
}
