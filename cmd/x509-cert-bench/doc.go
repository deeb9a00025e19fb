// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// x509-cert-bench measures how long X.509 certificate chain validation takes.
//
// It loads trust anchors from a PEM bundle, fixes the validation time to a
// Unix timestamp, then reads chains and validation commands from stdin and
// writes one result line per validation to stdout. Diagnostics go to stderr.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-cert-bench/cmd/x509-cert-bench@latest
//
// # Usage
//
//	x509-cert-bench [FLAGS] ROOTS_PEM UNIX_TIMESTAMP
//
// # Flags
//
//	-c, --config       Configuration file (.json, .yaml, .yml)
//	-r, --repeat       Trial count until the first repeat line (default 1)
//	    --timing       verify (default) or trial
//	    --raw-errors   Report the verifier's own error text
//	    --summary      Write a summary table to stderr at end of input
//	    --log-format   text (default) or json
//	-q, --quiet        Suppress informational diagnostics
//
// # Protocol
//
//	leaf: <base64 DER>      start a chain
//	interm: <base64 DER>    append an intermediate
//	repeat: <1..128>        trial count for following validations
//	validate                validate without a hostname check
//	domain: <hostname>      validate with a hostname check
//
// Each validation prints
//
//	result: <token> <us_1> ... <us_n>
//
// where token is OK or a whitespace-free failure reason, followed by one
// duration in microseconds per trial.
//
// # Exit Codes
//
//	0    end of input
//	1    invalid arguments, unloadable trust store, or malformed input
//	130  interrupted
//
// # Examples
//
// Validate a chain ten times at a fixed instant:
//
//	printf 'repeat: 10\nleaf: %s\ninterm: %s\ndomain: example.com\n' "$LEAF" "$INTER" |
//	  x509-cert-bench roots.pem 1748779200
package main
