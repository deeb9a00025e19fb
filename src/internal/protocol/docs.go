// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package protocol defines the line-oriented benchmark protocol.
//
// Input, one command per line:
//
//	leaf: <base64 DER>      set the leaf certificate
//	interm: <base64 DER>    append an intermediate certificate
//	repeat: <1..128>        set the trial count for later validations
//	validate                validate without a hostname check
//	domain: <hostname>      validate against hostname
//
// Output, one line per validation:
//
//	result: <OK|token> <us_1> ... <us_n>
//
// Every violation of the input grammar is an *[Error] and is fatal to the
// benchmark process.
package protocol
