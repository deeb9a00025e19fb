// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/H0llyW00dzZ/x509-cert-bench/src/cli"
	"github.com/H0llyW00dzZ/x509-cert-bench/src/logger"
	verpkg "github.com/H0llyW00dzZ/x509-cert-bench/src/version"
)

var version string // set by ldflags or defaults to imported version

// Exit codes.
const (
	exitFailure   = 1
	exitInterrupt = 130
)

func init() {
	if version == "" {
		version = verpkg.Version
	}
}

func main() {
	log := logger.NewCLILogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)

	// The session blocks on stdin, so it runs beside the signal wait.
	go func() {
		done <- cli.Execute(ctx, version, log)
	}()

	select {
	case err := <-done:
		if err != nil {
			// Already reported by the cli package.
			exit(stop, exitFailure)
		}
	case <-ctx.Done():
		log.Println("interrupted, exiting")
		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
		}
		exit(stop, exitInterrupt)
	}
}

// exit restores default signal handling before terminating, since deferred
// calls do not run across os.Exit.
func exit(stop context.CancelFunc, code int) {
	stop()
	os.Exit(code)
}
