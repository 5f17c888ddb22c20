// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/classdoc

package main

import (
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing timestamped lines ("15:04:05.00") to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// logLevel maps the global verbose flag to a log level.
func logLevel(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}

	return log.InfoLevel
}
