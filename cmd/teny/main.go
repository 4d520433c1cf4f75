// Copyright 2025 The Teny Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the teny Malagasy language server and repl.

teny answers spell checking, next word prediction, word completion,
lemmatization, entity extraction, phonotactic validation, translation
and sentiment requests from one in-memory lexicon. It can run as a msgpack
IPC server for editors, as an HTTP API, or as an interactive repl.

# Usage

Start the IPC server on stdin/stdout with default settings:

	teny

Serve the HTTP API and reload when data files change:

	teny serve --addr 127.0.0.1:5000

Try operations by hand:

	teny repl --op predict

Compile a data directory into a single snapshot file:

	teny compile --data ./data lexicon.db

# Data

The data directory may hold any of dictionary, ngrams, word_frequencies,
translations and gazetteers as .json or .yaml files. Missing or broken files
fall back to the built-in tables one table at a time, so an empty directory
still gives a working engine. A snapshot built by compile replaces the
directory entirely and must open.

# Configuration

Runtime configuration is a TOML file, created with defaults on first run:

	[server]
	addr = "127.0.0.1:5000"
	max_limit = 64
	max_input = 4096
	rate_limit = 200.0
	rate_burst = 50
	enable_cors = true
	watch = true

	[data]
	dir = "data"
	snapshot = ""

	[spell]
	min_score = 70.0
	max_suggestions = 5
	cache_size = 2048

	[predict]
	default_limit = 5
	min_prefix = 1
	max_prefix = 60

# IPC Protocol

See package server for the message layout. In short:

	{"id": "req1", "op": "check", "q": "tranoo"}
	{"id": "req1", "op": "check", "r": {"correct": false, "suggestions": ["trano", "rano"], ...}, "t": 87}

stdout carries nothing but msgpack; every log line goes to stderr.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/teny/cmd/teny/cmd"
)

// sigHandler cancels the returned context on the first interrupt and exits
// on the second.
func sigHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		<-c
		os.Exit(1)
	}()
	return ctx
}

func main() {
	if err := cmd.Execute(sigHandler()); err != nil {
		os.Exit(1)
	}
}
