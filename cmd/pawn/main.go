// Copyright 2025 The Pawn Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main is the pawn command: a multilingual WordNet adapter served over
msgpack IPC, with a REPL and one-shot lookups for testing.

pawn answers WordNet queries (synsets, lemmas, morphology, completion) in
English and, through per-language vocabularies mapped onto the English synset
graph, in French and Russian. Non-English synsets get canonical names in their
own language such as chien.n.01.

# Usage

Start the IPC server with the configured default language:

	pawn serve

Explore interactively, switching languages with :lang:

	pawn repl -d

Look a word up once:

	pawn lookup chiens --lang fr --pos n

# Data

The data directory holds one word-synset source and an optional frequency file
per language, next to the English lexicon:

	data/en_lexicon.json
	data/fr_data.json     (or fr_data.msgpack)
	data/fr_vocab.txt
	data/ru_data.json
	data/ru_morph.tsv     (optional statistical analyser table)

# Configuration

Runtime configuration lives in $XDG_CONFIG_HOME/pawn/config.toml, created with
defaults on first run; --config points elsewhere. --data and --lexicon
override the configured paths.

# IPC Protocol

pawn serve reads msgpack requests from stdin and writes one msgpack response
per request to stdout. Logs go to stderr.

	{"id": "1", "op": "set_language", "lang": "fr", "analyzer": "auto"}
	{"id": "2", "op": "synsets", "token": "chiens"}
	{"id": "3", "p": "chi", "l": 10}
*/
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0-beta"
	AppName = "pawn"
	gh      = "https://github.com/bastiangx/pawn"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()

	opts := &rootOptions{}
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: "Multilingual WordNet lookups over msgpack IPC",
		Long: `pawn answers WordNet queries in English, French and Russian.

Commands:
  serve     msgpack IPC on stdin/stdout
  repl      interactive lookups
  lookup    one-shot synset lookup
  version   version and data info`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.applyLogging()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.toml")
	flags.StringVar(&opts.dataDir, "data", "", "directory holding <lang>_data and <lang>_vocab files")
	flags.StringVar(&opts.lexicon, "lexicon", "", "English lexicon file (.json or .msgpack)")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "toggle debug logging")

	rootCmd.AddCommand(serveCmd(opts))
	rootCmd.AddCommand(replCmd(opts))
	rootCmd.AddCommand(lookupCmd(opts))
	rootCmd.AddCommand(versionCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
