package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/eclypse-prime/pijersi-rs/engine"
	"github.com/eclypse-prime/pijersi-rs/uci"
)

func main() {
	hashMB := flag.Int("hash", 32, "transposition table size in megabytes")
	threads := flag.Int("threads", 0, "search worker count (0 = all logical CPUs)")
	bookPath := flag.String("book", "", "opening book file path")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := engine.DefaultOptions()
	opts.HashMB = *hashMB
	if *threads > 0 {
		opts.Threads = *threads
	}
	if *bookPath != "" {
		opts.BookPath = *bookPath
		opts.UseBook = true
	} else {
		opts.UseBook = false
	}

	eng := engine.NewEngine(opts)
	proto := uci.New(eng, os.Stdout)
	if err := proto.Run(context.Background(), os.Stdin); err != nil {
		log.Fatal().Err(err).Msg("protocol loop exited with an error")
	}
}
