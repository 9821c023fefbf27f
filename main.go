// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

// minides prints the plaintext every key of a four-round, 9-bit-key Feistel
// teaching cipher produces for one 12-bit ciphertext.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/AeonDave/minides/internal/bitcodec"
	"github.com/AeonDave/minides/internal/minides"
	"github.com/AeonDave/minides/internal/pipeline"
	"github.com/AeonDave/minides/internal/report"
	"github.com/AeonDave/minides/internal/search"
)

const usageLine = "Usage: minides [flags] <12-bit ciphertext>"

var errWrongArgumentCount = errors.New("want exactly one ciphertext argument")

func main() { os.Exit(main1()) }

func main1() int {
	return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// run returns the process exit code: 0 on success or -h, 1 for any bad
// argument or flag.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flagSet := flag.NewFlagSet("minides", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagWorkers := flagSet.Int("workers", 1, "number of goroutines sharing the key search; 0 uses GOMAXPROCS")
	flagDebug := flagSet.Bool("debug", false, "print diagnostic logging to stderr")
	flagSet.Usage = func() {
		fmt.Fprintf(stderr, `%s

Decrypts the ciphertext under each of the %d keys and prints the
resulting plaintexts, ordered by key.

`, usageLine, minides.NumKeys)
		flagSet.PrintDefaults()
	}
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logOutput := io.Discard
	if *flagDebug {
		logOutput = stderr
	}
	logger := log.New(logOutput, "[minides] ", 0)

	input, err := ciphertextArg(flagSet.Args())
	if err != nil {
		fmt.Fprintf(stderr, "%s (%v)\n", usageLine, err)
		return 1
	}
	job := &decipherment{
		input:   input,
		workers: *flagWorkers,
		stdout:  stdout,
		logger:  logger,
	}
	if err := decipherPipeline.WithLogger(logger).Execute(ctx, job); err != nil {
		fmt.Fprintf(stderr, "minides: %v\n", err)
		return 1
	}
	return 0
}

func ciphertextArg(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("%w, got %d", errWrongArgumentCount, len(args))
	}
	return args[0], nil
}

// decipherment is the state threaded through one invocation.
type decipherment struct {
	input   string
	workers int
	stdout  io.Writer
	logger  *log.Logger

	ciphertext minides.Block
	records    []search.Record
}

var decipherPipeline = pipeline.New[*decipherment](
	pipeline.Func("parse", parseCiphertext),
	pipeline.Func("search", searchKeys),
	pipeline.Func("report", writeReport),
)

func parseCiphertext(_ context.Context, job *decipherment) error {
	n, err := bitcodec.Parse(job.input, minides.BlockBits)
	if err != nil {
		return err
	}
	job.ciphertext = minides.Block(n)
	job.logger.Printf("ciphertext %s = %d", job.input, n)
	return nil
}

func searchKeys(ctx context.Context, job *decipherment) error {
	if job.workers == 1 {
		job.records = search.Exhaust(job.ciphertext)
	} else {
		job.logger.Printf("sharding %d keys across %d workers", minides.NumKeys, search.Workers(job.workers))
		records, err := search.ExhaustParallel(ctx, job.ciphertext, job.workers)
		if err != nil {
			return err
		}
		job.records = records
	}
	job.logger.Printf("decrypted under %d keys", len(job.records))
	return nil
}

func writeReport(_ context.Context, job *decipherment) error {
	return report.WriteTable(job.stdout, job.ciphertext, job.records)
}
