// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

// Package report prints the key/plaintext table of an exhaustive search.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/AeonDave/minides/internal/bitcodec"
	"github.com/AeonDave/minides/internal/minides"
	"github.com/AeonDave/minides/internal/search"
)

// WriteTable writes the ciphertext line, the column header and one row per
// record, in the order given.
func WriteTable(w io.Writer, ciphertext minides.Block, records []search.Record) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Ciphertext: %12s (%4d)\n", bitcodec.Format(uint64(ciphertext), minides.BlockBits), ciphertext)
	fmt.Fprintf(bw, "%-15s\t%-15s\n", "Key", "Plaintext")
	for _, rec := range records {
		fmt.Fprintf(bw, "%9s (%3d)\t%12s (%4d)\n",
			bitcodec.Format(uint64(rec.Key), minides.KeyBits), rec.Key,
			bitcodec.Format(uint64(rec.Plaintext), minides.BlockBits), rec.Plaintext)
	}
	// bufio keeps the first write error; Flush reports it.
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}
