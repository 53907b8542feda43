// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	defaultCount = 10
	defaultLimit = 256
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "units", HasArg: getoptions.NO_ARGUMENT, Short: 'u'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "limit", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'L'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		fmt.Printf(" tags:\n")
		for _, t := range poolTags() {
			fmt.Printf("       %s → %s\n", t.tag, t.name)
		}
		return
	}

	units := len(options["units"]) > 0
	if len(options["help"]) > 0 || 1 != len(options["file"]) || (!units && 0 == len(arguments)) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--ascii] [--count=N] [--limit=BYTES] --file=DATABASE (--units [start-address] | tag [key-prefix])", program)
	}

	ascii := len(options["ascii"]) > 0
	verbose := len(options["verbose"]) > 0

	count := intOption(program, options["count"], defaultCount)
	limit := intOption(program, options["limit"], defaultLimit)

	logging := logger.Configuration{
		Directory: ".",
		File:      "shardstore-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	database := options["file"][0]
	if verbose {
		fmt.Printf("database: %q\n", database)
	}

	err = storage.Initialise(database, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer storage.Finalise()

	if units {
		start := address.Address{}
		if len(arguments) > 0 {
			start, err = address.FromBase58(arguments[0])
			if nil != err {
				exitwithstatus.Message("%s: start address: %q error: %s", program, arguments[0], err)
			}
		}
		if err := dumpUnits(os.Stdout, start, count, limit, ascii); nil != err {
			exitwithstatus.Message("%s: error listing units: %s", program, err)
		}
		return
	}

	tag := arguments[0]
	p := poolByTag(tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	cursor := p.NewFetchCursor()
	if len(arguments) > 1 {
		prefix, err := hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
		cursor.Seek(prefix)
	}

	data, err := cursor.Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}
	dumpElements(os.Stdout, data, limit, ascii)
}

// non-negative integer option, or the default if absent
func intOption(program string, values []string, defaultValue int) int {
	if 0 == len(values) {
		return defaultValue
	}
	n, err := strconv.Atoi(values[0])
	if nil != err {
		exitwithstatus.Message("%s: convert: %q error: %s", program, values[0], err)
	}
	if n < 1 {
		exitwithstatus.Message("%s: invalid value: %d", program, n)
	}
	return n
}

// decoded units in address order
func dumpUnits(w io.Writer, start address.Address, count int, limit int, ascii bool) error {
	units, next, err := ledger.List(start, count)
	if nil != err {
		return err
	}
	for i, u := range units {
		fmt.Fprintf(w, "%d: Address:  %s\n", i, u.Address)
		fmt.Fprintf(w, "%d: Owner:    %s\n", i, u.Owner)
		fmt.Fprintf(w, "%d: Lamports: %d\n", i, u.Lamports)
		fmt.Fprintf(w, "%d: Size:     %d\n", i, u.Capacity())
		dumpValue(w, fmt.Sprintf("%d: Data: ", i), u.Data, limit, ascii)
	}
	if !next.IsZero() {
		fmt.Fprintf(w, "next: %s\n", next)
	}
	return nil
}
