// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledgertest - scratch ledger for package tests
//
// Main is called from a package's TestMain: it opens a fresh database in
// a "testing" directory under the package, runs the tests on the testing
// chain, then removes everything.
package ledgertest

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shardstore/chain"
	"github.com/bitmark-inc/shardstore/mode"
	"github.com/bitmark-inc/shardstore/storage"
)

// Directory - scratch area relative to the package under test
const Directory = "testing"

// Main - run the tests of m against a scratch ledger and exit
func Main(m *testing.M) {
	if err := setup(); nil != err {
		fmt.Fprintf(os.Stderr, "setup error: %s\n", err)
		teardown()
		os.Exit(1)
	}
	result := m.Run()
	teardown()
	os.Exit(result)
}

func setup() error {
	os.RemoveAll(Directory)
	if err := os.Mkdir(Directory, 0o700); nil != err {
		return err
	}

	logging := logger.Configuration{
		Directory: Directory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "trace",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}

	if err := mode.Initialise(chain.Testing); nil != err {
		return err
	}
	return storage.Initialise(filepath.Join(Directory, "test"), storage.ReadWrite)
}

func teardown() {
	storage.Finalise()
	_ = mode.Finalise()
	logger.Finalise()
	os.RemoveAll(Directory)
}
