// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/chain"
	"github.com/bitmark-inc/shardstore/configuration"
	"github.com/bitmark-inc/shardstore/constants"
	"github.com/bitmark-inc/shardstore/rent"
	"github.com/bitmark-inc/shardstore/state"
	"github.com/bitmark-inc/shardstore/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file

	defaultDatabaseDirectory = "data"
	defaultDatabaseName      = "shardstore"

	defaultLogDirectory = "log"
	defaultLogFile      = "shardctl.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "error",
}

// DatabaseType - where the ledger is kept
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Chain         string               `gluamapper:"chain" json:"chain"`
	Program       string               `gluamapper:"program_id" json:"program_id"`
	PairsPerRound int                  `gluamapper:"pairs_per_round" json:"pairs_per_round"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Rent          rent.Rent            `gluamapper:"rent" json:"rent"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	program address.Address
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Chain:         chain.Local,
		Program:       address.FromLabel(constants.DefaultProgramLabel).String(),
		PairsPerRound: state.DefaultPairsPerRound,
		Database: DatabaseType{
			Directory: defaultDatabaseDirectory,
			Name:      defaultDatabaseName,
		},
		Rent: rent.Default,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	baseDirectory := "."
	if "" != configurationFileName {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		if !util.EnsureFileExists(fileName) {
			return nil, fmt.Errorf("configuration file: %q does not exist", fileName)
		}
		baseDirectory, _ = filepath.Split(fileName)

		variables := map[string]string{
			"directory": baseDirectory,
		}
		if err := configuration.ParseConfigurationFile(fileName, options, variables); nil != err {
			return nil, err
		}
	}

	return options, options.check(baseDirectory)
}

// normalise names and paths, then validate
func (options *Configuration) check(baseDirectory string) error {

	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return fmt.Errorf("chain: %q is not supported", options.Chain)
	}

	program, err := address.FromBase58(options.Program)
	if nil != err {
		return fmt.Errorf("program_id: %q is not valid: %s", options.Program, err)
	}
	options.program = program

	if options.PairsPerRound <= 0 {
		return fmt.Errorf("pairs_per_round: %d must be positive", options.PairsPerRound)
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = baseDirectory
	}
	options.DataDirectory, err = filepath.Abs(filepath.Clean(options.DataDirectory))
	if nil != err {
		return err
	}

	if !util.IsPlainName(options.Database.Name) {
		return fmt.Errorf("database name: %q is not plain name", options.Database.Name)
	}
	if !util.IsPlainName(options.Logging.File) {
		return fmt.Errorf("log file: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return err
		}
	}

	return nil
}

// database - base name passed to storage
func (options *Configuration) database() string {
	return filepath.Join(options.Database.Directory, options.Database.Name)
}

// catalog - production dimensions with the configured hashing rate
func (options *Configuration) catalog() state.Catalog {
	c := state.Default
	c.PairsPerRound = options.PairsPerRound
	return c
}
