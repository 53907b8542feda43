// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/mode"
	"github.com/bitmark-inc/shardstore/processor"
	"github.com/bitmark-inc/shardstore/rent"
	"github.com/bitmark-inc/shardstore/storage"
)

type metadata struct {
	config    *Configuration
	processor *processor.Processor
	log       *logger.L
	verbose   bool
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "shardctl"
	app.Usage = "operate on a sharded program state ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " configuration `FILE` [built in defaults]",
		},
	}
	app.Commands = commands()

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		// no ledger needed for these
		switch c.Args().Get(0) {
		case "", "version", "help", "h":
			return nil
		}

		file := c.GlobalString("config-file")
		if verbose {
			fmt.Fprintf(e, "reading config file: %q\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		log := logger.New("shardctl")
		log.Infof("configuration: %+v", configuration)

		if err := mode.Initialise(configuration.Chain); nil != err {
			logger.Finalise()
			return err
		}

		if verbose {
			fmt.Fprintf(e, "database: %q\n", configuration.database())
		}
		if err := storage.Initialise(configuration.database(), false); nil != err {
			mode.Finalise()
			logger.Finalise()
			return err
		}

		rent.Configure(configuration.Rent)

		c.App.Metadata["config"] = &metadata{
			config:    configuration,
			processor: processor.New(configuration.program, configuration.catalog()),
			log:       log,
			verbose:   verbose,
			e:         e,
			w:         w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok {
			return nil
		}
		m.log.Info("shutting down…")
		storage.Finalise()
		mode.Finalise()
		logger.Finalise()
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
