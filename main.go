// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/supersanta183/orev2-cli/mine"
	"github.com/supersanta183/orev2-cli/pay"
	"github.com/supersanta183/orev2-cli/publish"
	"github.com/supersanta183/orev2-cli/solver"
)

// how long a fetched round state stays fresh
const sourceCacheTime = 5 * time.Second

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--version] --config-file=FILE", program)
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// where winning solutions go: a zmq hand-off when endpoints are
	// configured, otherwise log only (dry run)
	submitter := mine.Submitter(mine.SubmitFunc(
		func(solution mine.Solution, decision pay.Decision) error {
			log.Infof("dry run: %s  tier: %s", solution, decision.Tier)
			return nil
		}))

	if 0 != len(theConfiguration.Publishing.Submit) {
		err = publish.Initialise(&theConfiguration.Publishing)
		if nil != err {
			log.Criticalf("publish initialise error: %s", err)
			exitwithstatus.Message("publish initialise error: %s", err)
		}
		defer publish.Finalise()
		submitter = mine.SubmitFunc(publish.Submit)
	} else {
		log.Warn("no submit endpoints configured, running dry")
	}

	// round parameters: a self-generated local source, cached so the
	// loop's repeated reads do not regenerate mid-round
	source := mine.NewCachedSource(
		mine.NewLocalSource(uint32(theConfiguration.MinDifficulty)),
		sourceCacheTime,
	)

	// start the mining loop
	err = mine.Initialise(&theConfiguration.Mining, source, solver.New(), submitter)
	if nil != err {
		log.Criticalf("mine initialise error: %s", err)
		exitwithstatus.Message("mine initialise error: %s", err)
	}
	defer mine.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	log.Info("shutting down…")
}
