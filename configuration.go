// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/supersanta183/orev2-cli/configuration"
	"github.com/supersanta183/orev2-cli/mine"
	"github.com/supersanta183/orev2-cli/publish"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "orev2-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultBufferTime = 5 // seconds reserved to land the submission
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var defaultLogLevels = LoglevelMap{
	logger.DefaultTag: "info",
}

// Configuration - the full configuration file layout
type Configuration struct {
	DataDirectory string                `gluamapper:"data_directory" json:"data_directory"`
	MinDifficulty int                   `gluamapper:"min_difficulty" json:"min_difficulty"`
	Mining        mine.Configuration    `gluamapper:"mining" json:"mining"`
	Publishing    publish.Configuration `gluamapper:"publishing" json:"publishing"`
	Logging       logger.Configuration  `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		MinDifficulty: 0,

		Mining: mine.Configuration{
			Workers:    0, // one per core
			BufferTime: defaultBufferTime,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force the log directory to be absolute
	// if not, assign it to the data directory
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(options.DataDirectory, options.Logging.Directory)
	}

	return options, nil
}
