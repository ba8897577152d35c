// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/fault"
)

// basic defaults (a relative log directory is relative to the
// directory containing the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "powcheck.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// Configuration - settings shared by all commands
type Configuration struct {
	Workers  int                  `gluamapper:"workers" json:"workers"`
	Strategy string               `gluamapper:"strategy" json:"strategy"`
	Logging  logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Default - settings used when no configuration file is given
//
// logs go to a directory below the system temporary directory
func Default() *Configuration {
	return &Configuration{
		Workers:  runtime.NumCPU(),
		Strategy: blockdigest.MidstateHash.String(),
		Logging: logger.Configuration{
			Directory: filepath.Join(os.TempDir(), "powcheck"),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}
}

// Read - read decode and verify a configuration file
func Read(fileName string) (*Configuration, error) {
	fileName, err := filepath.Abs(filepath.Clean(fileName))
	if nil != err {
		return nil, err
	}
	baseDirectory, _ := filepath.Split(fileName)

	options := Default()
	options.Logging.Directory = defaultLogDirectory

	if err := ParseConfigurationFile(fileName, options); err != nil {
		return nil, err
	}

	if err := options.Validate(); nil != err {
		return nil, err
	}

	options.Logging.Directory = ensureAbsolute(baseDirectory, options.Logging.Directory)

	return options, nil
}

// Validate - check values that cannot be corrected
func (c *Configuration) Validate() error {
	if c.Workers < 1 {
		return fault.ErrInvalidWorkerCount
	}
	if _, err := blockdigest.ParseStrategy(c.Strategy); nil != err {
		return err
	}
	switch filepath.Dir(c.Logging.File) {
	case ".":
		if "" == c.Logging.File {
			return fault.ErrInvalidLogFileName
		}
	default:
		return fault.ErrInvalidLogFileName
	}
	return nil
}

// HashStrategy - the configured digest strategy
func (c *Configuration) HashStrategy() blockdigest.Strategy {
	s, err := blockdigest.ParseStrategy(c.Strategy)
	if nil != err {
		return blockdigest.FullHash
	}
	return s
}

// MakeLogDirectory - create the log directory if it does not exist
func (c *Configuration) MakeLogDirectory() error {
	return os.MkdirAll(c.Logging.Directory, 0o700)
}

func ensureAbsolute(directory string, path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(directory, path)
	}
	return filepath.Clean(path)
}
