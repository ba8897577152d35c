// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/powcheck/blockdigest"
	"github.com/bitmark-inc/powcheck/configuration"
	"github.com/bitmark-inc/powcheck/fault"
)

const fullConfiguration = `
local directory = "logs"
return {
    workers = 3,
    strategy = "full",
    logging = {
        directory = directory,
        file = "check.log",
        size = 4096,
        count = 2,
        levels = {
            DEFAULT = "info",
            proof = "debug",
        },
    },
}
`

func writeConfiguration(t *testing.T, text string) string {
	fileName := filepath.Join(t.TempDir(), "powcheck.conf")
	if err := os.WriteFile(fileName, []byte(text), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName
}

func TestRead(t *testing.T) {
	fileName := writeConfiguration(t, fullConfiguration)

	c, err := configuration.Read(fileName)
	if nil != err {
		t.Fatalf("read error: %s", err)
	}

	assert.Equal(t, 3, c.Workers, "wrong workers")
	assert.Equal(t, blockdigest.FullHash, c.HashStrategy(), "wrong strategy")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "logs"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "check.log", c.Logging.File, "wrong log file")
	assert.Equal(t, 4096, c.Logging.Size, "wrong log size")
	assert.Equal(t, 2, c.Logging.Count, "wrong log count")
	assert.Equal(t, "debug", c.Logging.Levels["proof"], "wrong proof level")

	assert.Nil(t, c.MakeLogDirectory(), "log directory error")
	info, err := os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "stat error")
	assert.True(t, info.IsDir(), "log directory not created")
}

func TestReadDefaults(t *testing.T) {
	fileName := writeConfiguration(t, "return {}")

	c, err := configuration.Read(fileName)
	if nil != err {
		t.Fatalf("read error: %s", err)
	}

	d := configuration.Default()
	assert.Equal(t, d.Workers, c.Workers, "wrong workers")
	assert.Equal(t, blockdigest.MidstateHash, c.HashStrategy(), "wrong strategy")
	assert.Equal(t, filepath.Join(filepath.Dir(fileName), "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "powcheck.log", c.Logging.File, "wrong log file")
	assert.Equal(t, "critical", c.Logging.Levels[logger.DefaultTag], "wrong default level")
}

func TestArgument(t *testing.T) {
	fileName := writeConfiguration(t, `return { strategy = arg[0] == "" and "full" or "midstate" }`)

	c, err := configuration.Read(fileName)
	if nil != err {
		t.Fatalf("read error: %s", err)
	}
	assert.Equal(t, "midstate", c.Strategy, "arg[0] not set")
}

func TestReadInvalid(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{"return { workers = 0 }", fault.ErrInvalidWorkerCount},
		{"return { strategy = \"fast\" }", fault.ErrInvalidStrategy},
		{"return { logging = { file = \"a/b.log\" } }", fault.ErrInvalidLogFileName},
		{"return 42", fault.ErrConfigurationNotTable},
	}

	for i, item := range tests {
		fileName := writeConfiguration(t, item.text)
		_, err := configuration.Read(fileName)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestReadSyntaxError(t *testing.T) {
	fileName := writeConfiguration(t, "return {")
	_, err := configuration.Read(fileName)
	assert.NotNil(t, err, "syntax error accepted")
}

func TestParseNotStructPointer(t *testing.T) {
	fileName := writeConfiguration(t, "return {}")

	var c configuration.Configuration
	err := configuration.ParseConfigurationFile(fileName, c)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "value accepted")

	n := 0
	err = configuration.ParseConfigurationFile(fileName, &n)
	assert.Equal(t, fault.ErrInvalidStructPointer, err, "int pointer accepted")
}
