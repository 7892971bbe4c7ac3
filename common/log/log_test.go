// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/rcli/types"
	log15 "github.com/inconshreveable/log15"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, log15.LvlDebug, getLevel("debug"))
	assert.Equal(t, log15.LvlInfo, getLevel("info"))
	assert.Equal(t, log15.LvlError, getLevel("eror"))
	assert.Equal(t, log15.LvlError, getLevel("not-a-level"))
}

func TestDefaultHandler(t *testing.T) {
	var buf bytes.Buffer
	old := consoleWriter
	consoleWriter = &buf
	defer func() {
		consoleWriter = old
		resetDefault()
	}()

	resetDefault()
	l := New("module", "test")
	l.Debug("EncryptSymmetric", "plainLen", 5)
	l.Info("info message")
	assert.Empty(t, buf.String())

	l.Error("error message")
	assert.Contains(t, buf.String(), "error message")
}

func TestFillDefaultValue(t *testing.T) {
	cfg := &types.Log{}
	fillDefaultValue(cfg)
	assert.Equal(t, "eror", cfg.Loglevel)
	assert.Equal(t, "eror", cfg.LogConsoleLevel)
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	old := consoleWriter
	consoleWriter = &buf
	defer func() {
		consoleWriter = old
		log15.Root().SetHandler(log15.DiscardHandler())
	}()

	SetLogLevel("info")
	l := New("module", "test")
	l.Debug("hidden message")
	l.Info("visible message")
	assert.Contains(t, buf.String(), "visible message")
	assert.NotContains(t, buf.String(), "hidden message")
}

func TestSetFileLog(t *testing.T) {
	var buf bytes.Buffer
	old := consoleWriter
	consoleWriter = &buf
	defer func() {
		consoleWriter = old
		log15.Root().SetHandler(log15.DiscardHandler())
	}()

	file := filepath.Join(t.TempDir(), "logs", "rcli.log")
	SetFileLog(&types.Log{
		Loglevel:        "debug",
		LogConsoleLevel: "crit",
		LogFile:         file,
		MaxFileSize:     1,
		MaxBackups:      1,
	})
	New("module", "test").Debug("to file", "n", 1)

	data, err := os.ReadFile(file)
	require.Nil(t, err)
	assert.Contains(t, string(data), "to file")
	assert.Contains(t, string(data), "module=test")
	assert.Empty(t, buf.String())
}
