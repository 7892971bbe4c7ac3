// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "rcli", cfg.Title)
	assert.Equal(t, "error", cfg.Log.Loglevel)
	assert.Equal(t, "error", cfg.Log.LogConsoleLevel)
	assert.Equal(t, "", cfg.Log.LogFile)
	assert.Equal(t, uint32(20), cfg.Log.MaxFileSize)
	assert.Equal(t, "blake3", cfg.Text.Format)
	assert.Equal(t, "base64url", cfg.Text.Encoding)
	assert.Equal(t, ".", cfg.Text.KeyDir)
}

func TestInitOverlay(t *testing.T) {
	cfg, err := Init("testdata/rcli.toml")
	require.Nil(t, err)
	assert.Equal(t, "test", cfg.Title)
	assert.Equal(t, "debug", cfg.Log.Loglevel)
	assert.Equal(t, "logs/rcli.log", cfg.Log.LogFile)
	assert.Equal(t, "ed25519", cfg.Text.Format)
	// keys missing from the file keep their defaults
	assert.Equal(t, "error", cfg.Log.LogConsoleLevel)
	assert.Equal(t, uint32(5), cfg.Log.MaxBackups)
	assert.Equal(t, "base64url", cfg.Text.Encoding)
}

func TestInitNoFile(t *testing.T) {
	cfg, err := Init("")
	require.Nil(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Init("testdata/not-exist.toml")
	assert.NotNil(t, err)
}

func TestInitCfgString(t *testing.T) {
	cfg, err := InitCfgString("[text]\nencoding=\"hex\"")
	require.Nil(t, err)
	assert.Equal(t, "hex", cfg.Text.Encoding)
	assert.Equal(t, "blake3", cfg.Text.Format)

	_, err = InitCfgString("[text\n")
	assert.NotNil(t, err)
}
