// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/33cn/rcli/cli/commands"
	"github.com/33cn/rcli/common/version"
	_ "github.com/33cn/rcli/system/crypto/init"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootVersion(t *testing.T) {
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"--loglevel", "debug", "version"})
	require.Nil(t, root.Execute())
	assert.Equal(t, version.GetVersion()+"\n", out.String())
}

func TestRootSignWithConf(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "rcli.toml")
	require.Nil(t, ioutil.WriteFile(conf, []byte("[text]\nencoding = \"base58\"\n"), 0644))
	key := filepath.Join(dir, "blake3.txt")
	require.Nil(t, ioutil.WriteFile(key, bytes.Repeat([]byte{1}, 32), 0600))

	defer commands.SetConfig(nil)
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetIn(strings.NewReader("hello!"))
	root.SetArgs([]string{"--conf", conf, "text", "sign", "--key", key})
	require.Nil(t, root.Execute())
	sig := strings.TrimSpace(out.String())
	assert.NotEmpty(t, sig)
	assert.NotContains(t, sig, "0")

	// 子命令使用根命令加载的配置
	cfg := commands.GetConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "base58", cfg.Text.Encoding)
	assert.Equal(t, "blake3", cfg.Text.Format)
}

func TestRootBadConf(t *testing.T) {
	root := NewRootCmd()
	root.SetOut(ioutil.Discard)
	root.SetArgs([]string{"--conf", filepath.Join(t.TempDir(), "missing.toml"), "version"})
	assert.NotNil(t, root.Execute())
}
