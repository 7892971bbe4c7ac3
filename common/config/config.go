// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config 读取 toml 配置, 文件中的配置覆盖默认配置
package config

import (
	"github.com/33cn/rcli/types"
	tml "github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Default 默认配置
func Default() *types.Config {
	cfg, err := InitCfgString("")
	if err != nil {
		panic(err)
	}
	return cfg
}

// InitCfgString 解析配置字符串
func InitCfgString(cfgstring string) (*types.Config, error) {
	var cfg types.Config
	if _, err := tml.Decode(types.GetDefaultCfgstring(), &cfg); err != nil {
		return nil, errors.Wrap(err, "decode default config")
	}
	if _, err := tml.Decode(cfgstring, &cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

// Init 读取配置文件, path 为空时只使用默认配置
func Init(path string) (*types.Config, error) {
	cfg, err := InitCfgString("")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := tml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config file %s", path)
	}
	return cfg, nil
}
