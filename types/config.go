// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types rcli 配置结构定义
package types

// Config rcli 配置
type Config struct {
	Title string `toml:"Title"`
	Log   Log    `toml:"log"`
	Text  Text   `toml:"text"`
}

// Log 日志配置
type Log struct {
	// 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
	Loglevel        string `toml:"loglevel"`
	LogConsoleLevel string `toml:"logConsoleLevel"`
	// 日志文件名，可带目录，为空时只输出到控制台
	LogFile string `toml:"logFile"`
	// 单个日志文件的最大值（单位：兆）
	MaxFileSize uint32 `toml:"maxFileSize"`
	// 最多保存的历史日志文件个数
	MaxBackups uint32 `toml:"maxBackups"`
	// 最多保存的历史日志消息（单位：天）
	MaxAge uint32 `toml:"maxAge"`
	// 日志文件名是否使用本地时间（否则使用UTC时间）
	LocalTime bool `toml:"localTime"`
	// 历史日志文件是否压缩（压缩格式为gz）
	Compress bool `toml:"compress"`
	// 是否打印调用源文件和行号
	CallerFile bool `toml:"callerFile"`
	// 是否打印调用方法
	CallerFunction bool `toml:"callerFunction"`
}

// Text text 子命令的默认参数
type Text struct {
	// 默认签名格式 blake3/ed25519
	Format string `toml:"format"`
	// 签名和密文的文本编码 base64url/base64/hex/base58
	Encoding string `toml:"encoding"`
	// generate 的默认输出目录
	KeyDir string `toml:"keyDir"`
}
