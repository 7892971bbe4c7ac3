// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

var cfgstring = `
Title="rcli"

[log]
# 日志级别，支持debug(dbug)/info/warn/error(eror)/crit
loglevel = "error"
logConsoleLevel = "error"
# 日志文件名，可带目录，为空时只输出到控制台
logFile = ""
# 单个日志文件的最大值（单位：兆）
maxFileSize = 20
# 最多保存的历史日志文件个数
maxBackups = 5
# 最多保存的历史日志消息（单位：天）
maxAge = 28
# 日志文件名是否使用本地时间（否则使用UTC时间）
localTime = true
# 历史日志文件是否压缩（压缩格式为gz）
compress = false
# 是否打印调用源文件和行号
callerFile = false
# 是否打印调用方法
callerFunction = false

[text]
format = "blake3"
encoding = "base64url"
keyDir = "."
`

// GetDefaultCfgstring 默认配置
func GetDefaultCfgstring() string {
	return cfgstring
}
