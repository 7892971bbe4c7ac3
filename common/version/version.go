// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package version rcli 版本信息
package version

const version = "1.0.0"

// GitCommit set by -ldflags "-X github.com/33cn/rcli/common/version.GitCommit=..."
var GitCommit string

//GetVersion 获取版本号
func GetVersion() string {
	if GitCommit != "" {
		return version + "-" + GitCommit
	}
	return version
}
