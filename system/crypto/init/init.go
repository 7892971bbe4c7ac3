// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package init 初始化系统签名驱动
package init

import (
	//初始化
	_ "github.com/33cn/rcli/system/crypto/blake3"
	_ "github.com/33cn/rcli/system/crypto/ed25519"
)
