// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 文本签名、验签接口定义及驱动分发
package crypto

import (
	"io"
	"sync"

	"github.com/33cn/rcli/common/log"
)

var (
	drivers     = make(map[SignFormat]Driver)
	driverNames = make(map[string]SignFormat)
	driverMutex sync.RWMutex

	clog = log.New("module", "crypto")
)

// Register 注册签名驱动, 只在 init 中调用
func Register(ty SignFormat, name string, driver Driver) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if !ty.Valid() || ty.String() != name {
		panic("crypto: Register invalid sign format " + name)
	}
	if _, dup := drivers[ty]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	drivers[ty] = driver
	driverNames[name] = ty
}

// GetType 获取 name 对应的签名格式
func GetType(name string) SignFormat {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	if ty, ok := driverNames[name]; ok {
		return ty
	}
	return TyUnknown
}

// Load 获取签名格式对应的驱动
func Load(ty SignFormat) (Driver, error) {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	d, ok := drivers[ty]
	if !ok {
		return nil, wrapf(ErrUnknownFormat, "no driver for sign format %d", ty)
	}
	return d, nil
}

// Sign 使用 key 对 r 的全部内容签名
func Sign(r io.Reader, key []byte, format SignFormat) ([]byte, error) {
	d, err := Load(format)
	if err != nil {
		return nil, err
	}
	signer, err := d.NewSigner(key)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(r)
	if err != nil {
		return nil, err
	}
	clog.Debug("Sign", "format", format, "sigLen", len(sig))
	return sig, nil
}

// Verify 验证签名, 签名不匹配返回 false 而不是错误
func Verify(r io.Reader, key, sig []byte, format SignFormat) (bool, error) {
	d, err := Load(format)
	if err != nil {
		return false, err
	}
	verifier, err := d.NewVerifier(key)
	if err != nil {
		return false, err
	}
	ok, err := verifier.Verify(r, sig)
	if err != nil {
		return false, err
	}
	clog.Debug("Verify", "format", format, "result", ok)
	return ok, nil
}

// Validate 验证签名, 不匹配返回 ErrSign
func Validate(r io.Reader, key, sig []byte, format SignFormat) error {
	d, err := Load(format)
	if err != nil {
		return err
	}
	return BasicValidation(d, r, key, sig)
}

// GenerateKeys 为签名格式生成新的密钥集合
func GenerateKeys(format SignFormat, opts ...Option) (*KeySet, error) {
	d, err := Load(format)
	if err != nil {
		return nil, err
	}
	o := ApplyOptions(opts...)
	keys, err := d.GenKey(o.Rand)
	if err != nil {
		return nil, err
	}
	clog.Debug("GenerateKeys", "format", format, "names", keys.Names())
	return keys, nil
}
