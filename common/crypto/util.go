// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"io"
)

// ReadContent reads r to completion
func ReadContent(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, wrapf(ErrIO, "nil reader")
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapf(ErrIO, "read content: %v", err)
	}
	return content, nil
}

// CheckKeyLen 密钥长度检查
func CheckKeyLen(name string, key []byte, size int) error {
	if len(key) != size {
		return wrapf(ErrInvalidKeyLength, "%s key length %d, want %d", name, len(key), size)
	}
	return nil
}

// BasicValidation 签名验证基础实现, 验证失败返回 ErrSign
func BasicValidation(d Driver, r io.Reader, key, sig []byte) error {
	v, err := d.NewVerifier(key)
	if err != nil {
		return err
	}
	ok, err := v.Verify(r, sig)
	if err != nil {
		return err
	}
	if !ok {
		return ErrSign
	}
	return nil
}
