// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"io"
	"strings"
)

// SignFormat 签名格式
type SignFormat int32

// 支持的签名格式, 新增签名算法需要同时增加驱动包和这里的类型值
const (
	TyUnknown SignFormat = 0
	// TyBlake3 keyed hash, 对称密钥
	TyBlake3 SignFormat = 1
	// TyEd25519 非对称签名
	TyEd25519 SignFormat = 2
)

// sign format names
const (
	NameBlake3  = "blake3"
	NameEd25519 = "ed25519"
)

// String name of the format
func (f SignFormat) String() string {
	switch f {
	case TyBlake3:
		return NameBlake3
	case TyEd25519:
		return NameEd25519
	default:
		return "unknown"
	}
}

// Valid 是否为已定义的签名格式
func (f SignFormat) Valid() bool {
	switch f {
	case TyBlake3, TyEd25519:
		return true
	default:
		return false
	}
}

// ParseSignFormat name -> SignFormat
func ParseSignFormat(name string) (SignFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameBlake3:
		return TyBlake3, nil
	case NameEd25519:
		return TyEd25519, nil
	default:
		return TyUnknown, wrapf(ErrUnknownFormat, "invalid format: %s", name)
	}
}

// Signer 签名
type Signer interface {
	Sign(r io.Reader) ([]byte, error)
}

// Verifier 验签
type Verifier interface {
	Verify(r io.Reader, sig []byte) (bool, error)
}

// Driver 签名算法驱动, key 的合法性在 NewSigner/NewVerifier 时检查一次
type Driver interface {
	NewSigner(key []byte) (Signer, error)
	NewVerifier(key []byte) (Verifier, error)
	GenKey(rand io.Reader) (*KeySet, error)
}

// KeyFile a generated key, Name is the key file basename
type KeyFile struct {
	Name  string
	Bytes []byte
}

// KeySet 按生成顺序保存的密钥集合, 名称不可重复
type KeySet struct {
	files []KeyFile
}

// NewKeySet new
func NewKeySet() *KeySet {
	return &KeySet{}
}

// Add appends a key, duplicate names are rejected
func (ks *KeySet) Add(name string, key []byte) error {
	if _, ok := ks.Get(name); ok {
		return wrapf(ErrDuplicateKeyName, "key name %q", name)
	}
	ks.files = append(ks.files, KeyFile{Name: name, Bytes: key})
	return nil
}

// Get key bytes by name
func (ks *KeySet) Get(name string) ([]byte, bool) {
	for _, f := range ks.files {
		if f.Name == name {
			return f.Bytes, true
		}
	}
	return nil, false
}

// Len number of keys
func (ks *KeySet) Len() int {
	return len(ks.files)
}

// Names key names in generation order
func (ks *KeySet) Names() []string {
	names := make([]string, 0, len(ks.files))
	for _, f := range ks.files {
		names = append(names, f.Name)
	}
	return names
}

// Files key files in generation order
func (ks *KeySet) Files() []KeyFile {
	files := make([]KeyFile, len(ks.files))
	copy(files, ks.files)
	return files
}
