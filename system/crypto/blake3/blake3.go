// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blake3 blake3 keyed hash 文本签名驱动, 签名和验签使用同一个32字节密钥
package blake3

import (
	"crypto/subtle"
	"io"

	"github.com/33cn/rcli/common/crypto"
	lblake3 "lukechampine.com/blake3"
)

//const
const (
	Name = crypto.NameBlake3
	ID   = crypto.TyBlake3

	// KeyName secret key file name
	KeyName = "blake3.txt"
	// KeySize secret key size
	KeySize = 32
	// TagSize keyed hash output size
	TagSize = 32
)

func init() {
	crypto.Register(ID, Name, &Driver{})
}

//Driver 驱动
type Driver struct{}

//NewSigner 字节转为签名者
func (d Driver) NewSigner(key []byte) (crypto.Signer, error) {
	kh, err := newKeyedHash(key)
	if err != nil {
		return nil, err
	}
	return kh, nil
}

//NewVerifier 对称密钥, 与签名者相同
func (d Driver) NewVerifier(key []byte) (crypto.Verifier, error) {
	kh, err := newKeyedHash(key)
	if err != nil {
		return nil, err
	}
	return kh, nil
}

//GenKey 生成32字节随机密钥
func (d Driver) GenKey(rand io.Reader) (*crypto.KeySet, error) {
	key, err := crypto.RandBytes(rand, KeySize)
	if err != nil {
		return nil, err
	}
	keys := crypto.NewKeySet()
	if err := keys.Add(KeyName, key); err != nil {
		return nil, err
	}
	return keys, nil
}

// KeyedHash signs and verifies with the same secret
type KeyedHash struct {
	key [KeySize]byte
}

func newKeyedHash(key []byte) (*KeyedHash, error) {
	if err := crypto.CheckKeyLen(Name, key, KeySize); err != nil {
		return nil, err
	}
	kh := &KeyedHash{}
	copy(kh.key[:], key)
	return kh, nil
}

// Sum keyed hash of msg
func (kh *KeyedHash) Sum(msg []byte) []byte {
	h := lblake3.New(TagSize, kh.key[:])
	h.Write(msg)
	return h.Sum(nil)
}

//Sign 计算 r 全部内容的 keyed hash
func (kh *KeyedHash) Sign(r io.Reader) ([]byte, error) {
	msg, err := crypto.ReadContent(r)
	if err != nil {
		return nil, err
	}
	return kh.Sum(msg), nil
}

//Verify 重新计算并比较整个 tag, 长度不同直接不匹配
func (kh *KeyedHash) Verify(r io.Reader, sig []byte) (bool, error) {
	tag, err := kh.Sign(r)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(tag, sig) == 1, nil
}
