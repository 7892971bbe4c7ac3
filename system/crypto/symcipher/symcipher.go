// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symcipher 对称加密, 密文格式为 nonce(12字节) || ciphertext || tag(16字节)
package symcipher

import (
	"io"

	"github.com/33cn/rcli/common/crypto"
	"github.com/33cn/rcli/common/log"
	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
)

//const
const (
	// KeySize chacha20-poly1305 key size
	KeySize = chacha20poly1305.KeySize
	// NonceSize nonce prefix size
	NonceSize = chacha20poly1305.NonceSize
	// TagSize authentication tag size
	TagSize = chacha20poly1305.Overhead
	// KeyName symmetric key file name
	KeyName = "chacha20.key"
)

var symlog = log.New("module", "crypto.symcipher")

// GenerateSymKey 生成32字节对称密钥
func GenerateSymKey(opts ...crypto.Option) ([]byte, error) {
	o := crypto.ApplyOptions(opts...)
	return crypto.RandBytes(o.Rand, KeySize)
}

// Encrypt 读取 r 的全部内容并加密, 每次调用使用新的随机 nonce
func Encrypt(r io.Reader, key []byte, opts ...crypto.Option) ([]byte, error) {
	content, err := crypto.ReadContent(r)
	if err != nil {
		return nil, err
	}
	return EncryptSymmetric(key, content, opts...)
}

// EncryptSymmetric 加密 plaintext, 返回 nonce || sealed
func EncryptSymmetric(key, plaintext []byte, opts ...crypto.Option) ([]byte, error) {
	if err := crypto.CheckKeyLen("chacha20poly1305", key, KeySize); err != nil {
		return nil, err
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrapf(crypto.ErrInvalidKeyLength, "chacha20poly1305: %v", err)
	}
	o := crypto.ApplyOptions(opts...)
	nonce, err := crypto.RandBytes(o.Rand, NonceSize)
	if err != nil {
		return nil, err
	}
	envelope := make([]byte, NonceSize, NonceSize+len(plaintext)+TagSize)
	copy(envelope, nonce)
	envelope = aead.Seal(envelope, nonce, plaintext, nil)
	symlog.Debug("EncryptSymmetric", "plainLen", len(plaintext), "envelopeLen", len(envelope))
	return envelope, nil
}

// Decrypt 解密 envelope, 短包、篡改和错误密钥统一返回 ErrDecryptionFailed
func Decrypt(envelope, key []byte) ([]byte, error) {
	return DecryptSymmetric(key, envelope)
}

// DecryptReader 读取 r 的全部内容作为 envelope 解密
func DecryptReader(r io.Reader, key []byte) ([]byte, error) {
	envelope, err := crypto.ReadContent(r)
	if err != nil {
		return nil, err
	}
	return DecryptSymmetric(key, envelope)
}

// DecryptSymmetric 解密
func DecryptSymmetric(key, envelope []byte) ([]byte, error) {
	if err := crypto.CheckKeyLen("chacha20poly1305", key, KeySize); err != nil {
		return nil, err
	}
	if len(envelope) < NonceSize {
		return nil, crypto.ErrDecryptionFailed
	}
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, errors.Wrapf(crypto.ErrInvalidKeyLength, "chacha20poly1305: %v", err)
	}
	plaintext, err := aead.Open(nil, envelope[:NonceSize], envelope[NonceSize:], nil)
	if err != nil {
		return nil, crypto.ErrDecryptionFailed
	}
	return plaintext, nil
}
