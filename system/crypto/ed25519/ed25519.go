// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ed25519 ed25519 文本签名驱动
package ed25519

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"io"

	"filippo.io/edwards25519"
	"github.com/33cn/rcli/common/crypto"
	"github.com/33cn/rcli/common/log"
	"github.com/pkg/errors"
)

//const
const (
	Name = crypto.NameEd25519
	ID   = crypto.TyEd25519

	// PrivKeyName signing key file name
	PrivKeyName = "ed25519.sk"
	// PubKeyName verifying key file name
	PubKeyName = "ed25519.pk"

	PrivKeySize   = ed25519.SeedSize
	PubKeySize    = ed25519.PublicKeySize
	SignatureSize = ed25519.SignatureSize
)

var elog = log.New("module", "crypto.ed25519")

func init() {
	crypto.Register(ID, Name, &Driver{})
}

//Driver 驱动
type Driver struct{}

//NewSigner 32字节私钥(seed)转为签名者
func (d Driver) NewSigner(key []byte) (crypto.Signer, error) {
	priv, err := PrivKeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	return priv, nil
}

//NewVerifier 32字节公钥转为验签者
func (d Driver) NewVerifier(key []byte) (crypto.Verifier, error) {
	pub, err := PubKeyFromBytes(key)
	if err != nil {
		return nil, err
	}
	return pub, nil
}

//GenKey 生成私钥和对应的公钥
func (d Driver) GenKey(rand io.Reader) (*crypto.KeySet, error) {
	seed, err := crypto.RandBytes(rand, PrivKeySize)
	if err != nil {
		return nil, err
	}
	priv, err := PrivKeyFromBytes(seed)
	if err != nil {
		return nil, err
	}
	keys := crypto.NewKeySet()
	if err := keys.Add(PrivKeyName, priv.Bytes()); err != nil {
		return nil, err
	}
	if err := keys.Add(PubKeyName, priv.PubKey().Bytes()); err != nil {
		return nil, err
	}
	elog.Debug("GenKey", "pub", priv.PubKey().KeyString())
	return keys, nil
}

//PrivKeyFromBytes 字节转为私钥
func PrivKeyFromBytes(b []byte) (*PrivKeyEd25519, error) {
	if err := crypto.CheckKeyLen(Name+" signing", b, PrivKeySize); err != nil {
		return nil, err
	}
	return &PrivKeyEd25519{key: ed25519.NewKeyFromSeed(b)}, nil
}

//PubKeyFromBytes 字节转为公钥, 拒绝非规范编码和小阶点
func PubKeyFromBytes(b []byte) (PubKeyEd25519, error) {
	var pub PubKeyEd25519
	if err := crypto.CheckKeyLen(Name+" verifying", b, PubKeySize); err != nil {
		return pub, err
	}
	if err := checkPoint(b); err != nil {
		return pub, errors.Wrapf(crypto.ErrInvalidPublicKey, "%s verifying key: %v", Name, err)
	}
	copy(pub[:], b)
	return pub, nil
}

//PrivKeyEd25519 PrivKey
type PrivKeyEd25519 struct {
	key ed25519.PrivateKey
}

//Bytes 32字节seed
func (priv *PrivKeyEd25519) Bytes() []byte {
	s := make([]byte, PrivKeySize)
	copy(s, priv.key.Seed())
	return s
}

//Sign 签名, RFC 8032 确定性签名
func (priv *PrivKeyEd25519) Sign(r io.Reader) ([]byte, error) {
	msg, err := crypto.ReadContent(r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(priv.key, msg), nil
}

//PubKey 公钥
func (priv *PrivKeyEd25519) PubKey() PubKeyEd25519 {
	var pub PubKeyEd25519
	copy(pub[:], priv.key.Public().(ed25519.PublicKey))
	return pub
}

//PubKeyEd25519 PubKey
type PubKeyEd25519 [PubKeySize]byte

//Bytes 字节格式
func (pub PubKeyEd25519) Bytes() []byte {
	s := make([]byte, PubKeySize)
	copy(s, pub[:])
	return s
}

//KeyString 公钥字符串格式
func (pub PubKeyEd25519) KeyString() string {
	return fmt.Sprintf("%X", pub[:])
}

//Verify 严格验签: 长度错误返回 ErrMalformedSignature, R 非规范/小阶或 S 非规范直接返回 false
func (pub PubKeyEd25519) Verify(r io.Reader, sig []byte) (bool, error) {
	if len(sig) != SignatureSize {
		return false, errors.Wrapf(crypto.ErrMalformedSignature, "%s signature length %d, want %d", Name, len(sig), SignatureSize)
	}
	msg, err := crypto.ReadContent(r)
	if err != nil {
		return false, err
	}
	if err := checkPoint(sig[:32]); err != nil {
		return false, nil
	}
	if _, err := new(edwards25519.Scalar).SetCanonicalBytes(sig[32:]); err != nil {
		return false, nil
	}
	return ed25519.Verify(pub[:], msg, sig), nil
}

func checkPoint(b []byte) error {
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return err
	}
	if !bytes.Equal(p.Bytes(), b) {
		return errors.New("non-canonical point encoding")
	}
	if new(edwards25519.Point).MultByCofactor(p).Equal(edwards25519.NewIdentityPoint()) == 1 {
		return errors.New("small order point")
	}
	return nil
}
