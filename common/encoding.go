// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"encoding/base64"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// Encoding 二进制结果的文本编码
type Encoding string

// supported encodings
const (
	// EncodingBase64URL url safe, no padding
	EncodingBase64URL Encoding = "base64url"
	EncodingBase64    Encoding = "base64"
	EncodingHex       Encoding = "hex"
	EncodingBase58    Encoding = "base58"
)

// ErrUnknownEncoding unsupported encoding name
var ErrUnknownEncoding = errors.New("ErrUnknownEncoding")

// ParseEncoding name -> Encoding
func ParseEncoding(name string) (Encoding, error) {
	e := Encoding(strings.ToLower(strings.TrimSpace(name)))
	switch e {
	case EncodingBase64URL, EncodingBase64, EncodingHex, EncodingBase58:
		return e, nil
	case "":
		return EncodingBase64URL, nil
	default:
		return "", errors.Wrapf(ErrUnknownEncoding, "encoding %q", name)
	}
}

// Encode bytes -> text
func (e Encoding) Encode(b []byte) string {
	switch e {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(b)
	case EncodingHex:
		return ToHex(b)
	case EncodingBase58:
		return base58.Encode(b)
	default:
		return base64.RawURLEncoding.EncodeToString(b)
	}
}

// Decode text -> bytes, surrounding whitespace is ignored
func (e Encoding) Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	var (
		b   []byte
		err error
	)
	switch e {
	case EncodingBase64:
		b, err = base64.StdEncoding.DecodeString(s)
	case EncodingHex:
		b, err = FromHex(s)
	case EncodingBase58:
		b, err = base58.Decode(s)
	default:
		b, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", e)
	}
	return b, nil
}
