// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	for name, want := range map[string]Encoding{
		"base64url": EncodingBase64URL,
		"BASE64":    EncodingBase64,
		" hex ":     EncodingHex,
		"base58":    EncodingBase58,
		"":          EncodingBase64URL,
	} {
		e, err := ParseEncoding(name)
		require.Nil(t, err, name)
		assert.Equal(t, want, e, name)
	}

	_, err := ParseEncoding("base32")
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestEncodingRoundTrip(t *testing.T) {
	data := []byte{0x00, 0xff, 0xfb, 0x7f, 0x80, 'h', 'i'}
	for _, e := range []Encoding{EncodingBase64URL, EncodingBase64, EncodingHex, EncodingBase58} {
		s := e.Encode(data)
		b, err := e.Decode(s + "\n")
		require.Nil(t, err, string(e))
		assert.Equal(t, data, b, string(e))
	}
}

func TestEncodingFormat(t *testing.T) {
	data := []byte{0xfb, 0xff}
	assert.Equal(t, "-_8", EncodingBase64URL.Encode(data))
	assert.Equal(t, "+/8=", EncodingBase64.Encode(data))
	assert.Equal(t, "0xfbff", EncodingHex.Encode(data))

	// padded input is accepted for base64url
	b, err := EncodingBase64URL.Decode("-_8=")
	require.Nil(t, err)
	assert.Equal(t, data, b)

	_, err = EncodingBase64URL.Decode("+/8")
	assert.NotNil(t, err)
	_, err = EncodingBase58.Decode("0OIl")
	assert.NotNil(t, err)
}

func TestFromHex(t *testing.T) {
	b, err := FromHex("0x0102")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = FromHex("102")
	require.Nil(t, err)
	assert.Equal(t, []byte{1, 2}, b)

	b, err = FromHex("")
	require.Nil(t, err)
	assert.Equal(t, []byte{}, b)

	_, err = FromHex("0xzz")
	assert.NotNil(t, err)

	assert.Equal(t, "", ToHex(nil))
	assert.True(t, HasHexPrefix("0Xab"))
	assert.False(t, HasHexPrefix("ab"))

	// upper case prefix is stripped the same way
	b, err = FromHex("0XAB")
	require.Nil(t, err)
	assert.Equal(t, []byte{0xab}, b)
}
