// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blake3

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/33cn/rcli/common"
	"github.com/33cn/rcli/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedHashVector(t *testing.T) {
	// keyed_hash, input_len 0, from the BLAKE3 reference test vectors
	kh, err := newKeyedHash([]byte("whats the Elvish word for friend"))
	require.Nil(t, err)
	sig, err := kh.Sign(bytes.NewReader(nil))
	require.Nil(t, err)
	assert.Equal(t, "92b2b75604ed3c761f9d6f62392c8a9227ad0ea3f09573e783f1498a4ed60d26", common.Bytes2Hex(sig))
}

func TestSignVerify(t *testing.T) {
	d := &Driver{}
	keys, err := d.GenKey(bytes.NewReader(bytes.Repeat([]byte{0x01}, KeySize)))
	require.Nil(t, err)
	assert.Equal(t, []string{KeyName}, keys.Names())
	key, _ := keys.Get(KeyName)

	signer, err := d.NewSigner(key)
	require.Nil(t, err)
	verifier, err := d.NewVerifier(key)
	require.Nil(t, err)

	sig, err := signer.Sign(strings.NewReader("hello!"))
	require.Nil(t, err)
	assert.Len(t, sig, TagSize)

	ok, err := verifier.Verify(strings.NewReader("hello!"), sig)
	require.Nil(t, err)
	assert.True(t, ok)

	// deterministic
	sig2, err := signer.Sign(strings.NewReader("hello!"))
	require.Nil(t, err)
	assert.Equal(t, sig, sig2)

	ok, err = verifier.Verify(strings.NewReader("hello?"), sig)
	require.Nil(t, err)
	assert.False(t, ok)
}

func TestWrongTagLength(t *testing.T) {
	kh, err := newKeyedHash(make([]byte, KeySize))
	require.Nil(t, err)
	sig, err := kh.Sign(strings.NewReader("msg"))
	require.Nil(t, err)

	for _, tag := range [][]byte{nil, sig[:31], append(append([]byte{}, sig...), 0)} {
		ok, err := kh.Verify(strings.NewReader("msg"), tag)
		assert.Nil(t, err)
		assert.False(t, ok, "tag len %d", len(tag))
	}
}

func TestKeyLength(t *testing.T) {
	d := &Driver{}
	for _, size := range []int{0, 16, 31, 33} {
		_, err := d.NewSigner(make([]byte, size))
		assert.True(t, errors.Is(err, crypto.ErrInvalidKeyLength), "size %d", size)
		_, err = d.NewVerifier(make([]byte, size))
		assert.True(t, errors.Is(err, crypto.ErrInvalidKeyLength), "size %d", size)
	}
}

func TestKeyDiffers(t *testing.T) {
	k1, _ := newKeyedHash(bytes.Repeat([]byte{1}, KeySize))
	k2, _ := newKeyedHash(bytes.Repeat([]byte{2}, KeySize))
	assert.NotEqual(t, k1.Sum([]byte("msg")), k2.Sum([]byte("msg")))
}

func TestRegistered(t *testing.T) {
	d, err := crypto.Load(ID)
	require.Nil(t, err)
	assert.IsType(t, &Driver{}, d)
}
