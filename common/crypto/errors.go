// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"github.com/pkg/errors"
)

// error kinds, match with errors.Is
var (
	// ErrInvalidKeyLength key bytes do not match the scheme's required size
	ErrInvalidKeyLength = errors.New("ErrInvalidKeyLength")
	// ErrInvalidPublicKey verifying key is not a valid curve point
	ErrInvalidPublicKey = errors.New("ErrInvalidPublicKey")
	// ErrMalformedSignature signature bytes cannot be parsed
	ErrMalformedSignature = errors.New("ErrMalformedSignature")
	// ErrDecryptionFailed covers both tampering and wrong key
	ErrDecryptionFailed = errors.New("ErrDecryptionFailed")
	// ErrRandomSource secure randomness unavailable
	ErrRandomSource = errors.New("ErrRandomSource")
	// ErrIO reading content failed
	ErrIO = errors.New("ErrIO")
	// ErrUnknownFormat no driver for the sign format
	ErrUnknownFormat = errors.New("ErrUnknownFormat")
	// ErrDuplicateKeyName key set already holds the name
	ErrDuplicateKeyName = errors.New("ErrDuplicateKeyName")
	// ErrSign signature verification failed
	ErrSign = errors.New("ErrSign")
)

// wrapf keeps the sentinel reachable through errors.Is
func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
