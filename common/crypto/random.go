// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	crand "crypto/rand"
	"io"
)

// Option optional parameters for key and nonce generation
type Option func(*Options)

// Options resolved optional parameters
type Options struct {
	Rand io.Reader
}

// WithRand replaces the secure random source, nil keeps crypto/rand
func WithRand(r io.Reader) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// ApplyOptions resolve options with defaults
func ApplyOptions(opts ...Option) *Options {
	o := &Options{Rand: crand.Reader}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RandBytes reads exactly numBytes from r, a short read is a random source failure
func RandBytes(r io.Reader, numBytes int) ([]byte, error) {
	if r == nil {
		r = crand.Reader
	}
	b := make([]byte, numBytes)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, wrapf(ErrRandomSource, "read %d random bytes: %v", numBytes, err)
	}
	return b, nil
}
