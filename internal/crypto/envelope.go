// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"
)

// envelopeEncoding is strict so that flipped padding bits are rejected
// instead of silently decoding to the original bytes.
var envelopeEncoding = base64.StdEncoding.Strict()

// EnvelopeCodec packs a nonce and a ciphertext into the textual envelope
// stored on the server: base64(nonce ‖ ciphertext ‖ tag).
type EnvelopeCodec struct {
	nonceLen int
	tagLen   int
}

// NewEnvelopeCodec returns an [EnvelopeCodec] splitting at params.NonceLen.
func NewEnvelopeCodec(params Params) *EnvelopeCodec {
	return &EnvelopeCodec{nonceLen: params.NonceLen, tagLen: params.TagLen}
}

// Encode concatenates nonce and ciphertext and returns them base64-encoded
// with the standard alphabet.
func (c *EnvelopeCodec) Encode(nonce, ciphertext []byte) string {
	blob := make([]byte, 0, len(nonce)+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, ciphertext...)
	return envelopeEncoding.EncodeToString(blob)
}

// Decode reverses [EnvelopeCodec.Encode]. It fails with
// [ErrMalformedEnvelope] if text is not base64 or decodes to fewer bytes
// than a nonce.
func (c *EnvelopeCodec) Decode(text string) (nonce, ciphertext []byte, err error) {
	blob, err := envelopeEncoding.DecodeString(text)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: not base64", ErrMalformedEnvelope)
	}
	if len(blob) < c.nonceLen {
		return nil, nil, fmt.Errorf("%w: %d bytes is shorter than a nonce", ErrMalformedEnvelope, len(blob))
	}
	return blob[:c.nonceLen], blob[c.nonceLen:], nil
}

// Validate checks that text could be an envelope at all: valid base64 and
// long enough for a nonce and a tag. It needs no key, so the storage server
// uses it to reject garbage early.
func (c *EnvelopeCodec) Validate(text string) error {
	_, ciphertext, err := c.Decode(text)
	if err != nil {
		return err
	}
	if len(ciphertext) < c.tagLen {
		return fmt.Errorf("%w: missing authentication tag", ErrMalformedEnvelope)
	}
	return nil
}
