// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto_test

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/zero-vault/internal/crypto"
	"github.com/MKhiriev/zero-vault/internal/crypto/cryptotest"
)

func newFastEngine(t *testing.T) crypto.Engine {
	t.Helper()
	e, err := crypto.NewEngine(crypto.NewPlatformProvider(), cryptotest.FastParams())
	require.NoError(t, err)
	return e
}

func TestEngine_SealOpenWithProductionParams(t *testing.T) {
	e := crypto.NewDefaultEngine()

	envelope, err := e.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)
	assert.Len(t, raw, 12+len("my-secret-token")+16)

	plaintext, err := e.Open(envelope, testPassword, testSalt)
	require.NoError(t, err)
	assert.Equal(t, "my-secret-token", plaintext)

	plaintext, err = e.Open(envelope, "wrong-password", testSalt)
	require.ErrorIs(t, err, crypto.ErrDecryptionFailed)
	assert.Empty(t, plaintext)
}

// The envelope below is assembled by hand the way the browser client builds
// it: PBKDF2 over the salt's hex characters, a 12-byte IV and WebCrypto's
// ciphertext‖tag layout.
func TestEngine_OpensEnvelopeProducedByWebClient(t *testing.T) {
	key := pbkdf2.Key([]byte(testPassword), []byte(testSalt), 100_000, 32, sha256.New)
	block, err := aes.NewCipher(key)
	require.NoError(t, err)
	gcm, err := cipher.NewGCM(block)
	require.NoError(t, err)

	iv := bytes.Repeat([]byte{0x42}, 12)
	blob := append(bytes.Clone(iv), gcm.Seal(nil, iv, []byte("my-secret-token"), nil)...)
	envelope := base64.StdEncoding.EncodeToString(blob)

	plaintext, err := crypto.NewDefaultEngine().Open(envelope, testPassword, testSalt)
	require.NoError(t, err)
	assert.Equal(t, "my-secret-token", plaintext)
}

func TestEngine_SealIsNonDeterministic(t *testing.T) {
	e := newFastEngine(t)

	a, err := e.Seal("same secret", testPassword, testSalt)
	require.NoError(t, err)
	b, err := e.Seal("same secret", testPassword, testSalt)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEngine_RoundTripVariousPlaintexts(t *testing.T) {
	e := newFastEngine(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "empty", plaintext: ""},
		{name: "ascii", plaintext: "hunter2"},
		{name: "unicode", plaintext: "пароль 🔑 密码"},
		{name: "large", plaintext: string(bytes.Repeat([]byte("x"), 64*1024))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salt, err := e.NewSalt()
			require.NoError(t, err)

			envelope, err := e.Seal(tt.plaintext, testPassword, salt)
			require.NoError(t, err)

			got, err := e.Open(envelope, testPassword, salt)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, got)
		})
	}
}

func TestEngine_WrongSaltFails(t *testing.T) {
	e := newFastEngine(t)

	envelope, err := e.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)

	_, err = e.Open(envelope, testPassword, "00000000000000000000000000000000")
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestEngine_EveryBitFlipIsDetected(t *testing.T) {
	e := newFastEngine(t)

	envelope, err := e.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)

	for i := range raw {
		for bit := range 8 {
			tampered := bytes.Clone(raw)
			tampered[i] ^= 1 << bit

			got, err := e.Open(base64.StdEncoding.EncodeToString(tampered), testPassword, testSalt)
			require.ErrorIs(t, err, crypto.ErrDecryptionFailed, "byte %d bit %d", i, bit)
			require.Empty(t, got)
		}
	}
}

func TestEngine_TextTamperingIsDetected(t *testing.T) {
	e := newFastEngine(t)

	envelope, err := e.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)

	for i := range len(envelope) {
		if envelope[i] == '=' {
			continue
		}
		tampered := []byte(envelope)
		if tampered[i] == 'A' {
			tampered[i] = 'B'
		} else {
			tampered[i] = 'A'
		}

		got, err := e.Open(string(tampered), testPassword, testSalt)
		require.Error(t, err, "position %d", i)
		require.True(t,
			errors.Is(err, crypto.ErrDecryptionFailed) || errors.Is(err, crypto.ErrMalformedEnvelope),
			"position %d: unexpected error %v", i, err)
		require.Empty(t, got)
	}
}

func TestEngine_MalformedEnvelope(t *testing.T) {
	e := newFastEngine(t)

	for _, envelope := range []string{"", "%%%", base64.StdEncoding.EncodeToString([]byte("short"))} {
		_, err := e.Open(envelope, testPassword, testSalt)
		assert.ErrorIs(t, err, crypto.ErrMalformedEnvelope, "envelope %q", envelope)
	}
}

func TestEngine_EmptyPassword(t *testing.T) {
	e := newFastEngine(t)

	_, err := e.Seal("my-secret-token", "", testSalt)
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)

	envelope, err := e.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)
	_, err = e.Open(envelope, "", testSalt)
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)
}

func TestEngine_SaltEncodingsAreNotInterchangeable(t *testing.T) {
	binary := cryptotest.FastParams()
	binary.SaltEncoding = crypto.SaltAsBinary

	textEngine := newFastEngine(t)
	binaryEngine, err := crypto.NewEngine(crypto.NewPlatformProvider(), binary)
	require.NoError(t, err)

	envelope, err := textEngine.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)

	_, err = binaryEngine.Open(envelope, testPassword, testSalt)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)

	envelope, err = binaryEngine.Seal("my-secret-token", testPassword, testSalt)
	require.NoError(t, err)
	got, err := binaryEngine.Open(envelope, testPassword, testSalt)
	require.NoError(t, err)
	assert.Equal(t, "my-secret-token", got)
}

func TestEngine_SeededProviderIsReproducible(t *testing.T) {
	seal := func() string {
		e, err := crypto.NewEngine(cryptotest.NewSeededProvider(3), cryptotest.FastParams())
		require.NoError(t, err)
		envelope, err := e.Seal("my-secret-token", testPassword, testSalt)
		require.NoError(t, err)
		return envelope
	}

	assert.Equal(t, seal(), seal())
}

func TestEngine_ConcurrentUse(t *testing.T) {
	e := newFastEngine(t)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := range 16 {
		wg.Go(func() {
			secret := fmt.Sprintf("secret-%d", i)
			envelope, err := e.Seal(secret, testPassword, testSalt)
			if err != nil {
				errs <- err
				return
			}
			got, err := e.Open(envelope, testPassword, testSalt)
			if err != nil {
				errs <- err
				return
			}
			if got != secret {
				errs <- fmt.Errorf("got %q, want %q", got, secret)
			}
		})
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestEngine_RandomFailure(t *testing.T) {
	e, err := crypto.NewEngine(cryptotest.NewFailingRandomProvider(), cryptotest.FastParams())
	require.NoError(t, err)

	_, err = e.NewSalt()
	assert.ErrorIs(t, err, cryptotest.ErrRandomUnavailable)

	_, err = e.Seal("my-secret-token", testPassword, testSalt)
	assert.ErrorIs(t, err, cryptotest.ErrRandomUnavailable)
	assert.Equal(t, crypto.CodeInternal, crypto.Code(err))
}

func TestNewEngine_RejectsBadConfiguration(t *testing.T) {
	_, err := crypto.NewEngine(nil, crypto.DefaultParams())
	assert.ErrorIs(t, err, crypto.ErrInvalidInput)

	tests := []struct {
		name   string
		mutate func(*crypto.Params)
	}{
		{name: "zero iterations", mutate: func(p *crypto.Params) { p.Iterations = 0 }},
		{name: "odd key length", mutate: func(p *crypto.Params) { p.KeyLen = 20 }},
		{name: "zero salt", mutate: func(p *crypto.Params) { p.SaltLen = 0 }},
		{name: "nonce", mutate: func(p *crypto.Params) { p.NonceLen = 16 }},
		{name: "tag", mutate: func(p *crypto.Params) { p.TagLen = 12 }},
		{name: "salt encoding", mutate: func(p *crypto.Params) { p.SaltEncoding = crypto.SaltEncoding(9) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := crypto.DefaultParams()
			tt.mutate(&p)
			_, err := crypto.NewEngine(crypto.NewPlatformProvider(), p)
			assert.ErrorIs(t, err, crypto.ErrInvalidInput)
		})
	}
}

func TestParseSaltEncoding(t *testing.T) {
	for in, want := range map[string]crypto.SaltEncoding{"": crypto.SaltAsText, "text": crypto.SaltAsText, "binary": crypto.SaltAsBinary} {
		got, err := crypto.ParseSaltEncoding(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := crypto.ParseSaltEncoding("base32")
	assert.Error(t, err)
}

func TestCode(t *testing.T) {
	assert.Empty(t, crypto.Code(nil))
	assert.Equal(t, crypto.CodeInvalidInput, crypto.Code(fmt.Errorf("wrap: %w", crypto.ErrInvalidInput)))
	assert.Equal(t, crypto.CodeMalformedEnvelope, crypto.Code(crypto.ErrMalformedEnvelope))
	assert.Equal(t, crypto.CodeDecryptionFailed, crypto.Code(crypto.ErrDecryptionFailed))
	assert.Equal(t, crypto.CodeInternal, crypto.Code(errors.New("other")))
}
