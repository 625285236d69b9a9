// Package cryptox implements the reversible password protection used by the
// account store: per-user symmetric keys and a deterministic, authenticated
// cipher whose key and ciphertext are both plain text.
package cryptox

import (
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/tasklists/internal/common"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

// nonceLabel separates the nonce derivation from any other use of the key.
var nonceLabel = []byte("tasklists/nonce/v1")

// encoding is used for both keys and ciphertexts so they can be written
// between double quotes without escaping.
var encoding = base64.URLEncoding

// Key is a base64url-encoded 32-byte secretbox key.
type Key []byte

// GenerateKey returns a fresh random key. Keys from separate calls are
// independent.
func GenerateKey() (Key, error) {
	raw := common.GenerateRandByteArray(keySize)
	defer common.WipeByteArray(raw)

	key := make([]byte, encoding.EncodedLen(keySize))
	encoding.Encode(key, raw)
	return key, nil
}

func (k Key) decode() (*[keySize]byte, error) {
	if len(k) == 0 {
		return nil, fmt.Errorf("%w: key is not set", common.ErrCrypto)
	}

	raw, err := encoding.DecodeString(string(k))
	if err != nil {
		return nil, fmt.Errorf("%w: malformed key: %v", common.ErrCrypto, err)
	}
	defer common.WipeByteArray(raw)
	if len(raw) != keySize {
		return nil, fmt.Errorf("%w: invalid key length %d", common.ErrCrypto, len(raw))
	}

	var out [keySize]byte
	copy(out[:], raw)
	return &out, nil
}

// deriveNonce computes a synthetic nonce as a keyed BLAKE2b digest of the
// plaintext, which makes Encrypt deterministic for a given (plaintext, key).
func deriveNonce(key *[keySize]byte, plaintext []byte) (*[nonceSize]byte, error) {
	h, err := blake2b.New(nonceSize, key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCrypto, err)
	}
	h.Write(nonceLabel)
	h.Write(plaintext)

	var nonce [nonceSize]byte
	copy(nonce[:], h.Sum(nil))
	return &nonce, nil
}

// Encrypt seals plaintext under key and returns a base64url token holding
// the nonce followed by the secretbox output.
func Encrypt(plaintext string, key Key) ([]byte, error) {
	k, err := key.decode()
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(k[:])

	msg := []byte(plaintext)
	nonce, err := deriveNonce(k, msg)
	if err != nil {
		return nil, err
	}

	sealed := secretbox.Seal(nonce[:], msg, nonce, k)

	token := make([]byte, encoding.EncodedLen(len(sealed)))
	encoding.Encode(token, sealed)
	return token, nil
}

// Decrypt opens a token produced by Encrypt. It fails with an error wrapping
// common.ErrCrypto when the token is malformed or was sealed under another key.
func Decrypt(ciphertext []byte, key Key) (string, error) {
	k, err := key.decode()
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(k[:])

	if len(ciphertext) == 0 {
		return "", fmt.Errorf("%w: ciphertext is not set", common.ErrCrypto)
	}

	sealed, err := encoding.DecodeString(string(ciphertext))
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext: %v", common.ErrCrypto, err)
	}

	if len(sealed) < nonceSize+secretbox.Overhead {
		return "", fmt.Errorf("%w: ciphertext too short", common.ErrCrypto)
	}

	var nonce [nonceSize]byte
	copy(nonce[:], sealed[:nonceSize])

	plaintext, ok := secretbox.Open(nil, sealed[nonceSize:], &nonce, k)
	if !ok {
		return "", fmt.Errorf("%w: authentication failed", common.ErrCrypto)
	}

	return string(plaintext), nil
}
