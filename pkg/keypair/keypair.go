// Package keypair loads and uses the operator's ed25519 signing key.
//
// Key pair files use the Solana CLI format: a JSON array of 64 byte values,
// the 32-byte seed followed by the 32-byte public key.
package keypair

import (
	"bytes"
	"crypto/ed25519"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gagliardetto/solana-go"
	"github.com/gaze-network/nft-launchpad/common/errs"
	"github.com/hdevalence/ed25519consensus"
)

const (
	PublicKeySize  = ed25519.PublicKeySize
	PrivateKeySize = ed25519.PrivateKeySize
	SignatureSize  = ed25519.SignatureSize
)

// PublicKey is a 32-byte account address, printed in base58.
type PublicKey = solana.PublicKey

// Signature is a 64-byte transaction signature, printed in base58.
type Signature = solana.Signature

type KeyPair struct {
	privateKey solana.PrivateKey
}

// New creates a key pair from the 64-byte secret (seed || public key).
func New(secret []byte) (*KeyPair, error) {
	if len(secret) != PrivateKeySize {
		return nil, errors.Wrapf(errs.InvalidArgument, "secret key must be %d bytes, got %d", PrivateKeySize, len(secret))
	}
	derived := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
	if !bytes.Equal(secret[ed25519.SeedSize:], derived[ed25519.SeedSize:]) {
		return nil, errors.Wrap(errs.InvalidArgument, "public key part doesn't match the seed")
	}
	return &KeyPair{privateKey: solana.PrivateKey(derived)}, nil
}

// Generate creates a new random key pair.
func Generate() (*KeyPair, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, errors.Wrap(errs.SomethingWentWrong, "random bytes")
	}
	return &KeyPair{privateKey: privateKey}, nil
}

// Load reads a key pair file.
func Load(path string) (*KeyPair, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrapf(errs.NotFound, "key pair file %q", path)
		}
		return nil, errors.Wrapf(err, "stat key pair file %q", path)
	}
	privateKey, err := solana.PrivateKeyFromSolanaKeygenFile(path)
	if err != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(errs.InvalidArgument, "malformed key pair file %q, expected a JSON array of bytes", path), err)
	}
	keyPair, err := New(privateKey)
	if err != nil {
		return nil, errors.Wrapf(err, "key pair file %q", path)
	}
	return keyPair, nil
}

// Encode returns the key pair in the JSON byte array format.
func (k *KeyPair) Encode() []byte {
	// json encodes []byte as base64, the file holds plain numbers.
	values := make([]int, len(k.privateKey))
	for i, b := range k.privateKey {
		values[i] = int(b)
	}
	// a slice of ints can't fail to marshal
	data, _ := json.Marshal(values)
	return data
}

// WriteFile stores the key pair at path, readable by the owner only.
func (k *KeyPair) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create directory")
	}
	if err := os.WriteFile(path, k.Encode(), 0o600); err != nil {
		return errors.Wrap(err, "write key pair file")
	}
	return nil
}

func (k *KeyPair) PublicKey() PublicKey {
	return k.privateKey.PublicKey()
}

func (k *KeyPair) Sign(message []byte) Signature {
	// signing with a well-formed ed25519 key can't fail
	return utils.Must(k.privateKey.Sign(message))
}

// Verify checks an ed25519 signature using the ZIP-215 validation rules.
func Verify(publicKey PublicKey, message []byte, signature Signature) bool {
	return ed25519consensus.Verify(publicKey[:], message, signature[:])
}

func ParsePublicKey(s string) (PublicKey, error) {
	if s == "" {
		return PublicKey{}, errors.Wrap(errs.ArgumentRequired, "empty address")
	}
	publicKey, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return PublicKey{}, errors.WithSecondaryError(errors.Wrapf(errs.InvalidArgument, "invalid address %q", s), err)
	}
	return publicKey, nil
}

func ParseSignature(s string) (Signature, error) {
	signature, err := solana.SignatureFromBase58(s)
	if err != nil {
		return Signature{}, errors.WithSecondaryError(errors.Wrapf(errs.InvalidArgument, "invalid signature %q", s), err)
	}
	return signature, nil
}
