package wallet

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Ed25519Flag is the signature scheme flag Sui prefixes to keys and signatures
const Ed25519Flag byte = 0x00

// transactionIntent is the intent prefix for transaction data (scope, version, app id)
var transactionIntent = []byte{0, 0, 0}

var (
	ErrUnsupportedScheme = errors.New("only ed25519 keys are supported")
	ErrInvalidKey        = errors.New("invalid private key")
)

// Keypair is an ed25519 account key
type Keypair struct {
	private ed25519.PrivateKey
}

// NewKeypairFromSeed builds a keypair from a 32-byte ed25519 seed
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, fmt.Errorf("%w: seed must be %d bytes, got %d", ErrInvalidKey, ed25519.SeedSize, len(seed))
	}
	return &Keypair{private: ed25519.NewKeyFromSeed(seed)}, nil
}

// ParsePrivateKey accepts a base64 keystore entry (flag || seed), a bare
// base64 seed, or a 0x-prefixed hex seed
func ParsePrivateKey(encoded string) (*Keypair, error) {
	encoded = strings.TrimSpace(encoded)

	switch {
	case encoded == "":
		return nil, ErrInvalidKey
	case strings.HasPrefix(encoded, "suiprivkey"):
		return nil, fmt.Errorf("%w: bech32 keys are not supported, export the key as base64", ErrInvalidKey)
	case strings.HasPrefix(encoded, "0x"):
		seed, err := hex.DecodeString(encoded[2:])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}
		return NewKeypairFromSeed(seed)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	switch len(raw) {
	case ed25519.SeedSize:
		return NewKeypairFromSeed(raw)
	case ed25519.SeedSize + 1:
		if raw[0] != Ed25519Flag {
			return nil, fmt.Errorf("%w: scheme flag 0x%02x", ErrUnsupportedScheme, raw[0])
		}
		return NewKeypairFromSeed(raw[1:])
	default:
		return nil, fmt.Errorf("%w: unexpected key length %d", ErrInvalidKey, len(raw))
	}
}

func (k *Keypair) PublicKey() ed25519.PublicKey {
	return k.private.Public().(ed25519.PublicKey)
}

// Address derives the Sui address: blake2b-256(flag || public key)
func (k *Keypair) Address() string {
	hash := blake2b.Sum256(append([]byte{Ed25519Flag}, k.PublicKey()...))
	return "0x" + hex.EncodeToString(hash[:])
}

// SignTransaction signs base64 transaction bytes with the transaction intent
// and returns the serialized signature flag || signature || public key in base64
func (k *Keypair) SignTransaction(txBytes string) (string, error) {
	tx, err := base64.StdEncoding.DecodeString(txBytes)
	if err != nil {
		return "", fmt.Errorf("invalid transaction bytes: %w", err)
	}

	digest := blake2b.Sum256(append(append([]byte{}, transactionIntent...), tx...))
	signature := ed25519.Sign(k.private, digest[:])

	serialized := make([]byte, 0, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	serialized = append(serialized, Ed25519Flag)
	serialized = append(serialized, signature...)
	serialized = append(serialized, k.PublicKey()...)

	return base64.StdEncoding.EncodeToString(serialized), nil
}
