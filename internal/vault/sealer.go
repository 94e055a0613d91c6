package vault

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rohits-web03/passvault/internal/apperr"
	"golang.org/x/crypto/chacha20poly1305"
)

// Protection names how stored secrets are protected.
type Protection string

const (
	ProtectionReversible Protection = "reversible-encoding"
	ProtectionEncrypted  Protection = "encrypted-at-rest"
)

// Notice is the plain-language description shown to users.
func (p Protection) Notice() string {
	switch p {
	case ProtectionEncrypted:
		return "Saved passwords are encrypted at rest with a server-held key. The server can decrypt them."
	default:
		return "Saved passwords are stored with a reversible encoding, not encryption. Anyone with database access can read them."
	}
}

// Sealer transforms secret values on their way into and out of storage.
// The owner id binds a sealed value to the user it belongs to.
type Sealer interface {
	Seal(owner uuid.UUID, value string) (string, error)
	Open(owner uuid.UUID, stored string) (string, error)
	Protection() Protection
}

// NewSealer returns an AEAD sealer for a 32-byte key and Passthrough when
// key is empty.
func NewSealer(key []byte) (Sealer, error) {
	if len(key) == 0 {
		return Passthrough{}, nil
	}
	return NewAEAD(key)
}

// Passthrough stores values exactly as the client encoded them.
type Passthrough struct{}

func (Passthrough) Seal(_ uuid.UUID, value string) (string, error)  { return value, nil }
func (Passthrough) Open(_ uuid.UUID, stored string) (string, error) { return stored, nil }
func (Passthrough) Protection() Protection                          { return ProtectionReversible }

// AEAD seals values with XChaCha20-Poly1305. The stored form is
// base64(nonce || ciphertext).
type AEAD struct {
	aead cipher.AEAD
}

func NewAEAD(key []byte) (*AEAD, error) {
	a, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("create sealer: %w", err)
	}
	return &AEAD{aead: a}, nil
}

func (s *AEAD) Seal(owner uuid.UUID, value string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize(), s.aead.NonceSize()+len(value)+s.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("%w: read nonce: %v", apperr.ErrInternal, err)
	}
	sealed := s.aead.Seal(nonce, nonce, []byte(value), owner[:])
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *AEAD) Open(owner uuid.UUID, stored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return "", fmt.Errorf("%w: decode sealed secret: %v", apperr.ErrInternal, err)
	}
	if len(raw) < s.aead.NonceSize()+s.aead.Overhead() {
		return "", fmt.Errorf("%w: %v", apperr.ErrInternal, errors.New("sealed secret too short"))
	}
	nonce, ct := raw[:s.aead.NonceSize()], raw[s.aead.NonceSize():]
	plain, err := s.aead.Open(nil, nonce, ct, owner[:])
	if err != nil {
		return "", fmt.Errorf("%w: open sealed secret: %v", apperr.ErrInternal, err)
	}
	return string(plain), nil
}

func (s *AEAD) Protection() Protection { return ProtectionEncrypted }

var (
	_ Sealer = Passthrough{}
	_ Sealer = (*AEAD)(nil)
)
