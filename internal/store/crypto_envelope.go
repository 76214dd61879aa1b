package store

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

// sessionFormat is the version written into every sealed session file.
const sessionFormat = 2

// sessionLabel is authenticated with every sealed session so a blob sealed
// for another purpose never opens as a session.
const sessionLabel = "hrtrack/session"

var (
	// ErrWrongPassphrase means the session file is intact but does not open
	// with the given passphrase.
	ErrWrongPassphrase = errors.New("wrong passphrase")
	// ErrCorruptSession means the session file cannot be parsed or carries
	// parameters this client refuses to use.
	ErrCorruptSession = errors.New("corrupt session file")
)

// kdf holds scrypt cost parameters.
type kdf struct {
	N int `json:"n"`
	R int `json:"r"`
	P int `json:"p"`
}

// defaultKDF is tuned for an interactive CLI unlock.
var defaultKDF = kdf{N: 1 << 15, R: 8, P: 1}

// check rejects costs that are not valid scrypt input or would let a
// tampered file stall the CLI.
func (k kdf) check() error {
	switch {
	case k.N < 2 || k.N&(k.N-1) != 0 || k.N > 1<<20:
		return fmt.Errorf("%w: scrypt N=%d", ErrCorruptSession, k.N)
	case k.R < 1 || k.P < 1 || k.R*k.P >= 1<<10:
		return fmt.Errorf("%w: scrypt r=%d p=%d", ErrCorruptSession, k.R, k.P)
	}
	return nil
}

// sealedSession is the on-disk form of a session.
type sealedSession struct {
	Format int    `json:"format"`
	KDF    kdf    `json:"kdf"`
	Salt   []byte `json:"salt"`
	Nonce  []byte `json:"nonce"`
	Box    []byte `json:"box"`
}

func (b sealedSession) aad() []byte {
	return fmt.Appendf(nil, "%s/v%d", sessionLabel, b.Format)
}

// sealSession encrypts raw with a key derived from passphrase.
func sealSession(passphrase string, raw []byte, params kdf) ([]byte, error) {
	box := sealedSession{
		Format: sessionFormat,
		KDF:    params,
		Salt:   make([]byte, 16),
		Nonce:  make([]byte, chacha20poly1305.NonceSizeX),
	}
	if _, err := rand.Read(box.Salt); err != nil {
		return nil, fmt.Errorf("salt: %w", err)
	}
	if _, err := rand.Read(box.Nonce); err != nil {
		return nil, fmt.Errorf("nonce: %w", err)
	}

	key, err := deriveKey(passphrase, box.Salt, params)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	box.Box = aead.Seal(nil, box.Nonce, raw, box.aad())
	return json.Marshal(box)
}

// openSession reverses sealSession.
func openSession(passphrase string, b []byte) ([]byte, error) {
	var box sealedSession
	if err := json.Unmarshal(b, &box); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptSession, err)
	}
	if box.Format != sessionFormat {
		return nil, fmt.Errorf("%w: format %d", ErrCorruptSession, box.Format)
	}
	if len(box.Salt) == 0 || len(box.Nonce) != chacha20poly1305.NonceSizeX {
		return nil, fmt.Errorf("%w: bad salt or nonce", ErrCorruptSession)
	}
	if err := box.KDF.check(); err != nil {
		return nil, err
	}

	key, err := deriveKey(passphrase, box.Salt, box.KDF)
	if err != nil {
		return nil, err
	}
	defer wipe(key)
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, err
	}
	raw, err := aead.Open(nil, box.Nonce, box.Box, box.aad())
	if err != nil {
		return nil, ErrWrongPassphrase
	}
	return raw, nil
}

func deriveKey(passphrase string, salt []byte, params kdf) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), salt, params.N, params.R, params.P, chacha20poly1305.KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// wipe zeroes a derived key once it is no longer needed.
func wipe(b []byte) {
	subtle.ConstantTimeCopy(1, b, make([]byte, len(b)))
}
