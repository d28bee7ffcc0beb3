package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/campuslabs/campus-events-api/pkg/config"
	appErrors "github.com/campuslabs/campus-events-api/pkg/errors"
)

// CredentialVerifier abstracts how passwords are stored and checked so a
// hashing scheme can replace the legacy comparison without touching the
// lifecycle core.
type CredentialVerifier interface {
	// Hash prepares a password for storage.
	Hash(password string) (string, error)
	// Verify compares a stored credential against a supplied password.
	Verify(stored, supplied string) error
}

// PlaintextVerifier preserves the legacy behaviour: passwords are stored and
// compared as plain text. A known weakness, kept deliberately.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlaintextVerifier) Verify(stored, supplied string) error {
	if stored != supplied {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

// BcryptVerifier is the substitution point for hashed credentials.
type BcryptVerifier struct{}

func (BcryptVerifier) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptVerifier) Verify(stored, supplied string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

// NewCredentialVerifier selects the verifier for the configured scheme,
// defaulting to the legacy plaintext comparison.
func NewCredentialVerifier(scheme string) CredentialVerifier {
	if scheme == config.PasswordSchemeBcrypt {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}
