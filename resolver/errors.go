package resolver

import "github.com/pkg/errors"

var (
	// ErrIdlNotFound indicates the workspace holds no IDL document
	ErrIdlNotFound = errors.New("IDL not found")

	// ErrProgramIdNotFound indicates neither an explicit nor a stored program id is available
	ErrProgramIdNotFound = errors.New("program id doesn't exist")

	// ErrCorruptWallet indicates the stored keypair bytes do not form a valid ed25519 keypair
	ErrCorruptWallet = errors.New("wallet keypair is corrupt")

	// ErrIdlMalformed indicates the stored IDL document could not be parsed
	ErrIdlMalformed = errors.New("IDL is malformed")

	// ErrInvalidAddressFormat indicates the stored program id is not a valid address
	ErrInvalidAddressFormat = errors.New("invalid program id format")
)

// IsNotFound reports whether err is one of the expected, user-facing
// conditions rather than corrupted workspace data.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrIdlNotFound) || errors.Is(err, ErrProgramIdNotFound)
}

// IsCorrupt reports whether err stems from malformed data in the workspace.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrCorruptWallet) ||
		errors.Is(err, ErrIdlMalformed) ||
		errors.Is(err, ErrInvalidAddressFormat)
}
