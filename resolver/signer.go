package resolver

import (
	"bytes"
	"crypto/ed25519"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/egaotan/anchor-workspace/workspace"
)

// ResolveSigner builds the wallet keypair. The stored bytes must be a 32 byte
// seed followed by the matching 32 byte public key.
func ResolveSigner(state *workspace.State) (solana.PrivateKey, error) {
	raw := state.Keypair
	if len(raw) != ed25519.PrivateKeySize {
		return nil, errors.Wrapf(ErrCorruptWallet, "expected %d bytes, got %d", ed25519.PrivateKeySize, len(raw))
	}
	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], raw[ed25519.SeedSize:]) {
		return nil, errors.Wrap(ErrCorruptWallet, "public key does not match secret key")
	}
	return solana.PrivateKey(derived), nil
}
