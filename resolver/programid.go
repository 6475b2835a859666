package resolver

import (
	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"

	"github.com/egaotan/anchor-workspace/workspace"
)

// ResolveProgramId returns explicit when it is set, otherwise the program id
// stored in the workspace.
func ResolveProgramId(state *workspace.State, explicit *solana.PublicKey) (solana.PublicKey, error) {
	if explicit != nil {
		return *explicit, nil
	}
	if state.ProgramId == nil {
		return solana.PublicKey{}, ErrProgramIdNotFound
	}
	programId, err := solana.PublicKeyFromBase58(*state.ProgramId)
	if err != nil {
		return solana.PublicKey{}, errors.Wrapf(ErrInvalidAddressFormat, "%q: %s", *state.ProgramId, err)
	}
	return programId, nil
}
