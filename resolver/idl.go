package resolver

import (
	"github.com/pkg/errors"

	"github.com/egaotan/anchor-workspace/idl"
	"github.com/egaotan/anchor-workspace/workspace"
)

func ResolveIdl(state *workspace.State) (*idl.Idl, error) {
	if state.Idl == nil {
		return nil, ErrIdlNotFound
	}
	parsed, err := idl.Parse(*state.Idl)
	if err != nil {
		return nil, errors.Wrap(ErrIdlMalformed, err.Error())
	}
	return parsed, nil
}
