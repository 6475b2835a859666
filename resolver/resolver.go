package resolver

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/egaotan/anchor-workspace/idl"
	"github.com/egaotan/anchor-workspace/workspace"
)

// Resolver resolves client, signer, IDL and program id against a workspace
// source. Each call takes a fresh snapshot; nothing is cached between calls.
type Resolver struct {
	source workspace.Source
	log    *logrus.Entry
}

func NewResolver(source workspace.Source, log *logrus.Entry) *Resolver {
	if log == nil {
		log = logrus.StandardLogger().WithField("type", "resolver")
	}
	return &Resolver{
		source: source,
		log:    log,
	}
}

func (r *Resolver) snapshot(ctx context.Context) (*workspace.State, error) {
	state, err := r.source.State(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read workspace")
	}
	return state.WithDefaults(), nil
}

func (r *Resolver) Client(ctx context.Context) (*Client, error) {
	state, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if !IsKnownCommitment(state.Commitment) {
		r.log.WithField("commitment", state.Commitment).Warn("unknown commitment, using confirmed")
	}
	client := ResolveClient(state)
	r.log.WithFields(logrus.Fields{
		"endpoint":   client.Endpoint(),
		"commitment": client.Commitment(),
	}).Debug("resolved client")
	return client, nil
}

func (r *Resolver) Signer(ctx context.Context) (solana.PrivateKey, error) {
	state, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	signer, err := ResolveSigner(state)
	if err != nil {
		r.log.WithError(err).Warn("failed to resolve signer")
		return nil, err
	}
	r.log.WithField("signer", signer.PublicKey().String()).Debug("resolved signer")
	return signer, nil
}

func (r *Resolver) Idl(ctx context.Context) (*idl.Idl, error) {
	state, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	parsed, err := ResolveIdl(state)
	if err != nil {
		if IsCorrupt(err) {
			r.log.WithError(err).Warn("failed to resolve idl")
		}
		return nil, err
	}
	r.log.WithField("idl", parsed.Name).Debug("resolved idl")
	return parsed, nil
}

func (r *Resolver) ProgramId(ctx context.Context, explicit *solana.PublicKey) (solana.PublicKey, error) {
	if explicit != nil {
		return *explicit, nil
	}
	state, err := r.snapshot(ctx)
	if err != nil {
		return solana.PublicKey{}, err
	}
	programId, err := ResolveProgramId(state, nil)
	if err != nil {
		if IsCorrupt(err) {
			r.log.WithError(err).Warn("failed to resolve program id")
		}
		return solana.PublicKey{}, err
	}
	r.log.WithField("program_id", programId.String()).Debug("resolved program id")
	return programId, nil
}
