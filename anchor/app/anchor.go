package app

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/egaotan/anchor-workspace/config"
	"github.com/egaotan/anchor-workspace/idl"
	"github.com/egaotan/anchor-workspace/resolver"
	"github.com/egaotan/anchor-workspace/store"
	"github.com/egaotan/anchor-workspace/workspace"
)

var ErrUsage = errors.New("usage: anchor <config> cluster|address|balance|idl|program-id [program id]")

const solDecimals = 9

// Anchor runs program interaction commands against a workspace source instead
// of the local keypair, Anchor.toml and target/idl files.
type Anchor struct {
	ctx      context.Context
	log      *logrus.Entry
	out      io.Writer
	resolver *resolver.Resolver
}

func NewAnchor(ctx context.Context, source workspace.Source, out io.Writer, log *logrus.Entry) *Anchor {
	return &Anchor{
		ctx:      ctx,
		log:      log,
		out:      out,
		resolver: resolver.NewResolver(source, log),
	}
}

// NewSource opens the workspace source selected by the config.
func NewSource(cfg *config.Config) (workspace.Source, error) {
	switch cfg.Source {
	case config.SourceMysql:
		return store.NewStore(cfg.WorkspaceId, cfg.DBUrl, cfg.DBScheme, cfg.DBUser, cfg.DBPasswd)
	case config.SourceFile:
		return workspace.NewFile(cfg.WorkspaceFile), nil
	}
	return nil, errors.Errorf("unknown workspace source %q", cfg.Source)
}

func (a *Anchor) Run(args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	switch args[0] {
	case "cluster":
		return a.cluster()
	case "address":
		return a.address()
	case "balance":
		return a.balance()
	case "idl":
		return a.idl()
	case "program-id":
		var explicit *solana.PublicKey
		if len(args) > 1 {
			programId, err := solana.PublicKeyFromBase58(args[1])
			if err != nil {
				return errors.Wrapf(err, "invalid program id %q", args[1])
			}
			explicit = &programId
		}
		return a.programId(explicit)
	}
	return ErrUsage
}

func (a *Anchor) cluster() error {
	client, err := a.resolver.Client(a.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "RPC URL: %s\n", client.Endpoint())
	fmt.Fprintf(a.out, "Commitment: %s\n", client.Commitment())
	return nil
}

func (a *Anchor) address() error {
	signer, err := a.resolver.Signer(a.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, signer.PublicKey().String())
	return nil
}

func (a *Anchor) balance() error {
	signer, err := a.resolver.Signer(a.ctx)
	if err != nil {
		return err
	}
	client, err := a.resolver.Client(a.ctx)
	if err != nil {
		return err
	}
	res, err := client.GetBalance(a.ctx, signer.PublicKey(), client.Commitment())
	if err != nil {
		return errors.Wrap(err, "get balance")
	}
	fmt.Fprintf(a.out, "%s SOL\n", FormatSol(res.Value))
	return nil
}

func (a *Anchor) idl() error {
	parsed, err := a.resolver.Idl(a.ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %s\n", parsed.Name, parsed.Version)
	for _, ix := range parsed.Instructions {
		fmt.Fprintf(a.out, "  %s(%s)\n", ix.Name, formatArgs(ix.Args))
	}
	if missing := parsed.Undefined(); len(missing) > 0 {
		fmt.Fprintf(a.out, "undefined types: %s\n", strings.Join(missing, ", "))
	}
	return nil
}

func (a *Anchor) programId(explicit *solana.PublicKey) error {
	programId, err := a.resolver.ProgramId(a.ctx, explicit)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, programId.String())
	return nil
}

func formatArgs(args []*idl.Field) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
	}
	return strings.Join(parts, ", ")
}

func FormatSol(lamports uint64) string {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -solDecimals).String()
}
