package app

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"path/filepath"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egaotan/anchor-workspace/config"
	"github.com/egaotan/anchor-workspace/resolver"
	"github.com/egaotan/anchor-workspace/workspace"
)

const counterIdl = `{
  "version": "0.1.0",
  "name": "counter",
  "instructions": [
    {"name": "initialize", "accounts": [], "args": [{"name": "start", "type": "u64"}, {"name": "config", "type": {"option": {"defined": "Config"}}}]},
    {"name": "increment", "accounts": [], "args": []}
  ]
}`

func newAnchor(t *testing.T, state *workspace.State) (*Anchor, *bytes.Buffer) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "workspace.json")
	file := workspace.NewFile(path)
	require.NoError(t, file.Save(ctx, state))

	logger, _ := test.NewNullLogger()
	out := new(bytes.Buffer)
	return NewAnchor(ctx, file, out, logrus.NewEntry(logger)), out
}

func TestRun_Cluster(t *testing.T) {
	a, out := newAnchor(t, &workspace.State{Endpoint: "https://example-rpc", Commitment: "finalized"})
	require.NoError(t, a.Run([]string{"cluster"}))
	assert.Equal(t, "RPC URL: https://example-rpc\nCommitment: finalized\n", out.String())

	a, out = newAnchor(t, &workspace.State{Commitment: "unknown"})
	require.NoError(t, a.Run([]string{"cluster"}))
	assert.Equal(t, "RPC URL: "+workspace.DefaultEndpoint+"\nCommitment: confirmed\n", out.String())
}

func TestRun_Address(t *testing.T) {
	key := ed25519.NewKeyFromSeed(bytes.Repeat([]byte{9}, ed25519.SeedSize))
	a, out := newAnchor(t, &workspace.State{Keypair: workspace.Keypair(key)})
	require.NoError(t, a.Run([]string{"address"}))
	assert.Equal(t, solana.PrivateKey(key).PublicKey().String()+"\n", out.String())

	a, _ = newAnchor(t, &workspace.State{Keypair: workspace.Keypair{1, 2, 3}})
	err := a.Run([]string{"address"})
	assert.True(t, errors.Is(err, resolver.ErrCorruptWallet))
}

func TestRun_Idl(t *testing.T) {
	a, out := newAnchor(t, &workspace.State{Idl: workspace.StringPtr(counterIdl)})
	require.NoError(t, a.Run([]string{"idl"}))
	assert.Equal(t, "counter 0.1.0\n"+
		"  initialize(start: u64, config: Option<Config>)\n"+
		"  increment()\n"+
		"undefined types: Config\n", out.String())

	a, _ = newAnchor(t, &workspace.State{})
	err := a.Run([]string{"idl"})
	assert.True(t, errors.Is(err, resolver.ErrIdlNotFound))
}

func TestRun_ProgramId(t *testing.T) {
	const system = "11111111111111111111111111111111"
	const token = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"

	a, out := newAnchor(t, &workspace.State{ProgramId: workspace.StringPtr(system)})
	require.NoError(t, a.Run([]string{"program-id"}))
	assert.Equal(t, system+"\n", out.String())

	out.Reset()
	require.NoError(t, a.Run([]string{"program-id", token}))
	assert.Equal(t, token+"\n", out.String())

	assert.Error(t, a.Run([]string{"program-id", "0x00"}))

	a, _ = newAnchor(t, &workspace.State{})
	err := a.Run([]string{"program-id"})
	assert.True(t, errors.Is(err, resolver.ErrProgramIdNotFound))
}

func TestRun_Usage(t *testing.T) {
	a, _ := newAnchor(t, &workspace.State{})
	assert.Equal(t, ErrUsage, a.Run(nil))
	assert.Equal(t, ErrUsage, a.Run([]string{"deploy"}))
}

func TestFormatSol(t *testing.T) {
	assert.Equal(t, "0", FormatSol(0))
	assert.Equal(t, "0.000000001", FormatSol(1))
	assert.Equal(t, "1.5", FormatSol(1500000000))
	assert.Equal(t, "18446744073.709551615", FormatSol(^uint64(0)))
}

func TestNewSource(t *testing.T) {
	source, err := NewSource(&config.Config{Source: config.SourceFile, WorkspaceFile: "./ws.json"})
	require.NoError(t, err)
	assert.Equal(t, "./ws.json", source.(*workspace.File).Path())

	_, err = NewSource(&config.Config{Source: "etcd"})
	assert.Error(t, err)
}
