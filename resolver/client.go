package resolver

import (
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/egaotan/anchor-workspace/workspace"
)

// Client is an RPC client bound to the workspace endpoint and commitment.
// Constructing it performs no network I/O.
type Client struct {
	*rpc.Client
	endpoint   string
	commitment rpc.CommitmentType
}

func (c *Client) Endpoint() string { return c.endpoint }

func (c *Client) Commitment() rpc.CommitmentType { return c.commitment }

func ResolveClient(state *workspace.State) *Client {
	return &Client{
		Client:     rpc.New(state.Endpoint),
		endpoint:   state.Endpoint,
		commitment: ParseCommitment(state.Commitment),
	}
}
