package workspace

import (
	"context"
	"encoding/json"

	"github.com/gagliardetto/solana-go"
	"github.com/pkg/errors"
)

const (
	DefaultEndpoint   = "https://api.devnet.solana.com"
	DefaultCommitment = "confirmed"
)

// Source supplies the current workspace state. Implementations must not
// cache: every call reflects whatever the host holds at that moment.
type Source interface {
	State(ctx context.Context) (*State, error)
}

// State is a read-only snapshot of the host workspace.
type State struct {
	Endpoint   string  `json:"endpoint"`
	Commitment string  `json:"commitment"`
	Keypair    Keypair `json:"keypair,omitempty"`
	Idl        *string `json:"idl,omitempty"`
	ProgramId  *string `json:"program_id,omitempty"`
}

func (s *State) WithDefaults() *State {
	c := s.Copy()
	if c.Endpoint == "" {
		c.Endpoint = DefaultEndpoint
	}
	if c.Commitment == "" {
		c.Commitment = DefaultCommitment
	}
	return c
}

func (s *State) Copy() *State {
	c := &State{
		Endpoint:   s.Endpoint,
		Commitment: s.Commitment,
	}
	if s.Keypair != nil {
		c.Keypair = append(Keypair{}, s.Keypair...)
	}
	if s.Idl != nil {
		idl := *s.Idl
		c.Idl = &idl
	}
	if s.ProgramId != nil {
		programId := *s.ProgramId
		c.ProgramId = &programId
	}
	return c
}

// Keypair holds raw wallet secret-key bytes. It encodes as the Solana keygen
// JSON array of numbers and also decodes from a base58 string.
type Keypair []byte

func (k Keypair) MarshalJSON() ([]byte, error) {
	nums := make([]int, len(k))
	for i, b := range k {
		nums[i] = int(b)
	}
	return json.Marshal(nums)
}

func (k *Keypair) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		key, err := solana.PrivateKeyFromBase58(text)
		if err != nil {
			return errors.Wrap(err, "keypair")
		}
		*k = Keypair(key)
		return nil
	}
	var nums []int
	if err := json.Unmarshal(data, &nums); err != nil {
		return errors.Wrap(err, "keypair must be a number array or a base58 string")
	}
	out := make(Keypair, len(nums))
	for i, n := range nums {
		if n < 0 || n > 255 {
			return errors.Errorf("keypair byte %d out of range: %d", i, n)
		}
		out[i] = byte(n)
	}
	*k = out
	return nil
}

// Static is a Source that always returns the same snapshot.
type Static State

func (s *Static) State(_ context.Context) (*State, error) {
	return (*State)(s).Copy(), nil
}

func StringPtr(s string) *string {
	return &s
}
