package workspace

import (
	"context"
	"sync"
)

// Memory is a host-owned, mutable workspace. Resolution reads a copy of the
// state, so later mutations never leak into a snapshot already handed out.
type Memory struct {
	stateMu sync.RWMutex
	state   State
}

func NewMemory(initial *State) *Memory {
	m := &Memory{}
	if initial != nil {
		m.state = *initial.Copy()
	}
	return m
}

// State implements Source.State
func (m *Memory) State(_ context.Context) (*State, error) {
	m.stateMu.RLock()
	defer m.stateMu.RUnlock()
	return m.state.Copy(), nil
}

func (m *Memory) SetConnection(endpoint, commitment string) {
	m.stateMu.Lock()
	m.state.Endpoint = endpoint
	m.state.Commitment = commitment
	m.stateMu.Unlock()
}

func (m *Memory) SetKeypair(keypair []byte) {
	m.stateMu.Lock()
	m.state.Keypair = append(Keypair{}, keypair...)
	m.stateMu.Unlock()
}

func (m *Memory) SetIdl(idl string) {
	m.stateMu.Lock()
	m.state.Idl = &idl
	m.stateMu.Unlock()
}

func (m *Memory) ClearIdl() {
	m.stateMu.Lock()
	m.state.Idl = nil
	m.stateMu.Unlock()
}

func (m *Memory) SetProgramId(programId string) {
	m.stateMu.Lock()
	m.state.ProgramId = &programId
	m.stateMu.Unlock()
}

func (m *Memory) ClearProgramId() {
	m.stateMu.Lock()
	m.state.ProgramId = nil
	m.stateMu.Unlock()
}
