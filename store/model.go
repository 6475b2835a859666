package store

import (
	"github.com/egaotan/anchor-workspace/workspace"
)

type Workspace struct {
	Id         uint64  `gorm:"primaryKey;type:bigint(20);not null"`
	Endpoint   string  `gorm:"type:varchar(255);not null"`
	Commitment string  `gorm:"type:varchar(16);not null"`
	Keypair    []byte  `gorm:"type:blob"`
	Idl        *string `gorm:"type:mediumtext"`
	ProgramId  *string `gorm:"type:varchar(48)"`
}

func toState(row *Workspace) *workspace.State {
	state := &workspace.State{
		Endpoint:   row.Endpoint,
		Commitment: row.Commitment,
		Idl:        row.Idl,
		ProgramId:  row.ProgramId,
	}
	if row.Keypair != nil {
		state.Keypair = workspace.Keypair(row.Keypair)
	}
	return state.Copy()
}

func fromState(id uint64, state *workspace.State) *Workspace {
	c := state.Copy()
	return &Workspace{
		Id:         id,
		Endpoint:   c.Endpoint,
		Commitment: c.Commitment,
		Keypair:    []byte(c.Keypair),
		Idl:        c.Idl,
		ProgramId:  c.ProgramId,
	}
}
