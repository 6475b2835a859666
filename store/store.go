package store

import (
	"context"

	"github.com/pkg/errors"

	"github.com/egaotan/anchor-workspace/workspace"
)

// Store is a workspace source backed by one MySQL row. Every State call
// queries the row again.
type Store struct {
	id  uint64
	dao *Dao
}

func NewStore(id uint64, url, scheme, user, passwd string) (*Store, error) {
	dao, err := NewDao(url, scheme, user, passwd)
	if err != nil {
		return nil, err
	}
	return &Store{id: id, dao: dao}, nil
}

// State implements workspace.Source.State
func (s *Store) State(ctx context.Context) (*workspace.State, error) {
	row, err := s.dao.SelectWorkspace(ctx, s.id)
	if err != nil {
		return nil, errors.Wrapf(err, "load workspace %d", s.id)
	}
	return toState(row), nil
}

func (s *Store) Save(ctx context.Context, state *workspace.State) error {
	if err := s.dao.SaveWorkspace(ctx, fromState(s.id, state)); err != nil {
		return errors.Wrapf(err, "save workspace %d", s.id)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context) error {
	return s.dao.DeleteWorkspace(ctx, s.id)
}
