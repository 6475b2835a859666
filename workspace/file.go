package workspace

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// File is a workspace kept as a JSON document on disk. The document is read
// on every State call.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Path() string {
	return f.path
}

// State implements Source.State
func (f *File) State(_ context.Context) (*State, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read workspace %s", f.path)
	}
	state := new(State)
	if err := json.Unmarshal(data, state); err != nil {
		return nil, errors.Wrapf(err, "decode workspace %s", f.path)
	}
	return state, nil
}

func (f *File) Save(_ context.Context, state *State) error {
	data, err := json.MarshalIndent(state, "", "    ")
	if err != nil {
		return errors.Wrap(err, "encode workspace")
	}
	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write workspace %s", f.path)
	}
	return nil
}
