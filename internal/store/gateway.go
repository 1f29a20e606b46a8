package store

import (
	"fmt"
	"io/fs"

	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/model"
)

// Gateway loads and saves the snapshot kept under one key of a KV.
type Gateway struct {
	kv  KV
	key string
}

func NewGateway(kv KV, key string) *Gateway {
	return &Gateway{kv: kv, key: key}
}

// Load returns the stored snapshot. It fails with ErrRecordNotFound when
// nothing was saved yet and ErrMalformedSnapshot when the value is unusable.
func (g *Gateway) Load() (model.Snapshot, error) {
	data, err := g.kv.Get(g.key)
	if err != nil {
		return model.Snapshot{}, err
	}
	return DecodeSnapshot(data)
}

func (g *Gateway) Save(snap model.Snapshot) error {
	data, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	return g.kv.Put(g.key, data)
}

func (g *Gateway) Close() error {
	return g.kv.Close()
}

// Open builds the KV for backend at path.
func Open(backend, path string, migrationsFS fs.FS) (KV, error) {
	switch backend {
	case constants.BackendSQLite, "":
		return NewSQLiteKV(path, migrationsFS)
	case constants.BackendFile:
		return NewFileKV(path)
	default:
		return nil, fmt.Errorf("%w '%s' (must be sqlite or file)", ErrUnknownBackend, backend)
	}
}
