package walletstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// FileStore keeps the session record as a JSON file under dir. This is the
// default backend: one file for the record, one marker file for the
// manual-disconnect flag.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) recordPath() string { return filepath.Join(s.dir, RecordKey+".json") }
func (s *FileStore) markerPath() string { return filepath.Join(s.dir, DisconnectedKey) }

func (s *FileStore) Load(ctx context.Context) (Record, error) {
	data, err := os.ReadFile(s.recordPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt record is treated as absent.
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *FileStore) Save(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return os.WriteFile(s.recordPath(), data, 0o600)
}

func (s *FileStore) Delete(ctx context.Context) error {
	if err := os.Remove(s.recordPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *FileStore) SetDisconnected(ctx context.Context, disconnected bool) error {
	if !disconnected {
		if err := os.Remove(s.markerPath()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}
	return os.WriteFile(s.markerPath(), []byte("1"), 0o600)
}

func (s *FileStore) Disconnected(ctx context.Context) (bool, error) {
	_, err := os.Stat(s.markerPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
