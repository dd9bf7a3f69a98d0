// Package filestore persists uploaded progress photos on local disk. Object
// names are always server-generated, so the store never sees client paths.
package filestore

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if dir == "" {
		return nil, errors.New("filestore: empty uploads dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("filestore: creating uploads dir error: " + err.Error())
	}
	return &DiskStore{dir: dir}, nil
}

func (s *DiskStore) Save(name string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return errors.New("filestore: creating file error: " + err.Error())
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return errors.New("filestore: writing file error: " + err.Error())
	}
	return nil
}

func (s *DiskStore) Dir() string {
	return s.dir
}
