package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const tempDirName = ".tmp"

// Disk is a Blob that keeps one file per key under a base directory.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

// Load creates a Disk blob using the provided config, or the config found by
// LoadConfig when cfg is nil.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return NewDisk(cfg.BasePath())
}

// NewDisk opens a Disk blob rooted at basePath, creating it if needed.
func NewDisk(basePath string) (*Disk, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	tmp := filepath.Join(basePath, tempDirName)
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure temp dir: %w", err)
	}
	return &Disk{
		d: diskv.New(diskv.Options{
			BasePath: basePath,
			// Writes land in TempDir and are renamed into place, so readers
			// never observe a half-written value.
			TempDir: tmp,
			// The file may change underneath us; never serve a cached copy.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
	}, nil
}

// BasePath returns the directory values are stored in.
func (s *Disk) BasePath() string {
	return s.basePath
}

func (s *Disk) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := checkKey(key); err != nil {
		return nil, false, err
	}
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return val, true, nil
}

func (s *Disk) Set(ctx context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.d.Write(key, value); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (s *Disk) Remove(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// checkKey rejects keys that would escape the base directory or collide with
// the temp directory.
func checkKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "",
		key == tempDirName,
		strings.ContainsAny(key, `/\`),
		key == ".", key == "..":
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
