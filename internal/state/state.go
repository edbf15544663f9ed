// Package state persists split ratios between sessions.
package state

import (
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"mtoohey.com/dock/internal/dock"

	"github.com/adrg/xdg"
)

// Path returns the file the ratios of the named preset are stored in,
// creating its parent directories if necessary.
func Path(preset string) (string, error) {
	path, err := xdg.StateFile(filepath.Join("dock", preset+".layout"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve layout state path: %w", err)
	}

	return path, nil
}

// Load reads a snapshot written by Save. A missing file yields a nil snapshot
// and no error.
func Load(path string) (dock.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to open layout state: %w", err)
	}
	defer f.Close()

	var s dock.Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode layout state: %w", err)
	}

	return s, nil
}

// Save writes s to path, replacing any previous contents.
func Save(path string, s dock.Snapshot) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create layout state: %w", err)
	}
	defer func() {
		closeErr := f.Close()

		if err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close layout state: %w", closeErr)
		}
	}()

	if err := gob.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("failed to encode layout state: %w", err)
	}

	return nil
}
