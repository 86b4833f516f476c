package fileentitlement

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const installationIDFile = "installation_id"

// InstallationID reads the installation ID from the data directory.
// If the file does not exist, it generates a new UUID v7 and persists it.
func (s *Store) InstallationID() (string, error) {
	if err := os.MkdirAll(s.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	idPath := filepath.Join(s.dir, installationIDFile)

	// O_EXCL makes concurrent first runs agree on a single ID.
	f, err := os.OpenFile(idPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm) //nolint:gosec // path is constructed from trusted config dir
	if err != nil {
		if !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("failed to create installation ID file: %w", err)
		}
		data, readErr := os.ReadFile(idPath) //nolint:gosec // path is constructed from trusted config dir
		if readErr != nil {
			return "", fmt.Errorf("failed to read installation ID: %w", readErr)
		}
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, nil
		}
		return regenerateInstallationID(idPath)
	}

	id, err := uuid.NewV7()
	if err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to generate installation ID: %w", err)
	}
	if _, err := f.WriteString(id.String()); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("failed to write installation ID: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close installation ID file: %w", err)
	}

	return id.String(), nil
}

// regenerateInstallationID overwrites an empty ID file with a fresh ID.
func regenerateInstallationID(idPath string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate installation ID: %w", err)
	}
	if err := os.WriteFile(idPath, []byte(id.String()), filePerm); err != nil {
		return "", fmt.Errorf("failed to write installation ID: %w", err)
	}
	return id.String(), nil
}
