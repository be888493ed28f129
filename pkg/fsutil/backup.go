package fsutil

import (
	"context"
	"fmt"
	"os"
)

// DefaultBackupSuffix is appended to a file's path to name its backup.
const DefaultBackupSuffix = ".orig"

// BackupConfig controls backups taken before a file is rewritten.
type BackupConfig struct {
	Enabled bool

	// Suffix names the sidecar file. Empty means DefaultBackupSuffix.
	Suffix string
}

// DefaultBackupConfig returns the defaults: backups off.
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{Suffix: DefaultBackupSuffix}
}

// BackupPath returns where the backup of path is stored.
func (c BackupConfig) BackupPath(path string) string {
	if c.Suffix == "" {
		return path + DefaultBackupSuffix
	}
	return path + c.Suffix
}

// CreateBackup copies path to its backup path. An existing backup is never
// overwritten, so repeated runs keep the first original. It reports whether
// a backup was written.
func CreateBackup(ctx context.Context, path string, cfg BackupConfig) (bool, error) {
	if !cfg.Enabled {
		return false, nil
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("create backup: %w", err)
	}

	backupPath := cfg.BackupPath(path)
	if _, err := os.Stat(backupPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat backup path: %w", err)
	}

	content, snap, err := ReadFile(ctx, path)
	if err != nil {
		return false, fmt.Errorf("read original for backup: %w", err)
	}
	if err := WriteAtomic(ctx, backupPath, content, snap.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
