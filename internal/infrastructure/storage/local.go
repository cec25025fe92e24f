package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taxdocs-api/config"
)

const (
	uniquePrefixLen = 8
	maxNameAttempts = 5

	dirPerm = 0o755
)

// LocalStore keeps every user's files under root/{userID}/ and rejects any
// path that would resolve outside of it. The root is immutable after New.
type LocalStore struct {
	logger *zap.Logger
	root   string
}

func New(logger *zap.Logger, cfg config.Storage) (*LocalStore, error) {
	if cfg.Root == "" {
		return nil, errors.New("storage root is not configured")
	}
	if err := os.MkdirAll(cfg.Root, dirPerm); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve storage root: %w", err)
	}
	// keep the canonical form so containment checks compare like with like
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("canonicalize storage root: %w", err)
	}

	probe, err := os.CreateTemp(root, ".probe-*")
	if err != nil {
		return nil, fmt.Errorf("storage root is not writable: %w", err)
	}
	probe.Close()
	if err = os.Remove(probe.Name()); err != nil {
		return nil, fmt.Errorf("storage root cleanup probe: %w", err)
	}

	logger.Info("storage root ready", zap.String("root", root))

	return &LocalStore{
		logger: logger,
		root:   root,
	}, nil
}

// Save streams r into root/{userID}/{unique}_{sanitized original name} and
// returns the relative stored path. The bytes land in a temp file first and
// are renamed into place, so a failed save never leaves a partial file
// visible under its final name.
func (l *LocalStore) Save(ctx context.Context, userID, originalName string, r io.Reader) (string, error) {
	userDir, err := l.userDir(userID)
	if err != nil {
		return "", err
	}
	if err = os.MkdirAll(userDir, dirPerm); err != nil {
		return "", fmt.Errorf("create user dir: %w", err)
	}

	tmp, err := os.CreateTemp(userDir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err = io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("flush file: %w", err)
	}

	name := SanitizeFileName(originalName)
	for attempt := 0; attempt < maxNameAttempts; attempt++ {
		unique := uniquePrefix() + "_" + name
		final := filepath.Join(userDir, unique)

		if _, err = os.Lstat(final); err == nil {
			continue // name already taken, roll again
		} else if !os.IsNotExist(err) {
			os.Remove(tmpName)
			return "", fmt.Errorf("stat %s: %w", unique, err)
		}

		if err = os.Rename(tmpName, final); err != nil {
			os.Remove(tmpName)
			return "", fmt.Errorf("finalize file: %w", err)
		}

		return path.Join(userID, unique), nil
	}

	os.Remove(tmpName)
	return "", errors.New("could not generate a unique file name")
}

// Resolve canonicalizes root/{relPath} and verifies the result still lives
// under root/{userID}. The containment check runs after symlink and ".."
// resolution; a raw string-prefix check is not enough here.
func (l *LocalStore) Resolve(userID, relPath string) (string, error) {
	userDir, err := l.userDir(userID)
	if err != nil {
		return "", err
	}
	if relPath == "" || filepath.IsAbs(relPath) {
		return "", l.violation(userID, relPath)
	}

	abs := filepath.Join(l.root, filepath.FromSlash(relPath))
	canonical, err := canonicalize(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalize %q: %w", relPath, err)
	}

	rel, err := filepath.Rel(userDir, canonical)
	if err != nil || rel == "." || rel == ".." ||
		strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", l.violation(userID, relPath)
	}

	return canonical, nil
}

// Open resolves relPath and returns a stream plus its size, suitable for an
// HTTP response body.
func (l *LocalStore) Open(ctx context.Context, userID, relPath string) (io.ReadCloser, int64, error) {
	abs, err := l.Resolve(userID, relPath)
	if err != nil {
		return nil, 0, err
	}

	f, err := os.Open(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("open %q: %w", relPath, err)
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat %q: %w", relPath, err)
	}
	if fi.IsDir() {
		f.Close()
		return nil, 0, ErrNotFound
	}

	return f, fi.Size(), nil
}

// Delete removes the file behind relPath. A missing file is a no-op: the
// operation is idempotent and the record layer above decides what a missing
// document means. Empties the user dir opportunistically.
func (l *LocalStore) Delete(ctx context.Context, userID, relPath string) error {
	abs, err := l.Resolve(userID, relPath)
	if err != nil {
		return err
	}

	if err = os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %q: %w", relPath, err)
	}

	// prune the user dir if this was the last file; failure is fine,
	// the dir is recreated on the next save
	userDir, _ := l.userDir(userID)
	_ = os.Remove(userDir)

	return nil
}

// Cleanup removes the whole per-user subtree. Used when the account goes away.
func (l *LocalStore) Cleanup(ctx context.Context, userID string) error {
	userDir, err := l.userDir(userID)
	if err != nil {
		return err
	}
	if err = os.RemoveAll(userDir); err != nil {
		return fmt.Errorf("cleanup user storage: %w", err)
	}

	return nil
}

// userDir validates userID as a single untrusted path element and joins it
// under the root. The identifier is an email in practice and is never
// filtered upstream.
func (l *LocalStore) userDir(userID string) (string, error) {
	if userID == "" || userID == "." || userID == ".." ||
		strings.ContainsAny(userID, `/\`) || strings.ContainsRune(userID, 0) {
		return "", l.violation(userID, "")
	}

	return filepath.Join(l.root, userID), nil
}

func (l *LocalStore) violation(userID, relPath string) error {
	l.logger.Warn("storage path violation",
		zap.String("user_id", userID),
		zap.String("path", relPath),
	)

	return ErrPathViolation
}

// canonicalize resolves symlinks on the deepest existing ancestor of p and
// re-joins the missing suffix, so traversal through a symlinked directory is
// caught even when the target itself does not exist yet.
func canonicalize(p string) (string, error) {
	suffix := ""
	for cur := p; ; {
		resolved, err := filepath.EvalSymlinks(cur)
		if err == nil {
			return filepath.Join(resolved, suffix), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", err
		}
		suffix = filepath.Join(filepath.Base(cur), suffix)
		cur = parent
	}
}

func uniquePrefix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:uniquePrefixLen]
}
