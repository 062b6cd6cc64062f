package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Extensions the gate accepts, matched case-insensitively as plain suffixes.
var allowedExtensions = []string{".jpg", ".png"}

var (
	ErrDisallowedExtension = errors.New("file extension not allowed")
	ErrEmptyFile           = errors.New("file is empty")
	ErrBadFilename         = errors.New("filename is empty or unsafe")
	ErrNotFound            = errors.New("file not found")
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

// SanitizeFilename strips any directory components and replaces characters
// outside [A-Za-z0-9._-] with underscores. Returns ErrBadFilename when nothing
// usable remains.
func SanitizeFilename(name string) (string, error) {
	name = filepath.Base(strings.ReplaceAll(name, `\`, `/`))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")
	if name == "" || name == "_" {
		return "", ErrBadFilename
	}
	return name, nil
}

// AllowedExtension reports whether name ends in a whitelisted image extension.
// The check is a suffix match, so multi-dot names like a.b.png pass.
func AllowedExtension(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// DiskStore persists uploads as plain files under a base directory.
// Writes to the same sanitized name are serialized, and an existing name is
// never overwritten: a colliding upload gets a short uuid suffix instead.
type DiskStore struct {
	baseDir string

	mu    sync.Mutex
	names map[string]*sync.Mutex // per-name write locks
}

func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{
		baseDir: baseDir,
		names:   make(map[string]*sync.Mutex),
	}
}

// EnsureDir creates the base directory if it does not exist.
func (s *DiskStore) EnsureDir() error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("create upload dir %q: %w", s.baseDir, err)
	}
	return nil
}

func (s *DiskStore) nameLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.names[name]
	if !ok {
		l = &sync.Mutex{}
		s.names[name] = l
	}
	return l
}

// Save validates the name against the whitelist and writes the content under
// the sanitized name. Returns the name the file was actually stored under,
// which differs from the input when that name was already taken.
func (s *DiskStore) Save(name string, content io.Reader) (string, error) {
	clean, err := SanitizeFilename(name)
	if err != nil {
		return "", err
	}
	if !AllowedExtension(clean) {
		return "", ErrDisallowedExtension
	}

	lock := s.nameLock(clean)
	lock.Lock()
	defer lock.Unlock()

	stored := clean
	if _, err := os.Stat(filepath.Join(s.baseDir, stored)); err == nil {
		stored = versionedName(clean)
	}

	if err := s.writeAtomic(stored, content); err != nil {
		return "", err
	}
	return stored, nil
}

// writeAtomic stages the content in a temp file in the same directory, then
// renames it into place so readers never observe a partial file.
func (s *DiskStore) writeAtomic(name string, content io.Reader) error {
	tmp, err := os.CreateTemp(s.baseDir, ".upload-*")
	if err != nil {
		return fmt.Errorf("stage upload %q: %w", name, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	n, err := io.Copy(tmp, content)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write upload %q: %w", name, err)
	}
	if n == 0 {
		return ErrEmptyFile
	}

	if err := os.Rename(tmpName, filepath.Join(s.baseDir, name)); err != nil {
		return fmt.Errorf("publish upload %q: %w", name, err)
	}
	return nil
}

// versionedName inserts a short uuid fragment before the extension:
// cat.jpg -> cat-1a2b3c4d.jpg.
func versionedName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext)
}

// List walks the base directory and returns the filenames matching the image
// whitelist, recomputed fresh on every call. A missing or unreadable directory
// is an error, not an empty listing.
func (s *DiskStore) List() ([]string, error) {
	if _, err := os.Stat(s.baseDir); err != nil {
		return nil, fmt.Errorf("upload dir unavailable: %w", err)
	}

	var images []string
	err := filepath.WalkDir(s.baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if AllowedExtension(d.Name()) {
			images = append(images, d.Name())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan upload dir: %w", err)
	}
	return images, nil
}

// Path resolves a stored filename to its on-disk path for serving. The name
// is sanitized again so a crafted request cannot escape the base directory.
func (s *DiskStore) Path(name string) (string, error) {
	clean, err := SanitizeFilename(name)
	if err != nil {
		return "", err
	}
	full := filepath.Join(s.baseDir, clean)
	if _, err := os.Stat(full); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat %q: %w", clean, err)
	}
	return full, nil
}
