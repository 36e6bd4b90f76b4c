package image

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/muhammadheryan/classifieds/constant"
	"github.com/muhammadheryan/classifieds/utils/metrics"
)

var (
	ErrNotFound     = errors.New("image not found")
	ErrInvalidScope = errors.New("invalid image scope")
)

// ImageRepository stores image bytes under opaque, unguessable names.
type ImageRepository interface {
	Save(data []byte, originalFilename string, scope constant.ImageScope) (string, error)
	Read(storedPath string) ([]byte, error)
	DeleteIfPresent(storedPath string) error
}

type FileStore struct {
	dir string
}

// NewFileStore creates dir when absent and fails when it cannot be written to.
func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("image dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image dir %s: %w", dir, err)
	}
	check, err := os.CreateTemp(dir, ".writecheck-*")
	if err != nil {
		return nil, fmt.Errorf("image dir %s is not writable: %w", dir, err)
	}
	check.Close()
	_ = os.Remove(check.Name())

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Save(data []byte, originalFilename string, scope constant.ImageScope) (path string, err error) {
	defer func() { metrics.RecordImageOperation("save", err) }()

	if !validScope(scope) {
		return "", ErrInvalidScope
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate image id: %w", err)
	}
	name := string(scope) + "_" + strings.ReplaceAll(id.String(), "-", "")
	if ext := Extension(originalFilename); ext != "" {
		name += "." + ext
	}

	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := tmp.Write(data)
	if err == nil && n != len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		tmp.Close()
		return "", fmt.Errorf("write image %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close image %s: %w", name, err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("store image %s: %w", name, err)
	}
	committed = true

	return name, nil
}

func (s *FileStore) Read(storedPath string) ([]byte, error) {
	full, ok := s.resolve(storedPath)
	if !ok {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read image %s: %w", storedPath, err)
	}
	return data, nil
}

// DeleteIfPresent treats a missing file as already deleted.
func (s *FileStore) DeleteIfPresent(storedPath string) (err error) {
	defer func() { metrics.RecordImageOperation("delete", err) }()

	full, ok := s.resolve(storedPath)
	if !ok {
		return nil
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete image %s: %w", storedPath, err)
	}
	return nil
}

// resolve maps a stored name to a file inside the store directory.
func (s *FileStore) resolve(storedPath string) (string, bool) {
	if storedPath == "" || storedPath == "." || storedPath == ".." {
		return "", false
	}
	if strings.ContainsAny(storedPath, `/\`) || strings.HasPrefix(storedPath, ".") {
		return "", false
	}
	return filepath.Join(s.dir, storedPath), true
}

// Extension returns the letters and digits after the last dot of filename, or "".
func Extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 || i == len(filename)-1 {
		return ""
	}
	ext := filename[i+1:]
	for _, r := range ext {
		if !isAlnum(r) {
			return ""
		}
	}
	return ext
}

// InScope reports whether storedPath was allocated for scope.
func InScope(storedPath string, scope constant.ImageScope) bool {
	return strings.HasPrefix(storedPath, string(scope)+"_")
}

func validScope(scope constant.ImageScope) bool {
	if scope == "" {
		return false
	}
	for _, r := range scope {
		if !isAlnum(r) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
