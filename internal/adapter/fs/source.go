package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSource reads documents from disk. Relative names resolve against Root.
type FileSource struct {
	Root string
}

func NewFileSource(root string) *FileSource {
	return &FileSource{Root: root}
}

// ReadText returns the content of the named file.
func (s *FileSource) ReadText(name string) (string, error) {
	path := s.resolve(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}

// ModTime returns the modification time of the named file in nanoseconds.
func (s *FileSource) ModTime(name string) (int64, error) {
	info, err := os.Stat(s.resolve(name))
	if err != nil {
		return 0, err
	}
	return info.ModTime().UnixNano(), nil
}

// Version reports the modification time, so edited files get a new key.
func (s *FileSource) Version(name string) (int64, error) {
	return s.ModTime(name)
}

func (s *FileSource) resolve(name string) string {
	if filepath.IsAbs(name) || s.Root == "" {
		return name
	}
	return filepath.Join(s.Root, name)
}
