package generator

import (
	"os"
	"path"

	"github.com/go-git/go-billy/v5"

	"github.com/tacogips/crogen/internal/debug"
)

// Writer writes generated files.
type Writer interface {
	// WriteFile writes content to a file with the specified permissions.
	WriteFile(path string, content []byte, mode os.FileMode) error

	// CreateDir creates a directory and any necessary parent directories.
	CreateDir(path string) error

	// Exists checks if a file or directory exists at the given path.
	Exists(path string) bool
}

// FSWriter implements Writer on a billy filesystem, usually osfs rooted at
// the project directory or memfs in tests.
type FSWriter struct {
	fs billy.Filesystem
}

// NewFSWriter creates a Writer over fs.
func NewFSWriter(fs billy.Filesystem) Writer {
	return &FSWriter{fs: fs}
}

// WriteFile writes content atomically using a temporary file and rename.
// Parent directories are created as needed.
func (w *FSWriter) WriteFile(name string, content []byte, mode os.FileMode) error {
	debug.Debug("[generator] Writing file: %s (size: %d bytes, mode: %o)", name, len(content), mode)

	if dir := path.Dir(name); dir != "" && dir != "." {
		if err := w.CreateDir(dir); err != nil {
			return newGeneratorError(GeneratorWriteFailed, "failed to create parent directory", name, err)
		}
	}
	if mode == 0 {
		mode = 0644
	}

	tempFile := name + ".tmp"
	f, err := w.fs.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create temporary file", name, err)
	}

	_, err = f.Write(content)
	closeErr := f.Close()
	if err != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to write file content", name, err)
	}
	if closeErr != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to close file", name, closeErr)
	}

	if w.Exists(name) {
		// Rename does not replace existing files on every filesystem.
		if err := w.fs.Remove(name); err != nil {
			_ = w.fs.Remove(tempFile)
			return newGeneratorError(GeneratorWriteFailed, "failed to replace existing file", name, err)
		}
	}
	if err := w.fs.Rename(tempFile, name); err != nil {
		_ = w.fs.Remove(tempFile)
		return newGeneratorError(GeneratorWriteFailed, "failed to rename temporary file", name, err)
	}
	return nil
}

// CreateDir creates a directory and any necessary parent directories.
func (w *FSWriter) CreateDir(name string) error {
	if err := w.fs.MkdirAll(name, 0755); err != nil {
		return newGeneratorError(GeneratorWriteFailed, "failed to create directory", name, err)
	}
	return nil
}

// Exists checks if a file or directory exists at the given path.
func (w *FSWriter) Exists(name string) bool {
	_, err := w.fs.Stat(name)
	return err == nil
}
