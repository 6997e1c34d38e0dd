// Package files implements the editor's New, Open and Save actions over an
// afero filesystem.
//
// Files are read and written whole, with no line-ending normalization and
// no backup. A path is bound to the session by Open or by the first
// successful SaveAs; later saves reuse it.
package files

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// FilePerm is used when SaveAs creates a file.
const FilePerm os.FileMode = 0o644

// Stamp identifies the on-disk state last read or written.
type Stamp struct {
	ModTime int64
	Size    int64
}

// Controller holds the bound path.
type Controller struct {
	fs     afero.Fs
	logger *log.Logger

	path  string
	stamp Stamp
}

// NewController returns a controller with no bound path. A nil logger
// discards.
func NewController(fsys afero.Fs, logger *log.Logger) *Controller {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{fs: fsys, logger: logger}
}

// Fs returns the underlying filesystem.
func (c *Controller) Fs() afero.Fs { return c.fs }

// Path returns the bound path, or "".
func (c *Controller) Path() string { return c.path }

// Bound reports whether saves go to a known path.
func (c *Controller) Bound() bool { return c.path != "" }

// Stamp returns the on-disk state recorded by the last Open or Save.
func (c *Controller) Stamp() Stamp { return c.stamp }

// New starts an empty document. The bound path is kept, so the next Save
// overwrites it without prompting. The caller clears the buffer.
func (c *Controller) New() {
	c.logger.Debug("new document", "path", c.path)
}

// Bind associates path with the session without touching the disk. It is
// used for a command-line path that does not exist yet.
func (c *Controller) Bind(path string) {
	c.path = path
	c.stamp = Stamp{}
}

// Open reads path and binds it. An empty path returns ErrCanceled and
// leaves the session unchanged.
func (c *Controller) Open(path string) (string, error) {
	if path == "" {
		return "", ErrCanceled
	}
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", &IOFailure{Op: "open", Path: path, Err: unwrapPathError(err)}
	}
	if !utf8.Valid(data) {
		return "", &DecodeFailure{Path: path, Offset: invalidOffset(data)}
	}

	c.path = path
	c.stamp = c.statStamp(path)
	c.logger.Info("opened", "path", path, "bytes", len(data))
	return string(data), nil
}

// Save writes text to the bound path. It returns ErrNoPath when nothing is
// bound so the caller can prompt once and call SaveAs.
func (c *Controller) Save(text string) error {
	if c.path == "" {
		return ErrNoPath
	}
	return c.write(c.path, text)
}

// SaveAs writes text to path and binds it after the write succeeded. An
// empty path returns ErrCanceled.
func (c *Controller) SaveAs(path, text string) error {
	if path == "" {
		return ErrCanceled
	}
	if err := c.write(path, text); err != nil {
		return err
	}
	c.path = path
	return nil
}

func (c *Controller) write(path, text string) error {
	if err := afero.WriteFile(c.fs, path, []byte(text), FilePerm); err != nil {
		return &IOFailure{Op: "save", Path: path, Err: unwrapPathError(err)}
	}
	c.stamp = c.statStamp(path)
	c.logger.Info("saved", "path", path, "bytes", len(text))
	return nil
}

// Changed reports whether the bound file differs from the last state this
// controller read or wrote.
func (c *Controller) Changed() (bool, error) {
	if c.path == "" {
		return false, nil
	}
	info, err := c.fs.Stat(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c.stamp != (Stamp{}), nil
		}
		return false, &IOFailure{Op: "stat", Path: c.path, Err: unwrapPathError(err)}
	}
	return stampOf(info) != c.stamp, nil
}

func (c *Controller) statStamp(path string) Stamp {
	info, err := c.fs.Stat(path)
	if err != nil {
		c.logger.Warn("stat after io", "path", path, "err", err)
		return Stamp{}
	}
	return stampOf(info)
}

func stampOf(info fs.FileInfo) Stamp {
	return Stamp{ModTime: info.ModTime().UnixNano(), Size: info.Size()}
}

// unwrapPathError drops the *fs.PathError layer since IOFailure carries the
// op and path itself.
func unwrapPathError(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}
