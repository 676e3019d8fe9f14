package cache

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// File is a [Store] persisting each table in the file <N>/W<w>.cache of a
// directory, one decimal integer per line, line i holding w^i mod N.
// A file holding fewer lines than requested is treated as a miss and is
// replaced by the next longer [File.Save].
type File struct {
	mu     sync.Mutex
	fs     afero.Fs
	dir    string
	logger logrus.FieldLogger
}

// NewFile creates a new [File] store rooted at dir on the given filesystem.
// The directory is created if it does not exist.
func NewFile(fs afero.Fs, dir string, opts ...Option) (*File, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "mkdir %s", dir)
	}
	o := newOptions(opts)
	return &File{fs: fs, dir: dir, logger: o.logger}, nil
}

// Path returns the path of the file holding the powers of w modulo card.
func (f *File) Path(card, w uint64) string {
	return filepath.Join(f.dir, strconv.FormatUint(card, 10), fmt.Sprintf("W%d.cache", w))
}

// Load implements [Store].
func (f *File) Load(card uint64, n int, w uint64) (values []uint64, ok bool, err error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(card, w)

	file, err := f.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			f.logger.WithField("path", path).Debug("file cache miss")
			return nil, false, nil
		}
		return nil, false, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	if values, err = DecodeText(file, n); err != nil {
		return nil, false, errors.Wrapf(err, "decode %s", path)
	}

	if len(values) < n {
		f.logger.WithFields(logrus.Fields{"path": path, "lines": len(values), "n": n}).Debug("file cache too short")
		return nil, false, nil
	}

	return values, true, nil
}

// Save implements [Store].
// The table is written to a temporary file which is then renamed.
func (f *File) Save(card, w uint64, values []uint64) (err error) {

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.Path(card, w)

	lines, err := f.lines(path)
	if err != nil {
		return
	}

	if lines >= len(values) {
		return nil
	}

	dir := filepath.Dir(path)

	if err = f.fs.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}

	tmp, err := afero.TempFile(f.fs, dir, filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrapf(err, "create temporary file for %s", path)
	}

	if err = EncodeText(tmp, values); err != nil {
		tmp.Close()
		f.fs.Remove(tmp.Name())
		return errors.Wrapf(err, "encode %s", tmp.Name())
	}

	if err = tmp.Close(); err != nil {
		f.fs.Remove(tmp.Name())
		return errors.Wrapf(err, "close %s", tmp.Name())
	}

	if err = f.fs.Rename(tmp.Name(), path); err != nil {
		f.fs.Remove(tmp.Name())
		return errors.Wrapf(err, "rename %s", tmp.Name())
	}

	f.logger.WithFields(logrus.Fields{"path": path, "lines": len(values)}).Debug("file cache written")

	return nil
}

// lines returns the number of non-empty lines of the file at path,
// or 0 if it does not exist.
func (f *File) lines(path string) (n int, err error) {

	file, err := f.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if len(bytes.TrimSpace(scanner.Bytes())) != 0 {
			n++
		}
	}

	return n, errors.Wrapf(scanner.Err(), "scan %s", path)
}
