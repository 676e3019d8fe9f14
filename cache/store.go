// Package cache implements thread-safe stores for tables of powers of a
// root of unity. A table for the triple (N, n, w) holds w^0, w^1, ..., w^{n-1}
// modulo N.
//
// Stores are a performance convenience only: a miss is always recomputed
// by the caller, and removing a store never changes any result.
package cache

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Store is a keyed store of root-of-unity power tables.
// Tables are keyed by the cardinality of their ring and by their root,
// so that a single store can be shared by rings of different cardinalities.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load returns the table of n powers of w modulo card.
	// The boolean is false if the store holds no such table.
	Load(card uint64, n int, w uint64) (values []uint64, ok bool, err error)
	// Save records the table of len(values) powers of w modulo card.
	// A table shorter than the one already held is ignored.
	Save(card, w uint64, values []uint64) (err error)
}

// Option configures a [Store].
type Option func(*options)

type options struct {
	logger logrus.FieldLogger
}

func newOptions(opts []Option) (o options) {
	o.logger = logrus.StandardLogger()
	for _, opt := range opts {
		opt(&o)
	}
	return
}

// WithLogger sets the logger of the store.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// EncodeText writes values on w, one decimal integer per line.
func EncodeText(w io.Writer, values []uint64) (err error) {
	bw := bufio.NewWriter(w)
	var buf []byte
	for _, v := range values {
		buf = strconv.AppendUint(buf[:0], v, 10)
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return errors.Wrap(err, "write")
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}

// DecodeText reads at most n decimal integers from r, one per line.
// It returns fewer than n values if r holds fewer than n lines.
func DecodeText(r io.Reader, n int) (values []uint64, err error) {
	values = make([]uint64, 0, n)
	scanner := bufio.NewScanner(r)
	for len(values) < n && scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var v uint64
		if v, err = strconv.ParseUint(string(line), 10, 64); err != nil {
			return nil, errors.Wrapf(err, "line %d", len(values))
		}
		values = append(values, v)
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "scan")
	}
	return
}

func encode(values []uint64) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeText(&buf, values); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
