package cache

import (
	"bytes"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Badger is a [Store] backed by a badger key-value database.
// Each table is stored under the key <N>/W<w>/<n> in the text encoding
// of [EncodeText]. A table saved with n values also serves any shorter
// request through a prefix scan.
type Badger struct {
	db     *badger.DB
	logger logrus.FieldLogger
}

// OpenBadger opens the badger database described by opt.
func OpenBadger(opt badger.Options, opts ...Option) (*Badger, error) {
	db, err := badger.Open(opt)
	if err != nil {
		return nil, errors.Wrap(err, "badger.Open")
	}
	return NewBadger(db, opts...), nil
}

// NewBadger wraps an already opened database.
func NewBadger(db *badger.DB, opts ...Option) *Badger {
	o := newOptions(opts)
	return &Badger{db: db, logger: o.logger}
}

// Close closes the underlying database.
func (b *Badger) Close() error {
	return errors.Wrap(b.db.Close(), "badger.Close")
}

func badgerKey(card uint64, n int, w uint64) []byte {
	return []byte(fmt.Sprintf("%d/W%d/%d", card, w, n))
}

func badgerPrefix(card, w uint64) []byte {
	return []byte(fmt.Sprintf("%d/W%d/", card, w))
}

// Load implements [Store].
func (b *Badger) Load(card uint64, n int, w uint64) (values []uint64, ok bool, err error) {

	err = b.db.View(func(txn *badger.Txn) error {

		item, err := txn.Get(badgerKey(card, n, w))

		if errors.Is(err, badger.ErrKeyNotFound) {
			// No exact match, any longer table is also valid.
			var key []byte
			if key, err = longestTable(txn, card, w); err != nil || key == nil {
				return err
			}
			if item, err = txn.Get(key); err != nil {
				return errors.Wrap(err, "txn.Get")
			}
		} else if err != nil {
			return errors.Wrap(err, "txn.Get")
		}

		return item.Value(func(val []byte) (err error) {
			values, err = DecodeText(bytes.NewReader(val), n)
			return err
		})
	})

	if err != nil {
		return nil, false, errors.Wrapf(err, "load %s", badgerKey(card, n, w))
	}

	if len(values) < n {
		b.logger.WithFields(logrus.Fields{"card": card, "n": n, "w": w}).Debug("badger cache miss")
		return nil, false, nil
	}

	return values, true, nil
}

// longestTable returns the key of the table holding the most powers of w modulo card, or nil.
func longestTable(txn *badger.Txn, card, w uint64) (best []byte, err error) {

	opt := badger.DefaultIteratorOptions
	opt.PrefetchValues = false
	it := txn.NewIterator(opt)
	defer it.Close()

	prefix := badgerPrefix(card, w)

	var bestN int
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var n int
		if _, err = fmt.Sscanf(string(item.Key()[len(prefix):]), "%d", &n); err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", item.Key())
		}
		if n > bestN {
			best, bestN = item.KeyCopy(nil), n
		}
	}

	return
}

// Save implements [Store].
func (b *Badger) Save(card, w uint64, values []uint64) error {

	val, err := encode(values)
	if err != nil {
		return err
	}

	err = b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(card, len(values), w), val)
	})

	return errors.Wrapf(err, "save %s", badgerKey(card, len(values), w))
}
