// Package history persists entered lines in a bbolt database.
package history

import (
	"encoding/binary"
	"time"

	bolt "go.etcd.io/bbolt"
)

const BucketCmd = "cmd"

// Store holds command history.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(BucketCmd))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// AddCmd adds a new command to the history and returns its sequence number.
func (s *Store) AddCmd(cmd string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(BucketCmd))

		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(cmd))
	})
	return int(seq), err
}

// Cmds returns up to limit of the most recent commands, oldest first. A limit
// of zero or less returns everything.
func (s *Store) Cmds(limit int) ([]string, error) {
	var cmds []string
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(BucketCmd)).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(cmds) >= limit {
				break
			}
			cmds = append(cmds, string(v))
		}
		return nil
	})

	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
	return cmds, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
