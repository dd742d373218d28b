package solverstore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Fingerprint returns the database key identifying a deck: the deck
// string passed in, unchanged (the CLI passes a loaded deck's digits,
// or "shuffle:<seed>" for a shuffled deal). Two decks with the same
// string share a Best entry.
func Fingerprint(deckDigits string) []byte {
	return []byte(deckDigits)
}

// Best is the best-known outcome for a single deck fingerprint: the
// foundation count reached (a partial result when below 52), the move
// count of that result, and how long that solve took. A deck that has
// never finished a solve has no Best entry.
type Best struct {
	Moves      int           `json:"moves"`
	Duration   time.Duration `json:"duration"`
	Foundation int           `json:"foundation"`
}

// Store wraps an embedded BadgerDB instance keyed by deck fingerprint.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the run-history database under
// the platform data directory.
func Open() (*Store, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, fmt.Errorf("solverstore: locate database dir: %w", err)
	}
	return OpenAt(dir)
}

// OpenAt opens the database at an explicit directory, primarily for
// tests that want an isolated temp dir.
func OpenAt(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("solverstore: open badger: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record saves candidate as the deck's best result if it improves on
// whatever is already stored (strictly fewer moves on a win, or a
// higher foundation count on a partial result). Returns true if the
// stored entry changed.
func (s *Store) Record(fingerprint []byte, candidate Best) (bool, error) {
	current, found, err := s.Lookup(fingerprint)
	if err != nil {
		return false, err
	}
	if found && !improves(current, candidate) {
		return false, nil
	}

	data, err := json.Marshal(candidate)
	if err != nil {
		return false, fmt.Errorf("solverstore: encode best result: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(fingerprint, data)
	})
	if err != nil {
		slog.Debug("solverstore: record best result", "error", err)
		return false, err
	}
	return true, nil
}

// Lookup returns the stored best result for a deck fingerprint, if any.
func (s *Store) Lookup(fingerprint []byte) (Best, bool, error) {
	var best Best
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(fingerprint)
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &best)
		})
	})
	if err != nil {
		return Best{}, false, fmt.Errorf("solverstore: lookup: %w", err)
	}
	return best, found, nil
}

// improves reports whether candidate is a strict improvement over
// current: a higher foundation count always wins; among two full wins,
// fewer moves wins.
func improves(current, candidate Best) bool {
	if candidate.Foundation != current.Foundation {
		return candidate.Foundation > current.Foundation
	}
	return candidate.Moves < current.Moves
}
