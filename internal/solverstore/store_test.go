package solverstore

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return s
}

func TestLookupMissing(t *testing.T) {
	s := openTestStore(t)
	_, found, err := s.Lookup(Fingerprint("deck-a"))
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if found {
		t.Fatal("expected no entry for an unrecorded deck")
	}
}

func TestRecordAndLookup(t *testing.T) {
	s := openTestStore(t)
	fp := Fingerprint("deck-a")

	changed, err := s.Record(fp, Best{Moves: 120, Duration: 2 * time.Second, Foundation: 52})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !changed {
		t.Fatal("expected first record to change the store")
	}

	got, found, err := s.Lookup(fp)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !found {
		t.Fatal("expected the just-recorded entry to be found")
	}
	if got.Moves != 120 || got.Foundation != 52 {
		t.Fatalf("Lookup returned %+v", got)
	}
}

func TestRecordKeepsBestResult(t *testing.T) {
	s := openTestStore(t)
	fp := Fingerprint("deck-a")

	if _, err := s.Record(fp, Best{Moves: 150, Foundation: 52}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	changed, err := s.Record(fp, Best{Moves: 200, Foundation: 52})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if changed {
		t.Fatal("a worse (longer) solution must not overwrite the best one")
	}

	changed, err = s.Record(fp, Best{Moves: 90, Foundation: 52})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !changed {
		t.Fatal("a strictly shorter solution must overwrite the stored best")
	}

	got, found, err := s.Lookup(fp)
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !found || got.Moves != 90 {
		t.Fatalf("Lookup returned %+v, found=%v", got, found)
	}
}

func TestRecordPartialBeforeWin(t *testing.T) {
	s := openTestStore(t)
	fp := Fingerprint("deck-b")

	if _, err := s.Record(fp, Best{Moves: 0, Foundation: 40}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	changed, err := s.Record(fp, Best{Moves: 210, Foundation: 52})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if !changed {
		t.Fatal("a full win must beat a prior partial result regardless of move count")
	}
}

func TestFingerprintIsStable(t *testing.T) {
	a := Fingerprint("092132014012091083")
	b := Fingerprint("092132014012091083")
	if string(a) != string(b) {
		t.Fatal("Fingerprint must be deterministic for identical deck digits")
	}
}
