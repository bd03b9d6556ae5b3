package phonebook

import (
	"errors"
	"iter"

	"github.com/phonebook-dev/phonebook/config"
	"github.com/phonebook-dev/phonebook/internal/djb2"
)

var (
	// ErrNoBuckets is returned on an attempt to create a store with a
	// negative bucket count.
	ErrNoBuckets = errors.New("bucket count must be positive")
	// ErrNoLimits is returned when a length limit is negative. Zero
	// limits never reach the store, as config.Fill turns them into
	// defaults.
	ErrNoLimits = errors.New("length limits must be positive")
)

type node struct {
	contact Contact
	next    *node
}

// Store is an associative structure for contacts, keyed by name. It is
// a fixed-size bucket array of singly linked chains: colliding names
// share a bucket, and within a bucket the most recently inserted entry
// always comes first. The store is not safe for concurrent use.
type Store struct {
	buckets []*node
	cfg     *config.Config
	length  int
}

// New returns a store with cfg.Buckets empty buckets. Zero fields of
// the config are filled with defaults; an explicitly negative bucket
// count yields ErrNoBuckets, explicitly negative length limits yield
// ErrNoLimits.
func New(cfg *config.Config) (*Store, error) {
	cfg = config.Fill(cfg)
	if cfg.Buckets <= 0 {
		return nil, ErrNoBuckets
	}

	if cfg.MaxNameLength <= 0 || cfg.MaxPhoneLength <= 0 {
		return nil, ErrNoLimits
	}

	return &Store{
		buckets: make([]*node, cfg.Buckets),
		cfg:     cfg,
	}, nil
}

// Insert prepends a new contact to the bucket its name hashes to. Both
// fields are silently cut to the configured limits first. There is no
// duplicate check: inserting an already presented name shadows the
// older entry during lookups, yet both stay in the chain until deleted
// explicitly. Returns the contact as stored, with both fields already
// cut to the configured limits.
func (s *Store) Insert(name, phone string) Contact {
	name = truncate(name, s.cfg.MaxNameLength)
	index := djb2.Hash(name, len(s.buckets))

	contact := Contact{
		Name:  name,
		Phone: truncate(phone, s.cfg.MaxPhoneLength),
	}

	s.buckets[index] = &node{
		contact: contact,
		next:    s.buckets[index],
	}
	s.length++

	return contact
}

// Find returns the first contact in chain order whose name matches the
// given one byte-exact, and a bool indicating whether there was any.
// For a duplicated name that is always the most recently inserted
// entry. The probe is cut to the name limit the same way Insert cuts
// it, so over-long lookups still reach entries stored truncated.
func (s *Store) Find(name string) (Contact, bool) {
	name = truncate(name, s.cfg.MaxNameLength)

	for n := s.buckets[djb2.Hash(name, len(s.buckets))]; n != nil; n = n.next {
		if n.contact.Name == name {
			return n.contact, true
		}
	}

	return Contact{}, false
}

// Delete unlinks the first contact matching the name and reports
// whether there was one. Absence is a normal negative outcome, not an
// error. Only the nearest entry is removed: if the name was duplicated,
// the next-older entry resurfaces for subsequent calls.
func (s *Store) Delete(name string) bool {
	name = truncate(name, s.cfg.MaxNameLength)
	index := djb2.Hash(name, len(s.buckets))

	var prev *node
	for curr := s.buckets[index]; curr != nil; prev, curr = curr, curr.next {
		if curr.contact.Name != name {
			continue
		}

		if prev == nil {
			s.buckets[index] = curr.next
		} else {
			prev.next = curr.next
		}

		s.length--
		return true
	}

	return false
}

// Pairs returns an iterator over (bucket index, contact) pairs: buckets
// in index order, within a bucket in chain order, most recent first.
// The iterator is finite, restartable and never mutates the store.
func (s *Store) Pairs() iter.Seq2[int, Contact] {
	return func(yield func(int, Contact) bool) {
		for i, head := range s.buckets {
			for n := head; n != nil; n = n.next {
				if !yield(i, n.contact) {
					return
				}
			}
		}
	}
}

// Len returns the number of stored contacts, shadowed duplicates
// included.
func (s *Store) Len() int {
	return s.length
}

func (s *Store) Empty() bool {
	return s.Len() == 0
}

// Clear tears down every chain at once, leaving all buckets empty. The
// store stays usable afterwards.
func (s *Store) Clear() {
	for i := range s.buckets {
		s.buckets[i] = nil
	}

	s.length = 0
}
