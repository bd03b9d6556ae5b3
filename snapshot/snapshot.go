// Package snapshot implements a portable dump format for the store: a
// JSON document carrying the contacts in iteration order, guarded by a
// blake2b-256 digest of the payload.
package snapshot

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	json "github.com/json-iterator/go"
	"golang.org/x/crypto/blake2b"

	"github.com/phonebook-dev/phonebook"
	"github.com/phonebook-dev/phonebook/config"
)

// ErrDigestMismatch is returned by Load when the payload doesn't match
// the digest it was dumped with.
var ErrDigestMismatch = errors.New("snapshot payload doesn't match its digest")

type entry struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type document struct {
	Digest   string  `json:"digest"`
	Contacts []entry `json:"contacts"`
}

// Dump writes the store's contacts to w, bucket by bucket, most recent
// first within a bucket. The store itself is left untouched.
func Dump(w io.Writer, s *phonebook.Store) error {
	doc := document{
		Contacts: make([]entry, 0, s.Len()),
	}

	for _, contact := range s.Pairs() {
		doc.Contacts = append(doc.Contacts, entry{
			Name:  contact.Name,
			Phone: contact.Phone,
		})
	}

	digest, err := digest(doc.Contacts)
	if err != nil {
		return err
	}

	doc.Digest = digest

	stream := json.ConfigDefault.BorrowStream(w)
	stream.WriteVal(doc)
	err = stream.Flush()
	json.ConfigDefault.ReturnStream(stream)

	return err
}

// Load reads a dumped document back into a fresh store created with the
// given config. Contacts were dumped newest-first, so they are
// re-inserted back-to-front: the rebuilt chains reproduce the dumped
// layout exactly, shadowed duplicates included.
func Load(r io.Reader, cfg *config.Config) (*phonebook.Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc document
	iterator := json.ConfigDefault.BorrowIterator(data)
	iterator.ReadVal(&doc)
	err = iterator.Error
	json.ConfigDefault.ReturnIterator(iterator)
	// io.EOF here means the document ended mid-value, which is just as
	// malformed as a syntax error
	if err != nil {
		return nil, fmt.Errorf("malformed snapshot: %w", err)
	}

	wanted, err := digest(doc.Contacts)
	if err != nil {
		return nil, err
	}

	if doc.Digest != wanted {
		return nil, ErrDigestMismatch
	}

	store, err := phonebook.New(cfg)
	if err != nil {
		return nil, err
	}

	for i := len(doc.Contacts) - 1; i >= 0; i-- {
		store.Insert(doc.Contacts[i].Name, doc.Contacts[i].Phone)
	}

	return store, nil
}

func digest(contacts []entry) (string, error) {
	payload, err := json.ConfigDefault.Marshal(contacts)
	if err != nil {
		return "", err
	}

	sum := blake2b.Sum256(payload)

	return hex.EncodeToString(sum[:]), nil
}
