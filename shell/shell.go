// Package shell implements the interactive phonebook menu. It is thin
// glue over the store's contract: every command maps onto exactly one
// store or snapshot operation, and all the parsing and formatting lives
// here.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phonebook-dev/phonebook"
	"github.com/phonebook-dev/phonebook/config"
	"github.com/phonebook-dev/phonebook/snapshot"
)

// Shell drives a single interactive session over the given store. It
// reads commands line by line from in and renders everything to out.
type Shell struct {
	store *phonebook.Store
	cfg   *config.Config
	in    *bufio.Scanner
	out   io.Writer
}

func New(store *phonebook.Store, cfg *config.Config, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		store: store,
		cfg:   config.Fill(cfg),
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run loops over the menu until the user exits or the input ends. The
// session itself never fails on a bad command; only a broken reader
// stops it early.
func (s *Shell) Run() error {
	for {
		s.menu()

		choice, ok := s.prompt("Enter your choice: ")
		if !ok {
			return s.in.Err()
		}

		switch choice {
		case "1":
			s.add()
		case "2":
			s.search()
		case "3":
			s.remove()
		case "4":
			s.display()
		case "5":
			s.export()
		case "6":
			s.load()
		case "7":
			fmt.Fprintln(s.out, "Exiting...")
			s.store.Clear()
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
		}
	}
}

func (s *Shell) menu() {
	fmt.Fprint(s.out,
		"\n--- Contact/Phonebook Menu ---\n",
		"1. Add Contact\n",
		"2. Search Contact\n",
		"3. Delete Contact\n",
		"4. Display All Contacts\n",
		"5. Export Snapshot\n",
		"6. Import Snapshot\n",
		"7. Exit\n",
	)
}

func (s *Shell) add() {
	name, ok := s.prompt("Enter Name: ")
	if !ok {
		return
	}

	phone, ok := s.prompt("Enter Phone: ")
	if !ok {
		return
	}

	// over-long input is cut by the store itself, never rejected
	contact := s.store.Insert(name, phone)
	fmt.Fprintf(s.out, "SUCCESS: Added '%s' with phone '%s'.\n", contact.Name, contact.Phone)
}

func (s *Shell) search() {
	name, ok := s.prompt("Enter Name to Search: ")
	if !ok {
		return
	}

	contact, found := s.store.Find(name)
	if !found {
		fmt.Fprintf(s.out, "ERROR: Contact '%s' not found.\n", name)
		return
	}

	fmt.Fprintf(s.out, "FOUND: Name: %s, Phone: %s\n", contact.Name, contact.Phone)
}

func (s *Shell) remove() {
	name, ok := s.prompt("Enter Name to Delete: ")
	if !ok {
		return
	}

	if s.store.Delete(name) {
		fmt.Fprintf(s.out, "SUCCESS: Deleted '%s'.\n", name)
	} else {
		fmt.Fprintf(s.out, "ERROR: Contact '%s' not found.\n", name)
	}
}

func (s *Shell) display() {
	fmt.Fprintln(s.out, "\n--- Phonebook Contacts ---")

	if s.store.Empty() {
		fmt.Fprintln(s.out, "Phonebook is empty.")
	}

	lastBucket := -1
	for bucket, contact := range s.store.Pairs() {
		if bucket != lastBucket {
			fmt.Fprintf(s.out, "Bucket[%d]:\n", bucket)
			lastBucket = bucket
		}

		fmt.Fprintf(s.out, "  -> Name: %-20s | Phone: %s\n", contact.Name, contact.Phone)
	}

	fmt.Fprintln(s.out, "--------------------------")
}

func (s *Shell) export() {
	path, ok := s.prompt("Enter file to export to: ")
	if !ok {
		return
	}

	file, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(s.out, "ERROR: can't export: %s\n", err)
		return
	}

	err = snapshot.Dump(file, s.store)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		fmt.Fprintf(s.out, "ERROR: can't export: %s\n", err)
		return
	}

	fmt.Fprintf(s.out, "SUCCESS: Exported %d contact(s) to '%s'.\n", s.store.Len(), path)
}

func (s *Shell) load() {
	path, ok := s.prompt("Enter file to import from: ")
	if !ok {
		return
	}

	file, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(s.out, "ERROR: can't import: %s\n", err)
		return
	}

	store, err := snapshot.Load(file, s.cfg)
	_ = file.Close()
	if err != nil {
		fmt.Fprintf(s.out, "ERROR: can't import: %s\n", err)
		return
	}

	// the imported snapshot replaces the current phonebook entirely
	s.store = store
	fmt.Fprintf(s.out, "SUCCESS: Imported %d contact(s) from '%s'.\n", s.store.Len(), path)
}

// prompt renders the invitation and returns the next input line without
// the trailing newline. The bool reports whether there was a line at
// all; exhausted input ends the session gracefully.
func (s *Shell) prompt(invitation string) (line string, ok bool) {
	fmt.Fprint(s.out, invitation)

	if !s.in.Scan() {
		return "", false
	}

	return s.in.Text(), true
}
