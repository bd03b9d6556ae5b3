package shell

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/phonebook-dev/phonebook"
	"github.com/phonebook-dev/phonebook/config"
)

// runSession feeds the script line by line into a fresh shell and
// returns the whole transcript.
func runSession(t *testing.T, script ...string) string {
	store, err := phonebook.New(nil)
	require.NoError(t, err)

	var out bytes.Buffer
	input := strings.NewReader(strings.Join(script, "\n") + "\n")
	require.NoError(t, New(store, config.Default(), input, &out).Run())

	return out.String()
}

func TestShell(t *testing.T) {
	t.Run("add search delete", func(t *testing.T) {
		transcript := runSession(t,
			"1", "Alice", "555-1234",
			"2", "Alice",
			"3", "Alice",
			"2", "Alice",
			"7",
		)

		require.Contains(t, transcript, "SUCCESS: Added 'Alice' with phone '555-1234'.")
		require.Contains(t, transcript, "FOUND: Name: Alice, Phone: 555-1234")
		require.Contains(t, transcript, "SUCCESS: Deleted 'Alice'.")
		require.Contains(t, transcript, "ERROR: Contact 'Alice' not found.")
		require.Contains(t, transcript, "Exiting...")
	})

	t.Run("display", func(t *testing.T) {
		transcript := runSession(t,
			"4",
			"1", "Bob", "555-5678",
			"4",
			"7",
		)

		require.Contains(t, transcript, "Phonebook is empty.")
		require.Contains(t, transcript, "Bucket[32]:")
		require.Contains(t, transcript, "Name: Bob")
	})

	t.Run("over-long input is echoed as stored", func(t *testing.T) {
		transcript := runSession(t,
			"1", strings.Repeat("n", 60), strings.Repeat("7", 20),
			"7",
		)

		cut := strings.Repeat("n", 49)
		require.Contains(t, transcript, "SUCCESS: Added '"+cut+"' with phone '"+strings.Repeat("7", 14)+"'.")
		require.NotContains(t, transcript, strings.Repeat("n", 50))
	})

	t.Run("invalid choice reprompts", func(t *testing.T) {
		transcript := runSession(t, "9", "7")
		require.Contains(t, transcript, "Invalid choice. Please try again.")
	})

	t.Run("exhausted input ends the session", func(t *testing.T) {
		transcript := runSession(t, "1", "Alice")
		require.NotContains(t, transcript, "Exiting...")
	})

	t.Run("export and import", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "contacts.json")

		transcript := runSession(t,
			"1", "Alice", "555-1234",
			"5", path,
			"7",
		)
		require.Contains(t, transcript, "SUCCESS: Exported 1 contact(s) to '"+path+"'.")

		transcript = runSession(t,
			"6", path,
			"2", "Alice",
			"7",
		)
		require.Contains(t, transcript, "SUCCESS: Imported 1 contact(s) from '"+path+"'.")
		require.Contains(t, transcript, "FOUND: Name: Alice, Phone: 555-1234")
	})

	t.Run("import from a missing file", func(t *testing.T) {
		transcript := runSession(t,
			"6", filepath.Join(t.TempDir(), "nope.json"),
			"7",
		)
		require.Contains(t, transcript, "ERROR: can't import:")
	})
}
