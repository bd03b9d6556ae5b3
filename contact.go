package phonebook

// Contact is a single phonebook entry. Both fields are bounded at
// insertion time and never mutated afterwards; updating a contact means
// deleting and re-inserting it.
type Contact struct {
	Name, Phone string
}

// truncate cuts the string down to at most limit bytes. This is a
// designed lossy conversion matching the reference fixed-width fields,
// not a validation failure, so nothing is reported.
func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}

	return s
}
