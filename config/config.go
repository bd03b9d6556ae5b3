package config

// Config holds the store's limits: the number of buckets the table is
// split into and how long a contact's fields may grow.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try
// to initialize the config manually, as zero limits mean "use defaults",
// not "unlimited".
type Config struct {
	// Buckets is the length of the bucket array. It is fixed for the
	// store's whole lifetime; there is no rehashing or resizing.
	Buckets int
	// MaxNameLength bounds a contact's name, counted in bytes. Longer
	// input is silently cut, mirroring the reference fixed-width layout
	// of 50 bytes with one byte reserved for the terminator.
	MaxNameLength int
	// MaxPhoneLength bounds a contact's phone number the same way,
	// with a 15-byte reference layout.
	MaxPhoneLength int
}

// Default returns the reference configuration: 100 buckets, 49-byte
// names and 14-byte phone numbers.
func Default() *Config {
	return &Config{
		Buckets:        100,
		MaxNameLength:  49,
		MaxPhoneLength: 14,
	}
}

// Fill replaces zero fields of the config with default values. Passing
// nil yields the whole default config.
func Fill(cfg *Config) *Config {
	if cfg == nil {
		return Default()
	}

	defaults := Default()

	if cfg.Buckets == 0 {
		cfg.Buckets = defaults.Buckets
	}

	if cfg.MaxNameLength == 0 {
		cfg.MaxNameLength = defaults.MaxNameLength
	}

	if cfg.MaxPhoneLength == 0 {
		cfg.MaxPhoneLength = defaults.MaxPhoneLength
	}

	return cfg
}
