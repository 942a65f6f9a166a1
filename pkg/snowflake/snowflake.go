package snowflake

// Generator hands out unique, time-ordered IDs.
type Generator interface {
	Generate() int64
	// GenerateString returns the ID in base32 form, suitable for headers.
	GenerateString() string
}
