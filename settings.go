package chunkedbytes

// Settings is a set of limitations for the decoder
type Settings struct {
	MaxChunkSize uint64
}

// DefaultSettings returns prepared Settings instance, filled with default values.
// Default values may not always be the most optimal ones
func DefaultSettings() Settings {
	return Settings{
		MaxChunkSize: 1 * 1024 * 1024, // 1mb
	}
}
