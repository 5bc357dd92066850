package challenge

// Config holds the tunables that govern challenge generation and proof
// validation. It is constructed explicitly by the caller; the core never
// reads environment variables or flags itself.
type Config struct {
	// SampleCount is the number of byte offsets probed per challenge.
	SampleCount int
	// WindowBytes is the width of the contiguous window read at each
	// sampled offset.
	WindowBytes int
	// TimeoutMs is the maximum response_time_ms a proof may report and
	// still pass validation.
	TimeoutMs int64
}

// NewDefaultConfig returns sensible defaults: 128 samples of 64 bytes each,
// a 5 second response budget.
func NewDefaultConfig() Config {
	return Config{
		SampleCount: 128,
		WindowBytes: 64,
		TimeoutMs:   5000,
	}
}

// Validate reports ErrInvalidConfig if the configuration cannot describe a
// usable challenge.
func (c Config) Validate() error {
	if c.SampleCount <= 0 || c.WindowBytes <= 0 || c.TimeoutMs <= 0 {
		return ErrInvalidConfig
	}
	return nil
}
