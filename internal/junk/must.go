package junk

// Must panics on a non-nil error.  Reserved for embedded data, fixtures and CLI wiring where an error means a
// broken build rather than bad input.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
