package filemagic

import (
	"fmt"
	"slices"
)

// Expect detects buf and checks the result against allowed. An empty allowed
// list accepts any recognized type. Unrecognized data returns an error wrapping ErrNoMatch.
func Expect(buf []byte, allowed ...FileType) (FileType, error) {
	return defaultDetector.Expect(buf, allowed...)
}

// Expect is the Detector form of the package-level Expect.
func (d *Detector) Expect(buf []byte, allowed ...FileType) (FileType, error) {
	t, ok := d.Detect(buf)
	if !ok {
		return Unknown, fmt.Errorf("%w in %d bytes", ErrNoMatch, len(buf))
	}
	if len(allowed) > 0 && !slices.Contains(allowed, t) {
		return t, &MismatchError{Detected: t, Allowed: slices.Clone(allowed)}
	}
	return t, nil
}
