package filemagic

import "bytes"

// Anchor selects the end of the buffer a Pattern is measured from.
type Anchor int

const (
	// AnchorStart measures the offset from the first byte of the buffer.
	AnchorStart Anchor = iota
	// AnchorEnd measures the offset backwards from the last byte.
	AnchorEnd
)

func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	default:
		return "invalid"
	}
}

// Pattern is a byte sequence expected at Offset bytes from its Anchor.
// A Pattern with no Bytes is the null pattern and matches every buffer.
type Pattern struct {
	Bytes  []byte
	Offset int
	Anchor Anchor
}

// StartsWith returns a pattern matching b at the start of the buffer.
func StartsWith(b []byte) Pattern {
	return Pattern{Bytes: b, Anchor: AnchorStart}
}

// StartsWithOffset returns a pattern matching b after skipping offset
// leading bytes.
func StartsWithOffset(offset int, b []byte) Pattern {
	return Pattern{Bytes: b, Offset: offset, Anchor: AnchorStart}
}

// EndsWith returns a pattern matching b at the tail of the buffer.
func EndsWith(b []byte) Pattern {
	return Pattern{Bytes: b, Anchor: AnchorEnd}
}

// EndsWithOffset returns a pattern matching b after trimming offset
// trailing bytes.
func EndsWithOffset(offset int, b []byte) Pattern {
	return Pattern{Bytes: b, Offset: offset, Anchor: AnchorEnd}
}

// IsNull reports whether p is the null pattern.
func (p Pattern) IsNull() bool {
	return len(p.Bytes) == 0
}

// Reach returns how many bytes, counted from the anchor, a buffer must hold
// for p to be able to match.
func (p Pattern) Reach() int {
	if p.IsNull() {
		return 0
	}
	return p.Offset + len(p.Bytes)
}

// Matches reports whether buf carries p. Buffers too short to hold the
// pattern never match.
func (p Pattern) Matches(buf []byte) bool {
	if p.IsNull() {
		return true
	}
	if p.Offset < 0 {
		return false
	}

	switch p.Anchor {
	case AnchorStart:
		end := p.Offset + len(p.Bytes)
		if end > len(buf) {
			return false
		}
		return bytes.Equal(buf[p.Offset:end], p.Bytes)
	case AnchorEnd:
		end := len(buf) - p.Offset
		start := end - len(p.Bytes)
		if end < 0 || start < 0 {
			return false
		}
		return bytes.Equal(buf[start:end], p.Bytes)
	default:
		return false
	}
}
