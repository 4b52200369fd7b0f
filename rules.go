package filemagic

// Rule pairs an optional start pattern and an optional end pattern with the
// FileType they identify. Both patterns must match.
type Rule struct {
	Start Pattern
	End   Pattern
	Type  FileType
}

// Matches reports whether buf satisfies both patterns of r.
func (r Rule) Matches(buf []byte) bool {
	return r.Start.Matches(buf) && r.End.Matches(buf)
}

func (r Rule) clone() Rule {
	r.Start.Bytes = append([]byte(nil), r.Start.Bytes...)
	r.End.Bytes = append([]byte(nil), r.End.Bytes...)
	return r
}

func startRule(t FileType, p Pattern) Rule {
	return Rule{Start: p, Type: t}
}

// pngTrailer is the IEND chunk type and CRC every complete PNG ends with.
var pngTrailer = []byte{0x49, 0x45, 0x4E, 0x44, 0xAE, 0x42, 0x60, 0x82}

// builtinRules is ordered by priority, earliest match wins. Signatures at a
// non-zero offset come before the short leading ones: byte 0 of a tar is a
// member name and can spell out any of them.
var builtinRules = []Rule{
	{End: EndsWith([]byte("TRUEVISION-XFILE.\x00")), Type: Tga}, // TGA has no leading magic

	// Offset signatures
	startRule(Tar, StartsWithOffset(0x101, []byte("ustar  \x00"))), // GNU tar
	startRule(Tar, StartsWithOffset(0x101, []byte("ustar\x0000"))), // POSIX tar
	startRule(Zip, StartsWithOffset(0x1E, []byte("PKLITE"))),
	startRule(Webp, StartsWithOffset(8, []byte("WEBP"))), // After RIFF header

	// Images
	startRule(Jpeg, StartsWith([]byte{0xFF, 0xD8})),
	{
		Start: StartsWith([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}),
		End:   EndsWith(pngTrailer),
		Type:  Png,
	},
	startRule(Bmp, StartsWith([]byte("BM"))),
	startRule(Gif, StartsWith([]byte("GIF87a"))),
	startRule(Gif, StartsWith([]byte("GIF89a"))),
	startRule(TiffLittleEndian, StartsWith([]byte{0x49, 0x49, 0x2A, 0x00})),
	startRule(TiffBigEndian, StartsWith([]byte{0x4D, 0x4D, 0x00, 0x2A})),

	// Compression/Archives
	startRule(Bzip2, StartsWith([]byte("BZh"))),
	startRule(Zip, StartsWith([]byte{0x50, 0x4B, 0x03, 0x04})),
	startRule(Zip, StartsWith([]byte{0x50, 0x4B, 0x05, 0x06})), // Empty ZIP
	startRule(Gzip, StartsWith([]byte{0x1F, 0x8B})),
	startRule(Xz, StartsWith([]byte{0xFD, '7', 'z', 'X', 'Z', 0x00})),
	startRule(SevenZip, StartsWith([]byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C})),
	startRule(Rar, StartsWith([]byte("Rar!\x1a\x07\x00"))),
	startRule(Rar, StartsWith([]byte("Rar!\x1a\x07\x01\x00"))), // RAR5

	// Documents
	startRule(Pdf, StartsWith([]byte("%PDF-"))),
}

// Rules returns a copy of the built-in rule table in priority order.
func Rules() []Rule {
	return defaultDetector.Rules()
}

// validateRule reports why r cannot be part of a rule table, or nil.
func validateRule(r Rule) error {
	switch {
	case r.Start.IsNull() && r.End.IsNull():
		return ErrEmptyRule
	case r.Type == Unknown:
		return ErrUnknownType
	case !r.Start.IsNull() && r.Start.Anchor != AnchorStart:
		return ErrAnchorMismatch
	case !r.End.IsNull() && r.End.Anchor != AnchorEnd:
		return ErrAnchorMismatch
	case r.Start.Offset < 0 || r.End.Offset < 0:
		return ErrNegativeOffset
	}
	return nil
}
