// Package filemagic identifies file formats from the magic numbers found at
// fixed offsets from the start or the end of their content.
//
// Detection runs an ordered rule table against an in-memory buffer. Each
// [Rule] combines an optional start-anchored [Pattern] and an optional
// end-anchored [Pattern]; the first rule whose patterns both match decides
// the [FileType]. Buffers too short for a pattern simply fail that pattern,
// so detection never panics, whatever the input length.
//
// # Basic Usage
//
//	data, err := os.ReadFile("photo.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if t, ok := filemagic.Detect(data); ok {
//	    fmt.Println(t, t.Extension(), t.MIME())
//	}
//
// Not finding a known signature is an expected outcome and is reported by the
// second return value, not by an error.
//
// # Reading Files
//
// [DetectFile] and [DetectReaderAt] read only the bytes the table can
// inspect: the leading [Detector.HeadReach] and trailing [Detector.TailReach]
// bytes. [DetectReader] is for streams that cannot seek: it keeps the head and
// a rolling window of the last TailReach bytes while draining the stream.
//
//	t, ok, err := filemagic.DetectFile("archive.tar")
//
// # Rule Order
//
// Rules are evaluated in table order and the earliest match wins. Several
// rules may map to the same type (two ZIP signatures, GNU and POSIX tar).
// PNG requires both its leading signature and the trailing IEND chunk, so a
// truncated PNG is not recognized.
//
// # Custom Tables
//
// [NewDetector] builds a detector over caller-supplied rules. Malformed rules
// are rejected with a [*RuleError]:
//
//	d, err := filemagic.NewDetector(
//	    filemagic.Rule{Start: filemagic.StartsWith([]byte("GIF89a")), Type: filemagic.Gif},
//	    filemagic.Rule{End: filemagic.EndsWith([]byte("%%EOF")), Type: filemagic.Pdf},
//	)
//
// # Allow Lists
//
// [Expect] detects and checks the result against a list of allowed types:
//
//	if _, err := filemagic.Expect(upload, filemagic.Png, filemagic.Jpeg); err != nil {
//	    if filemagic.IsNotAllowed(err) {
//	        // reject
//	    }
//	}
//
// # Configuration
//
// The filemagic command reads its defaults from the environment through
// [GetConfig]:
//
//	BEAVER_FILEMAGIC_FORMAT=text
//	BEAVER_FILEMAGIC_CHECKSUM=false
//	BEAVER_FILEMAGIC_INCLUDE=
//	BEAVER_FILEMAGIC_ALLOWED_TYPES=
//	BEAVER_FILEMAGIC_STRICT=false
//	BEAVER_FILEMAGIC_LOG_LEVEL=warn
package filemagic
