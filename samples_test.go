package filemagic

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
)

// sample is a buffer known to carry the signature of want.
type sample struct {
	name string
	data []byte
	want FileType
	// minLen is the shortest prefix (or suffix, for tail-only rules) that
	// still carries the signature.
	minLen int
}

// testImage fills an image with LCG noise so encoders cannot shrink it much.
func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	seed := uint32(1)
	next := func() uint8 {
		seed = seed*1664525 + 1013904223
		return uint8(seed >> 24)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: next(), G: next(), B: next(), A: 0xFF})
		}
	}
	return img
}

func pngSample(t testing.TB, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage(w, h)); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func jpegSample(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, testImage(8, 8), nil); err != nil {
		t.Fatalf("jpeg.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func gifSample(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := gif.Encode(&buf, testImage(4, 4), nil); err != nil {
		t.Fatalf("gif.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// tgaSample builds an uncompressed true-color TGA with a version 2 footer.
func tgaSample(pixels int) []byte {
	header := make([]byte, 18)
	header[2] = 2   // uncompressed true-color
	header[12] = 1  // width
	header[14] = 1  // height
	header[16] = 24 // bits per pixel
	data := append(header, bytes.Repeat([]byte{0x10, 0x20, 0x30}, pixels)...)
	data = append(data, make([]byte, 8)...) // extension and developer offsets
	return append(data, []byte("TRUEVISION-XFILE.\x00")...)
}

func bmpSample() []byte {
	data := make([]byte, 58)
	copy(data, "BM")
	data[2] = 58
	data[10] = 54
	data[14] = 40
	return data
}

func zipSample(t testing.TB, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip Create() error = %v", err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("zip Write() error = %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip Close() error = %v", err)
	}
	return buf.Bytes()
}

func tarSample(t testing.TB, format tar.Format) []byte {
	t.Helper()
	return tarSampleNamed(t, format, "hello.txt")
}

// tarSampleNamed builds a single-member archive. The member name fills the
// first bytes of the archive.
func tarSampleNamed(t testing.TB, format tar.Format, name string) []byte {
	t.Helper()
	var buf bytes.Buffer
	tw := tar.NewWriter(&buf)
	content := []byte("hello tar")
	hdr := &tar.Header{
		Name:   name,
		Mode:   0o644,
		Size:   int64(len(content)),
		Format: format,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		t.Fatalf("tar WriteHeader() error = %v", err)
	}
	if _, err := tw.Write(content); err != nil {
		t.Fatalf("tar Write() error = %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("tar Close() error = %v", err)
	}
	return buf.Bytes()
}

func gzipSample(t testing.TB) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write([]byte("hello gzip")); err != nil {
		t.Fatalf("gzip Write() error = %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("gzip Close() error = %v", err)
	}
	return buf.Bytes()
}

func pkliteSample() []byte {
	data := make([]byte, 64)
	copy(data, "MZ")
	copy(data[0x1E:], "PKLITE Copr.")
	return data
}

func withTail(head []byte, n int) []byte {
	return append(append([]byte(nil), head...), bytes.Repeat([]byte{0x00}, n)...)
}

// samples returns one buffer per FileType and per signature variant.
func samples(t testing.TB) []sample {
	t.Helper()
	return []sample{
		{name: "tga", data: tgaSample(1), want: Tga, minLen: 18},
		{name: "jpeg", data: jpegSample(t), want: Jpeg, minLen: 2},
		{name: "png", data: pngSample(t, 2, 2), want: Png},
		{name: "bmp", data: bmpSample(), want: Bmp, minLen: 2},
		{name: "gif", data: gifSample(t), want: Gif, minLen: 6},
		{name: "gif87a", data: withTail([]byte("GIF87a"), 16), want: Gif, minLen: 6},
		{name: "tiff little endian", data: withTail([]byte{0x49, 0x49, 0x2A, 0x00, 0x08}, 16), want: TiffLittleEndian, minLen: 4},
		{name: "tiff big endian", data: withTail([]byte{0x4D, 0x4D, 0x00, 0x2A, 0x00}, 16), want: TiffBigEndian, minLen: 4},
		{name: "webp", data: withTail([]byte("RIFF\x24\x00\x00\x00WEBPVP8 "), 16), want: Webp, minLen: 12},
		{name: "zip", data: zipSample(t, map[string]string{"a.txt": "hello zip"}), want: Zip, minLen: 4},
		{name: "empty zip", data: zipSample(t, nil), want: Zip, minLen: 4},
		{name: "pklite", data: pkliteSample(), want: Zip, minLen: 0x1E + 6},
		{name: "bzip2", data: withTail([]byte("BZh91AY&SY"), 16), want: Bzip2, minLen: 3},
		{name: "gnu tar", data: tarSample(t, tar.FormatGNU), want: Tar, minLen: 0x101 + 8},
		{name: "ustar", data: tarSample(t, tar.FormatUSTAR), want: Tar, minLen: 0x101 + 8},
		{name: "gzip", data: gzipSample(t), want: Gzip, minLen: 2},
		{name: "xz", data: withTail([]byte{0xFD, '7', 'z', 'X', 'Z', 0x00, 0x00, 0x04}, 16), want: Xz, minLen: 6},
		{name: "7z", data: withTail([]byte{'7', 'z', 0xBC, 0xAF, 0x27, 0x1C, 0x00, 0x04}, 16), want: SevenZip, minLen: 6},
		{name: "rar4", data: withTail([]byte("Rar!\x1a\x07\x00\xcf\x90"), 16), want: Rar, minLen: 7},
		{name: "rar5", data: withTail([]byte("Rar!\x1a\x07\x01\x00\x33"), 16), want: Rar, minLen: 8},
		{name: "pdf", data: []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n"), want: Pdf, minLen: 5},
	}
}
