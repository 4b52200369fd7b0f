package filemagic

import (
	"fmt"
	"strings"
)

// FileType identifies a recognized file format. The zero value is Unknown.
type FileType int

// Known file types
const (
	Unknown FileType = iota

	// Images
	Tga
	Jpeg
	Png
	Bmp
	Gif
	TiffLittleEndian
	TiffBigEndian
	Webp

	// Compression/Archives
	Zip
	Bzip2
	// Tar archives. Empty tar files carry no magic number, only archives
	// with at least one entry are recognized.
	Tar
	Gzip
	Xz
	SevenZip
	Rar

	// Documents
	Pdf
)

// Categories returned by FileType.Category
const (
	CategoryImage    = "image"
	CategoryArchive  = "archive"
	CategoryDocument = "document"
	CategoryOther    = "other"
)

type fileTypeInfo struct {
	name      string
	extension string
	mime      string
	category  string
}

var fileTypeInfos = map[FileType]fileTypeInfo{
	Tga:              {name: "TGA", extension: "tga", mime: "image/x-tga", category: CategoryImage},
	Jpeg:             {name: "JPEG", extension: "jpg", mime: "image/jpeg", category: CategoryImage},
	Png:              {name: "PNG", extension: "png", mime: "image/png", category: CategoryImage},
	Bmp:              {name: "BMP", extension: "bmp", mime: "image/bmp", category: CategoryImage},
	Gif:              {name: "GIF", extension: "gif", mime: "image/gif", category: CategoryImage},
	TiffLittleEndian: {name: "TIFF-LE", extension: "tif", mime: "image/tiff", category: CategoryImage},
	TiffBigEndian:    {name: "TIFF-BE", extension: "tif", mime: "image/tiff", category: CategoryImage},
	Webp:             {name: "WEBP", extension: "webp", mime: "image/webp", category: CategoryImage},
	Zip:              {name: "ZIP", extension: "zip", mime: "application/zip", category: CategoryArchive},
	Bzip2:            {name: "BZIP2", extension: "bz2", mime: "application/x-bzip2", category: CategoryArchive},
	Tar:              {name: "TAR", extension: "tar", mime: "application/x-tar", category: CategoryArchive},
	Gzip:             {name: "GZIP", extension: "gz", mime: "application/gzip", category: CategoryArchive},
	Xz:               {name: "XZ", extension: "xz", mime: "application/x-xz", category: CategoryArchive},
	SevenZip:         {name: "7Z", extension: "7z", mime: "application/x-7z-compressed", category: CategoryArchive},
	Rar:              {name: "RAR", extension: "rar", mime: "application/x-rar-compressed", category: CategoryArchive},
	Pdf:              {name: "PDF", extension: "pdf", mime: "application/pdf", category: CategoryDocument},
}

// fileTypeAliases are common spellings that are neither a type name nor an
// extension.
var fileTypeAliases = map[string][]FileType{
	"tiff":  {TiffLittleEndian, TiffBigEndian},
	"targa": {Tga},
	"jpe":   {Jpeg},
	"bzip":  {Bzip2},
	"7zip":  {SevenZip},
	"rar5":  {Rar},
}

// FileTypes returns every known file type in declaration order. Unknown is
// not included.
func FileTypes() []FileType {
	types := make([]FileType, 0, len(fileTypeInfos))
	for t := Tga; t <= Pdf; t++ {
		types = append(types, t)
	}
	return types
}

// ParseFileType resolves a type name ("png", "TIFF-LE"), an extension
// ("tif", ".jpg") or a common alias ("tiff", "targa"). Extensions and aliases
// shared by several types return all of them.
func ParseFileType(name string) ([]FileType, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "."))

	var matched []FileType
	for _, t := range FileTypes() {
		info := fileTypeInfos[t]
		if strings.ToLower(info.name) == key {
			return []FileType{t}, nil
		}
		if info.extension == key {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		if aliased, ok := fileTypeAliases[key]; ok {
			return append([]FileType(nil), aliased...), nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return matched, nil
}

// Extension returns the canonical filename extension without a leading dot,
// or an empty string for Unknown.
func (t FileType) Extension() string {
	return fileTypeInfos[t].extension
}

// MIME returns the MIME type for t. Unknown maps to application/octet-stream.
func (t FileType) MIME() string {
	if info, ok := fileTypeInfos[t]; ok {
		return info.mime
	}
	return "application/octet-stream"
}

// Category returns a coarse grouping: image, archive, document or other.
func (t FileType) Category() string {
	if info, ok := fileTypeInfos[t]; ok {
		return info.category
	}
	return CategoryOther
}

func (t FileType) String() string {
	if info, ok := fileTypeInfos[t]; ok {
		return info.name
	}
	return "unknown"
}

// IsImage reports whether t is an image format.
func (t FileType) IsImage() bool {
	return t.Category() == CategoryImage
}

// IsArchive reports whether t is an archive or compression format.
func (t FileType) IsArchive() bool {
	return t.Category() == CategoryArchive
}

// MarshalText encodes t as its short name.
func (t FileType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
