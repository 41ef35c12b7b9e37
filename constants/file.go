package constants

import (
	"path/filepath"
	"strings"
)

// MaxUploadMBDefault caps the size of a document we are willing to send inline
// to the inference provider.
const MaxUploadMBDefault = 20

// AllowedExtensions holds the default allowed file extensions for document uploads.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"gif":  {},
	"webp": {},
	"tiff": {},
	"tif":  {},
	"bmp":  {},
}

var extMIME = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
	"tiff": "image/tiff",
	"tif":  "image/tiff",
	"bmp":  "image/bmp",
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MIMEForFilename maps a filename's extension to the MIME type we declare on
// the inline file part. Unknown extensions fall back to application/octet-stream.
func MIMEForFilename(filename string) string {
	ext := NormalizeExt(filepath.Ext(filename))
	if mt, ok := extMIME[ext]; ok {
		return mt
	}
	return "application/octet-stream"
}

// IsImageFilename reports whether the filename looks like a raster image we can
// attach as a vision part.
func IsImageFilename(filename string) bool {
	mt := MIMEForFilename(filename)
	return strings.HasPrefix(mt, "image/")
}
