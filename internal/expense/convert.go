package expense

import (
	"bytes"
	"fmt"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/gen2brain/heic"
)

// normalizeUpload rewrites formats browsers cannot display. HEIC/HEIF photos
// (the iPhone camera default) are decoded and re-encoded as PNG before they
// go into storage; everything else is stored exactly as uploaded.
func normalizeUpload(filename string, data []byte, contentType string) (string, []byte, string, error) {
	if !isHEICData(data) && !isHEICMimeType(contentType) {
		return filename, data, contentType, nil
	}

	img, err := heic.Decode(bytes.NewReader(data))
	if err != nil {
		return "", nil, "", fmt.Errorf("decoding heic image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", nil, "", fmt.Errorf("encoding png: %w", err)
	}

	ext := filepath.Ext(filename)
	converted := strings.TrimSuffix(filename, ext) + ".png"
	return converted, buf.Bytes(), "image/png", nil
}

// isHEICData checks the ftyp box for a HEIC/HEIF brand
func isHEICData(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}

// isHEICMimeType checks if the MIME type indicates HEIC/HEIF format
func isHEICMimeType(mimeType string) bool {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	return strings.Contains(mimeType, "heic") || strings.Contains(mimeType, "heif")
}
