// Package assets provides the embedded badge logo and turns image files into
// data URIs for badge logos.
package assets

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/h2non/filetype"
)

// BuiltinLogo is the logo reference that resolves to the embedded heart.
const BuiltinLogo = "builtin:heart"

//go:embed heart.svg
var heartSVG []byte

// ErrNotImage is returned for logo data that is not a recognised image.
var ErrNotImage = errors.New("not an image")

// DefaultLogo returns the embedded heart logo as a data URI.
func DefaultLogo() string {
	return dataURI("image/svg+xml", heartSVG)
}

// LogoDataURI detects the image type of data and encodes it as a data URI.
func LogoDataURI(data []byte) (string, error) {
	if filetype.IsImage(data) {
		kind, err := filetype.Match(data)
		if err != nil {
			return "", fmt.Errorf("detecting logo type: %w", err)
		}
		return dataURI(kind.MIME.Value, data), nil
	}
	if isSVG(data) {
		return dataURI("image/svg+xml", data), nil
	}
	return "", ErrNotImage
}

// LoadLogo resolves a logo reference: BuiltinLogo, an existing data URI, or
// a path to an image file.
func LoadLogo(ref string) (string, error) {
	switch {
	case ref == "":
		return "", nil
	case ref == BuiltinLogo:
		return DefaultLogo(), nil
	case strings.HasPrefix(ref, "data:"):
		return ref, nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return "", fmt.Errorf("reading logo %s: %w", ref, err)
	}
	uri, err := LogoDataURI(data)
	if err != nil {
		return "", fmt.Errorf("logo %s: %w", ref, err)
	}
	return uri, nil
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.RawStdEncoding.EncodeToString(data)
}

// isSVG sniffs for an <svg root within the first kilobyte.
func isSVG(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	head = bytes.TrimSpace(head)
	return bytes.HasPrefix(head, []byte("<svg")) ||
		(bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg")))
}
