package flow

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// DefaultMaxPhotoBytes bounds the decoded size of an encoded photo.
const DefaultMaxPhotoBytes = 4 << 20

var (
	errNotDataURI     = errors.New("photo must be a data URI formatted as data:<mimetype>;base64,<data>")
	errMissingPayload = errors.New("photo data URI has no payload")
	errNotBase64      = errors.New("photo data URI must use base64 encoding")
)

// Photo is an image decoded from a data URI.
type Photo struct {
	MIMEType string
	Data     []byte
}

// DataURI re-encodes the photo in the data:<mimetype>;base64,<data> form.
func (p Photo) DataURI() string {
	return "data:" + p.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ParsePhoto decodes and checks a data URI photo. maxBytes <= 0 disables the size check.
func ParsePhoto(raw string, maxBytes int) (Photo, error) {
	value := strings.TrimSpace(raw)
	if len(value) < len("data:") || !strings.EqualFold(value[:len("data:")], "data:") {
		return Photo{}, errNotDataURI
	}
	header, payload, ok := strings.Cut(value[len("data:"):], ",")
	if !ok {
		return Photo{}, errNotDataURI
	}

	params := strings.Split(header, ";")
	mediaType := strings.ToLower(strings.TrimSpace(params[0]))
	if mediaType == "" {
		return Photo{}, errors.New("photo data URI is missing its media type")
	}
	if !strings.HasPrefix(mediaType, "image/") {
		return Photo{}, fmt.Errorf("photo media type %q is not an image", mediaType)
	}
	encoded := false
	for _, param := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(param), "base64") {
			encoded = true
		}
	}
	if !encoded {
		return Photo{}, errNotBase64
	}
	if payload == "" {
		return Photo{}, errMissingPayload
	}
	if maxBytes > 0 && len(payload) > base64.StdEncoding.EncodedLen(maxBytes) {
		return Photo{}, fmt.Errorf("photo exceeds %d bytes", maxBytes)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Photo{}, fmt.Errorf("photo payload is not valid base64: %w", err)
	}
	if len(data) == 0 {
		return Photo{}, errMissingPayload
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return Photo{}, fmt.Errorf("photo exceeds %d bytes", maxBytes)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Photo{}, fmt.Errorf("photo payload is not a supported image: %w", err)
	}
	if !formatMatches(mediaType, format) {
		return Photo{}, fmt.Errorf("photo media type %s does not match %s content", mediaType, format)
	}
	return Photo{MIMEType: mediaType, Data: data}, nil
}

func formatMatches(mediaType, format string) bool {
	switch format {
	case "jpeg":
		return mediaType == "image/jpeg" || mediaType == "image/jpg" || mediaType == "image/pjpeg"
	case "png":
		return mediaType == "image/png"
	case "gif":
		return mediaType == "image/gif"
	case "webp":
		return mediaType == "image/webp"
	default:
		return false
	}
}
