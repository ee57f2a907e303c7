package flow

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
)

// mediaMarker fences media references inside rendered text. The random component keeps
// user supplied text from forging a media part.
var mediaMarker = "\x00media:" + uuid.NewString() + "\x00"

var templateFuncs = template.FuncMap{
	"media": func(dataURI string) string {
		return mediaMarker + dataURI + mediaMarker
	},
	"inc": func(i int) int {
		return i + 1
	},
}

// Part is one ordered element of a rendered prompt: either text or a photo.
type Part struct {
	Text  string
	Media *Photo
}

func parseTemplate(name, text string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(templateFuncs).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s template: %w", name, err)
	}
	return tmpl, nil
}

// render executes the template and splits the output on media references.
func render(tmpl *template.Template, data any, maxPhotoBytes int) ([]Part, error) {
	var builder strings.Builder
	if err := tmpl.Execute(&builder, data); err != nil {
		return nil, fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}

	segments := strings.Split(builder.String(), mediaMarker)
	parts := make([]Part, 0, len(segments))
	for i, segment := range segments {
		if i%2 == 1 {
			photo, err := ParsePhoto(segment, maxPhotoBytes)
			if err != nil {
				return nil, err
			}
			parts = append(parts, Part{Media: &photo})
			continue
		}
		if strings.TrimSpace(segment) == "" {
			continue
		}
		parts = append(parts, Part{Text: segment})
	}
	return parts, nil
}
