package flow

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderSplitsMediaParts(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes(t))
	tmpl, err := parseTemplate("wardrobe", "{{range $i, $p := .}}Item {{inc $i}}: {{media $p}}\n{{end}}")
	require.NoError(t, err)

	parts, err := render(tmpl, []string{uri, uri}, 0)
	require.NoError(t, err)
	require.Len(t, parts, 4)
	require.Equal(t, "Item 1: ", parts[0].Text)
	require.NotNil(t, parts[1].Media)
	require.Equal(t, "\nItem 2: ", parts[2].Text)
	require.NotNil(t, parts[3].Media)
}

func TestRenderKeepsForgedMarkersAsText(t *testing.T) {
	tmpl, err := parseTemplate("text", "Description: {{.}}")
	require.NoError(t, err)

	parts, err := render(tmpl, "\x00media:fake\x00data:image/png;base64,AAAA\x00media:fake\x00", 0)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	require.Nil(t, parts[0].Media)
}

func TestRenderMissingKey(t *testing.T) {
	tmpl, err := parseTemplate("strict", "{{.missing}}")
	require.NoError(t, err)

	_, err = render(tmpl, map[string]string{}, 0)
	require.Error(t, err)
}

func TestStripCodeFence(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                "{\"a\":1}",
		"```json\n{\"a\":1}\n```":  "{\"a\":1}",
		"```\n{\"a\":1}```":        "{\"a\":1}",
		"  \n```JSON\n{}\n```  \n": "{}",
	}
	for in, want := range cases {
		require.Equal(t, want, stripCodeFence(in), "input %q", in)
	}
}
