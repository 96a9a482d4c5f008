package convert

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wise-migrator/internal/assets"
	"wise-migrator/internal/legacy"
	"wise-migrator/internal/wise4"
)

func mustStep(t *testing.T, xml string) *legacy.Node {
	t.Helper()

	step, err := legacy.ParseString(xml)
	require.NoError(t, err)

	return step
}

// escapeXML escapes markup so it can be embedded as element text.
func escapeXML(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;").Replace(s)
}

func fileNamed(t *testing.T, out *Output, name string) wise4.File {
	t.Helper()

	for _, f := range out.Files {
		if f.Name == name {
			return f
		}
	}

	require.Failf(t, "file not produced", "%s not in output", name)

	return wise4.File{}
}

func decodeFile(t *testing.T, f wise4.File) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(f.Content, &m))

	return m
}

type recordingRewriter struct {
	seen []string
}

func (r *recordingRewriter) Rewrite(_ context.Context, text string) string {
	r.seen = append(r.seen, text)
	return strings.ReplaceAll(text, "http://wise.berkeley.edu/upload/1/", "assets/")
}

type fixedProber struct {
	sizes map[string]assets.Size
	calls []string
}

func (p *fixedProber) Probe(_ context.Context, url string) (assets.Size, error) {
	p.calls = append(p.calls, url)

	size, ok := p.sizes[url]
	if !ok {
		return assets.Size{}, errors.New("not found")
	}

	return size, nil
}
