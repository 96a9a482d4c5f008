package legacy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStep = `<step>
  <title>Intro &amp; goals</title>
  <type>DisplayPage</type>
  <parameters>
    <html><![CDATA[<p>hi</p>]]></html>
    <prompt>first</prompt>
    <prompt>second</prompt>
  </parameters>
</step>`

func TestParseAndSelect(t *testing.T) {
	step, err := ParseString(sampleStep)
	require.NoError(t, err)

	assert.Equal(t, "step", step.Name())
	assert.Equal(t, "Intro & goals", step.SelectSingleNode("title").Text())
	assert.Equal(t, "<p>hi</p>", step.SelectSingleNode("parameters/html").Text())
	assert.Nil(t, step.SelectSingleNode("parameters/missing"))

	prompts := step.SelectNodes("parameters/prompt")
	require.Len(t, prompts, 2)
	assert.Equal(t, "first", prompts[0].Text())
	assert.Equal(t, "second", prompts[1].Text())
}

func TestTextSkipsChildElements(t *testing.T) {
	n, err := ParseString(`<simpleChoice identifier="choice0">Yes<feedbackInline>right</feedbackInline> indeed</simpleChoice>`)
	require.NoError(t, err)

	assert.Equal(t, "Yes indeed", n.Text())
	assert.Equal(t, "right", n.Child("feedbackInline").Text())
}

func TestTextAt(t *testing.T) {
	step, err := ParseString(sampleStep)
	require.NoError(t, err)

	got, err := step.TextAt("type")
	require.NoError(t, err)
	assert.Equal(t, "DisplayPage", got)

	_, err = step.TextAt("parameters/url")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingField))

	assert.Equal(t, "", step.OptionalTextAt("parameters/url"))
}

func TestAttributes(t *testing.T) {
	n, err := ParseString(`<choiceInteraction responseIdentifier="RESP1" shuffle="false"/>`)
	require.NoError(t, err)

	v, ok := n.Attr("responseIdentifier")
	assert.True(t, ok)
	assert.Equal(t, "RESP1", v)

	_, err = n.RequireAttr("maxChoices")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestDescendantsMatchesNamespace(t *testing.T) {
	doc := `<root xmlns:qti="urn:qti">
  <qti:item id="a"/>
  <item id="plain"/>
  <wrap xmlns="urn:qti"><item id="b"/></wrap>
</root>`

	root, err := ParseString(doc)
	require.NoError(t, err)

	items := root.Descendants("urn:qti", "item")
	require.Len(t, items, 2)

	ids := make([]string, 0, len(items))
	for _, it := range items {
		id, _ := it.Attr("id")
		ids = append(ids, id)
	}

	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestChildrenNamedAndAsXML(t *testing.T) {
	n, err := ParseString(`<r><a>1</a><b/><a>2</a></r>`)
	require.NoError(t, err)

	as := n.ChildrenNamed("a")
	require.Len(t, as, 2)
	assert.Equal(t, "2", as[1].Text())
	assert.Len(t, n.Children(), 3)
	assert.Contains(t, n.AsXML(), "<b/>")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := ParseString(`<a b=></a>`)
	assert.Error(t, err)

	_, err = ParseString("")
	assert.Error(t, err)
}
