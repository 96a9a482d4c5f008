package steptype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wise-migrator/internal/legacy"
)

func stepXML(t *testing.T, body string) *legacy.Node {
	t.Helper()

	n, err := legacy.ParseString("<step><title>t</title>" + body + "</step>")
	require.NoError(t, err)

	return n
}

func TestResolveExplicitType(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Type
		raw      string
	}{
		{"display page", "<type>DisplayPage</type>", DisplayPage, "DisplayPage"},
		{"notes", "<type>Notes</type>", Notes, "Notes"},
		{"svg alias", "<type>SVGDraw</type>", Wisedraw2, "SVGDraw"},
		{"otrunk alias", "<type>Otrunk</type>", OTrunk, "Otrunk"},
		{"explicit beats heuristics", "<type>Journal</type><authoringURL>x/Discussion/y</authoringURL>", Journal, "Journal"},
		{"unknown explicit", "<type>MySteriousStep</type>", Unrecognized, "MySteriousStep"},
		{"outside url", "<type>OutsideUrl</type><authoringURL>links/edit</authoringURL>", OutsideURL, "OutsideUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(stepXML(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Type)
			assert.Equal(t, tt.raw, res.String())
		})
	}
}

func TestResolveHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected Type
	}{
		{"no type at all", "", Unspecified},
		{"unspecified sentinel", "<type>Unspecified</type>", Unspecified},
		{"empty type falls through", "<type></type><authoringURL>a/Journal</authoringURL>", Journal},
		{"discussion", "<authoringURL>foo/Discussion/bar</authoringURL>", DiscussionForum},
		{"show all work", "<authoringURL>allWork.php</authoringURL>", ShowAllWork},
		{"self test", "<authoringURL>SelfTest/edit</authoringURL>", SelfTest},
		{"brainstorm", "<authoringURL>Brainstorm/x</authoringURL>", Brainstorm},
		{"graph data", "<authoringURL>GraphData/x</authoringURL>", GraphData},
		{"journal", "<authoringURL>Journal/x</authoringURL>", Journal},
		{"principle maker 1", "<authoringURL>psdDemoModeI</authoringURL>", PrincipleMakerStep1},
		{"principle maker 2", "<authoringURL>discussionModeI</authoringURL>", PrincipleMakerStep2},
		{"principle maker 3", "<authoringURL>exPsdDemoMode</authoringURL>", PrincipleMakerStep3},
		{"spreadsheet url", "<authoringURL>other</authoringURL><url>http://x/SSStudent.php?id=1</url>", Table},
		{"order matters", "<authoringURL>Discussion/SelfTest</authoringURL>", DiscussionForum},
		{"case sensitive", "<authoringURL>discussion</authoringURL>", Unspecified},
		{"otrunk", "<authoringURL>otrunk-wise-step</authoringURL><otherData>otrunk</otherData>", OTrunk},
		{"otrunk model", "<authoringURL>otrunk-wise-step</authoringURL><otherData>model</otherData>", OTrunkModel},
		{"otrunk diy", "<authoringURL>otrunk-wise-step</authoringURL><otherData>diy-12</otherData>", OTrunkDIY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Resolve(stepXML(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, res.Type)
		})
	}
}

func TestResolveSelfTestOverride(t *testing.T) {
	for _, body := range []string{
		"<type>OutsideUrl</type><authoringURL>x/SelfTest/y</authoringURL>",
		"<type>OutsideUrl</type><authoringURL>SelfTest</authoringURL><url>http://example.com</url>",
	} {
		res, err := Resolve(stepXML(t, body))
		require.NoError(t, err)
		assert.Equal(t, SelfTest, res.Type, body)
	}

	// Other explicit types are left alone.
	res, err := Resolve(stepXML(t, "<type>DisplayPage</type><authoringURL>SelfTest</authoringURL>"))
	require.NoError(t, err)
	assert.Equal(t, DisplayPage, res.Type)

	// No authoringURL, no override.
	res, err = Resolve(stepXML(t, "<type>OutsideUrl</type>"))
	require.NoError(t, err)
	assert.Equal(t, OutsideURL, res.Type)
}

func TestResolveOTrunkWithoutOtherData(t *testing.T) {
	_, err := Resolve(stepXML(t, "<authoringURL>otrunk-wise-step</authoringURL>"))
	require.Error(t, err)
	assert.ErrorIs(t, err, legacy.ErrMissingField)
}

func TestResolveIsIdempotent(t *testing.T) {
	step := stepXML(t, "<authoringURL>x/Brainstorm</authoringURL>")

	first, err := Resolve(step)
	require.NoError(t, err)

	second, err := Resolve(step)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseRoundTripsNames(t *testing.T) {
	for i := 0; i < TypeTotal; i++ {
		typ := Type(i)
		if typ == Unrecognized {
			_, ok := Parse(typ.String())
			assert.False(t, ok)

			continue
		}

		got, ok := Parse(typ.String())
		assert.True(t, ok, typ.String())
		assert.Equal(t, typ, got)
	}

	assert.Equal(t, "Type(28)", Type(TypeTotal).String())
	assert.Equal(t, "OutsideUrl", OutsideURL.String())
}
