package wise4

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalKeepsMarkupAndSlashes(t *testing.T) {
	data, err := Marshal(HTMLStep{Src: "node_0.html", Type: TypeHTML, Hints: []string{}})
	require.NoError(t, err)

	want := "{\n" +
		`   "src": "node_0.html",` + "\n" +
		`   "type": "Html",` + "\n" +
		`   "hints": []` + "\n" +
		"}"
	assert.Equal(t, want, string(data))

	data, err = Marshal(OutsideURL{Type: TypeOutsideURL, URL: "http://a.b/c?x=1&y=<2>"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"url": "http://a.b/c?x=1&y=<2>"`)
}

func TestNewNode(t *testing.T) {
	got := NewNode("HtmlNode", StepFileName(3, "ht"), "Intro", "display")

	want := Node{
		Type:                "HtmlNode",
		Identifier:          "node_3.ht",
		Title:               "Intro",
		Ref:                 "node_3.ht",
		PreviousWorkNodeIDs: []string{},
		Links:               []string{},
		Class:               "display",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NewNode mismatch (-want +got):\n%s", diff)
	}

	data, err := Marshal(got)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"previousWorkNodeIds": []`)
	assert.Contains(t, string(data), `"links": []`)
}

func TestNewProject(t *testing.T) {
	nodes := []Node{NewNode("HtmlNode", "node_0.ht", "A", "display")}
	seqs := []Sequence{
		NewSequence(ActivitySequenceID(0), "First", []string{"node_0.ht"}),
		NewSequence(ActivitySequenceID(1), "Second", nil),
	}

	p := NewProject("Project", nodes, seqs)

	assert.True(t, p.AutoStep)
	assert.False(t, p.StepLevelNum)
	assert.Equal(t, "Step", p.StepTerm)
	assert.Equal(t, "master", p.StartPoint)
	assert.Empty(t, p.Constraints)
	require.Len(t, p.Sequences, 3)
	assert.Equal(t, Sequence{
		Type:       "sequence",
		Identifier: "master",
		Title:      "master",
		View:       "",
		Refs:       []string{"seq_0", "seq_1"},
	}, p.Sequences[0])
	assert.Equal(t, []string{}, p.Sequences[2].Refs)

	data, err := Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"constraints": []`)
}

func TestNewProjectWithoutActivities(t *testing.T) {
	p := NewProject("Empty", nil, nil)

	assert.Equal(t, []Node{}, p.Nodes)
	require.Len(t, p.Sequences, 1)
	assert.Equal(t, []string{}, p.Sequences[0].Refs)
}

func TestBrainstormDefaults(t *testing.T) {
	data, err := Marshal(NewBrainstorm("Discuss <b>this</b>"))
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"prompt": "Discuss <b>this</b>"`)
	assert.Contains(t, s, `"cannedResponses": []`)
	assert.Contains(t, s, `"useServer": true`)
	assert.NotContains(t, s, "responseDeclaration")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "project")

	files := []File{
		RawFile("node_0.html", "<p>hi</p>"),
		{Name: "node_0.ht", Content: []byte("{}")},
	}
	require.NoError(t, WriteFiles(files, dir))

	data, err := os.ReadFile(filepath.Join(dir, "node_0.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))

	err = WriteFiles([]File{RawFile("../evil.html", "x")}, dir)
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dir), "evil.html"))
}
