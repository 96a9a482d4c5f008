package convert

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wise-migrator/internal/steptype"
	"wise-migrator/internal/wise4"
)

func TestJSONStepConverters(t *testing.T) {
	tests := []struct {
		name     string
		typ      steptype.Type
		deps     Deps
		step     string
		wantNode wise4.Node
		wantBody any
	}{
		{
			name:     "discussion",
			typ:      steptype.DiscussionForum,
			step:     `<step><title>Talk</title><parameters><prompt>Discuss</prompt></parameters></step>`,
			wantNode: wise4.NewNode("BrainstormNode", "node_1.bs", "Talk", "brainstorm"),
			wantBody: wise4.NewBrainstorm("Discuss"),
		},
		{
			name:     "discussion without prompt",
			typ:      steptype.Brainstorm,
			step:     `<step><title>Talk</title></step>`,
			wantNode: wise4.NewNode("BrainstormNode", "node_1.bs", "Talk", "brainstorm"),
			wantBody: wise4.NewBrainstorm(""),
		},
		{
			name:     "sensemaker",
			typ:      steptype.Sensemaker,
			step:     `<step><title>Sort</title><parameters><instructions>Match them</instructions></parameters></step>`,
			wantNode: wise4.NewNode("MatchSequenceNode", "node_1.ms", "Sort", "matchsequence"),
			wantBody: wise4.NewMatchSequence("Match them"),
		},
		{
			name:     "table",
			typ:      steptype.Table,
			step:     `<step><title>Data</title></step>`,
			wantNode: wise4.NewNode("TableNode", "node_1.ta", "Data", "table"),
			wantBody: wise4.NewTable(),
		},
		{
			name:     "data graph",
			typ:      steptype.DataGrid,
			deps:     Deps{DataGraph: true},
			step:     `<step><title>Data</title></step>`,
			wantNode: wise4.NewNode("DataGraphNode", "node_1.dg", "Data", "datatable"),
			wantBody: wise4.NewDataGraph(),
		},
		{
			name:     "outside url",
			typ:      steptype.OutsideURL,
			step:     `<step><title>Web</title><parameters><url>http://example.com/a?b=c&amp;d</url></parameters></step>`,
			wantNode: wise4.NewNode("OutsideUrlNode", "node_1.ou", "Web", "www"),
			wantBody: wise4.OutsideURL{Type: "OutsideUrl", URL: "http://example.com/a?b=c&d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := NewSelector(tt.deps).Select(tt.typ)
			require.True(t, ok)

			out, err := c.Convert(context.Background(), mustStep(t, tt.step), 1)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.wantNode, out.Node); diff != "" {
				t.Errorf("node mismatch (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.wantBody, out.Payload); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}

			require.Len(t, out.Files, 1)
			want, err := wise4.Marshal(tt.wantBody)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(out.Files[0].Content))
		})
	}
}

func TestJSONStepConvertersMissingFields(t *testing.T) {
	tests := []struct {
		name string
		typ  steptype.Type
		step string
	}{
		{name: "no title", typ: steptype.Table, step: `<step/>`},
		{name: "sensemaker without instructions", typ: steptype.Sensemaker, step: `<step><title>x</title></step>`},
		{name: "outside url without url", typ: steptype.OutsideURL, step: `<step><title>x</title></step>`},
		{name: "drawing without prompt", typ: steptype.Wisedraw2, step: `<step><title>x</title></step>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := NewSelector(Deps{}).Select(tt.typ)
			require.True(t, ok)

			out, err := c.Convert(context.Background(), mustStep(t, tt.step), 0)
			require.ErrorIs(t, err, ErrMissingField)
			assert.Nil(t, out)
		})
	}
}
