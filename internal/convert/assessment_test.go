package convert

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wise-migrator/internal/qti"
	"wise-migrator/internal/steptype"
	"wise-migrator/internal/wise4"
)

const qtiNS = `xmlns="http://www.imsglobal.org/xsd/imsqti_v2p0"`

func assessmentStep(t *testing.T, title, decls, body string) string {
	t.Helper()

	item := `<assessmentItem ` + qtiNS + ` identifier="item" adaptive="false" timeDependent="false">` +
		decls + `<itemBody>` + body + `</itemBody></assessmentItem>`

	return `<step><title>` + title + `</title><parameters><asQTI>` + escapeXML(item) + `</asQTI></parameters></step>`
}

const (
	openDecl = `<responseDeclaration identifier="open" cardinality="single" baseType="string"/>`
	openBody = `<extendedTextInteraction responseIdentifier="open" placeholderText="">` +
		`<prompt>Why?</prompt></extendedTextInteraction>`

	pickDecl = `<responseDeclaration identifier="RESP1" cardinality="multiple" baseType="identifier">` +
		`<correctResponse><value>choice0|1</value></correctResponse></responseDeclaration>`
	pickBody = `<choiceInteraction responseIdentifier="RESP1" shuffle="false" maxChoices="2">` +
		`<prompt>Pick &lt;img src="http://wise.berkeley.edu/upload/1/q.gif"&gt;</prompt>` +
		`<simpleChoice identifier="choice0">A</simpleChoice>` +
		`<simpleChoice identifier="choice1">B</simpleChoice>` +
		`<simpleChoice identifier="choice2">  </simpleChoice>` +
		`</choiceInteraction>`
)

func TestNotesSingleQuestion(t *testing.T) {
	rw := &recordingRewriter{}
	c, ok := NewSelector(Deps{Rewriter: rw}).Select(steptype.Notes)
	require.True(t, ok)

	out, err := c.Convert(context.Background(), mustStep(t, assessmentStep(t, "Note", pickDecl, pickBody)), 5)
	require.NoError(t, err)

	assert.Equal(t, wise4.NewNode("NoteNode", "node_5.or", "Note", "note"), out.Node)

	payload := decodeFile(t, fileNamed(t, out, "node_5.or"))
	assert.Equal(t, "Note", payload["type"])

	item := payload["assessmentItem"].(map[string]any)
	interaction := item["interaction"].(map[string]any)
	assert.Len(t, interaction["choices"], 2)
	assert.Equal(t, `Pick <img src="assets/q.gif">`, interaction["prompt"])

	response := item["responseDeclaration"].(map[string]any)
	assert.Equal(t, []any{"choice0", "choice1"}, response["correctResponse"])
}

func TestNotesQuestionList(t *testing.T) {
	c, _ := NewSelector(Deps{}).Select(steptype.Notes)

	step := mustStep(t, assessmentStep(t, "List", openDecl+pickDecl, openBody+pickBody))
	out, err := c.Convert(context.Background(), step, 1)
	require.NoError(t, err)

	assert.Equal(t, wise4.NewNode("AssessmentListNode", "node_1.al", "List", "instantquiz"), out.Node)

	payload, ok := out.Payload.(wise4.AssessmentList)
	require.True(t, ok)
	require.Len(t, payload.Assessments, 2)
	assert.Equal(t, "AssessmentList", payload.Type)

	open, ok := payload.Assessments[0].(wise4.TextAssessment)
	require.True(t, ok)
	assert.Equal(t, "assessment0", open.ID)
	assert.Equal(t, wise4.Starter{Display: "0", Text: ""}, open.Starter)
}

func TestNotesWithoutQuestionsFails(t *testing.T) {
	c, _ := NewSelector(Deps{}).Select(steptype.Notes)

	_, err := c.Convert(context.Background(), mustStep(t, `<step><title>Empty</title></step>`), 0)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestSelfTestAlwaysProducesList(t *testing.T) {
	c, _ := NewSelector(Deps{}).Select(steptype.SelfTest)

	out, err := c.Convert(context.Background(), mustStep(t, assessmentStep(t, "Quiz", pickDecl, pickBody)), 2)
	require.NoError(t, err)

	assert.Equal(t, "node_2.al", out.Node.Identifier)
	payload, ok := out.Payload.(wise4.AssessmentList)
	require.True(t, ok)
	require.Len(t, payload.Assessments, 1)

	q, ok := payload.Assessments[0].(wise4.ChoiceAssessment)
	require.True(t, ok)
	assert.Equal(t, qti.DecodeCorrectResponse("choice0|1").Values(), q.CorrectResponse.(qti.CorrectResponse).Values())
}

func TestSelfTestMissingAttributeFails(t *testing.T) {
	c, _ := NewSelector(Deps{}).Select(steptype.SelfTest)

	body := `<choiceInteraction responseIdentifier="r" shuffle="false"/>`
	_, err := c.Convert(context.Background(), mustStep(t, assessmentStep(t, "Quiz", "", body)), 0)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestChallengeQuestion(t *testing.T) {
	c, _ := NewSelector(Deps{}).Select(steptype.ChallengeQuestion)

	decl := `<responseDeclaration identifier="RESP1"><correctResponse><value>choice1</value></correctResponse>` +
		`</responseDeclaration>`
	body := `<choiceInteraction responseIdentifier="RESP1" shuffle="true" maxChoices="1"><prompt>Q</prompt>` +
		`<simpleChoice identifier="choice0">A<feedbackInline>no</feedbackInline></simpleChoice>` +
		`<simpleChoice identifier="choice1">B<feedbackInline>yes</feedbackInline></simpleChoice>` +
		`</choiceInteraction>`

	out, err := c.Convert(context.Background(), mustStep(t, assessmentStep(t, "Challenge", decl, body)), 7)
	require.NoError(t, err)

	assert.Equal(t, wise4.NewNode("ChallengeNode", "node_7.ch", "Challenge", "multiplechoice"), out.Node)

	payload := decodeFile(t, fileNamed(t, out, "node_7.ch"))
	assert.Equal(t, "Challenge", payload["type"])

	item := payload["assessmentItem"].(map[string]any)
	assert.Equal(t, "RESP1", item["identifier"])
	assert.Equal(t, map[string]any{"correctResponse": []any{"choice1"}, "identifier": "RESP1"},
		item["responseDeclaration"])

	// Without inline feedback the step fails.
	_, err = c.Convert(context.Background(), mustStep(t, assessmentStep(t, "Challenge", decl, pickBody)), 7)
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestJournal(t *testing.T) {
	c, _ := NewSelector(Deps{}).Select(steptype.Journal)

	step := mustStep(t, `<step><title>Journal</title><parameters>`+
		`<prompt>First?</prompt><prompt>Second?</prompt></parameters></step>`)

	out, err := c.Convert(context.Background(), step, 0)
	require.NoError(t, err)

	payload := decodeFile(t, fileNamed(t, out, "node_0.al"))
	assert.Equal(t, true, payload["isMustCompleteAllPartsBeforeExit"])

	assessments := payload["assessments"].([]any)
	require.Len(t, assessments, 2)
	assert.Equal(t, map[string]any{
		"id":                      "assessment1",
		"type":                    "text",
		"prompt":                  "Second?",
		"isRichTextEditorAllowed": false,
		"starter":                 map[string]any{"display": float64(1), "text": ""},
	}, assessments[1])
}
