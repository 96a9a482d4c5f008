package convert

import (
	"context"
	"fmt"

	"wise-migrator/internal/legacy"
	"wise-migrator/internal/qti"
	"wise-migrator/internal/wise4"
)

// Assessment node constants.
const (
	assessmentListNodeType = "AssessmentListNode"
	assessmentListClass    = "instantquiz"
	assessmentListExt      = "al"

	noteNodeType = "NoteNode"
	noteClass    = "note"
	noteExt      = "or"

	challengeNodeType = "ChallengeNode"
	challengeClass    = "multiplechoice"
	challengeExt      = "ch"

	journalPromptPath = "parameters/prompt"
)

// assessmentList converts every question of the step into a list.
type assessmentList struct {
	parser *qti.Parser
}

func (c *assessmentList) Convert(ctx context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	doc, err := c.parser.ParseStep(ctx, step)
	if err != nil {
		return nil, err
	}

	payload, err := qti.BuildAssessmentList(doc)
	if err != nil {
		return nil, err
	}

	return jsonOutput(assessmentListNodeType, assessmentListClass, assessmentListExt, title, counter, payload)
}

// notes converts a single question into a Note, several into a list.
type notes struct {
	parser *qti.Parser
}

func (c *notes) Convert(ctx context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	doc, err := c.parser.ParseStep(ctx, step)
	if err != nil {
		return nil, err
	}

	if qti.IsList(doc) {
		payload, err := qti.BuildAssessmentList(doc)
		if err != nil {
			return nil, err
		}

		return jsonOutput(assessmentListNodeType, assessmentListClass, assessmentListExt, title, counter, payload)
	}

	payload, err := qti.BuildNote(doc)
	if err != nil {
		return nil, err
	}

	return jsonOutput(noteNodeType, noteClass, noteExt, title, counter, payload)
}

// challenge converts a single choice question with inline feedback.
type challenge struct {
	parser *qti.Parser
}

func (c *challenge) Convert(ctx context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	doc, err := c.parser.ParseStep(ctx, step)
	if err != nil {
		return nil, err
	}

	payload, err := qti.BuildChallenge(doc)
	if err != nil {
		return nil, fmt.Errorf("building challenge: %w", err)
	}

	return jsonOutput(challengeNodeType, challengeClass, challengeExt, title, counter, payload)
}

// journal asks one open question per prompt and requires all of them.
type journal struct{}

func (journal) Convert(_ context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	prompts := step.SelectNodes(journalPromptPath)
	assessments := make([]any, 0, len(prompts))

	for i, p := range prompts {
		assessments = append(assessments, wise4.TextAssessment{
			ID:                      qti.AssessmentID(i),
			Type:                    wise4.AssessmentText,
			Prompt:                  p.Text(),
			IsRichTextEditorAllowed: false,
			Starter:                 wise4.Starter{Display: 1, Text: ""},
		})
	}

	payload := wise4.NewAssessmentList(assessments)
	payload.IsMustCompleteAllPartsBeforeExit = true

	return jsonOutput(assessmentListNodeType, assessmentListClass, assessmentListExt, title, counter, payload)
}
