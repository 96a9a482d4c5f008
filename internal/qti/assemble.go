package qti

import (
	"errors"
	"fmt"

	"wise-migrator/internal/common"
	"wise-migrator/internal/legacy"
	"wise-migrator/internal/wise4"
)

// ErrUnsupported is returned when a document cannot take the requested shape.
var ErrUnsupported = errors.New("unsupported assessment")

// IsList reports whether doc assembles into a question list rather than a
// single question: it needs more than one interaction and more than one
// response.
func IsList(doc *Document) bool {
	return common.IsMultiple(doc.Interactions) && common.IsMultiple(doc.Responses)
}

// Single returns the interaction and the response of a one-question
// document. Either is nil unless it is the only one of its kind.
func (d *Document) Single() (*Interaction, *Response) {
	var (
		interaction *Interaction
		response    *Response
	)

	if common.IsSingle(d.Interactions) {
		interaction = &d.Interactions[0]
	}

	if common.IsSingle(d.Responses) {
		response = &d.Responses[0]
	}

	return interaction, response
}

// AssessmentID names the i-th question of a list.
func AssessmentID(i int) string {
	return fmt.Sprintf("assessment%d", i)
}

// BuildAssessmentList renders every interaction as a list question.
// Interaction i is answered by response i; a choice question without a
// response at its position fails.
func BuildAssessmentList(doc *Document) (wise4.AssessmentList, error) {
	assessments := make([]any, 0, len(doc.Interactions))

	for i, in := range doc.Interactions {
		id := AssessmentID(i)

		switch in.Kind {
		case KindText:
			assessments = append(assessments, wise4.TextAssessment{
				ID:                      id,
				Type:                    wise4.AssessmentText,
				Prompt:                  in.Prompt,
				IsRichTextEditorAllowed: "",
				Starter:                 wise4.Starter{Display: starterDisplay(in.PlaceholderText), Text: in.PlaceholderText},
			})
		case KindChoice:
			resp, ok := common.At(doc.Responses, i)
			if !ok {
				return wise4.AssessmentList{}, fmt.Errorf("%w: responseDeclaration for %s", legacy.ErrMissingField, id)
			}

			q := wise4.ChoiceAssessment{
				ID:      id,
				Type:    wise4.AssessmentRadio,
				Prompt:  in.Prompt,
				Choices: choices(in.Choices),
			}

			if resp.Correct != nil {
				q.CorrectResponse = *resp.Correct
			}

			assessments = append(assessments, q)
		default:
			return wise4.AssessmentList{}, fmt.Errorf("%w: interaction kind %s", ErrUnsupported, in.Kind)
		}
	}

	return wise4.NewAssessmentList(assessments), nil
}

// BuildNote renders a one-question document. The item attributes come from
// the first assessmentItem; interaction and response are empty objects
// unless there is exactly one of each.
func BuildNote(doc *Document) (wise4.Note, error) {
	item, ok := common.First(doc.Items)
	if !ok {
		return wise4.Note{}, fmt.Errorf("%w: assessmentItem", legacy.ErrMissingField)
	}

	identifier, err := item.Identifier()
	if err != nil {
		return wise4.Note{}, err
	}

	adaptive, err := item.Adaptive()
	if err != nil {
		return wise4.Note{}, err
	}

	timeDependent, err := item.TimeDependent()
	if err != nil {
		return wise4.Note{}, err
	}

	interaction, response := doc.Single()

	var (
		renderedInteraction any = wise4.EmptyObject()
		renderedResponse    any = wise4.EmptyObject()
		starter             any = wise4.EmptyObject()
	)

	if interaction != nil {
		renderedInteraction = noteInteraction(*interaction)

		if interaction.Kind == KindText {
			starter = wise4.StarterSentence{
				Display:  starterDisplay(interaction.PlaceholderText),
				Sentence: interaction.PlaceholderText,
			}
		}
	}

	if response != nil {
		decl := wise4.ResponseDeclaration{
			BaseType:    response.BaseType,
			Cardinality: response.Cardinality,
			Identifier:  response.Identifier,
		}
		if response.Correct != nil {
			decl.CorrectResponse = *response.Correct
		}

		renderedResponse = decl
	}

	return wise4.Note{
		AssessmentItem: wise4.AssessmentItem{
			Adaptive:            adaptive,
			Identifier:          identifier,
			Interaction:         renderedInteraction,
			ResponseDeclaration: renderedResponse,
			TimeDependent:       timeDependent,
		},
		IsRichTextEditorAllowed: false,
		StarterSentence:         starter,
		Type:                    wise4.TypeNote,
	}, nil
}

// BuildChallenge renders a document holding exactly one choice question.
// The item is named after the question's response identifier.
func BuildChallenge(doc *Document) (wise4.Challenge, error) {
	interaction, response := doc.Single()
	if interaction == nil {
		return wise4.Challenge{}, fmt.Errorf("%w: challenge needs one interaction, found %d",
			ErrUnsupported, len(doc.Interactions))
	}

	if interaction.Kind != KindChoice {
		return wise4.Challenge{}, fmt.Errorf("%w: challenge needs a choice interaction, found %s",
			ErrUnsupported, interaction.Kind)
	}

	options := make([]wise4.ChallengeChoice, 0, len(interaction.Choices))
	for _, c := range interaction.Choices {
		var feedback string
		if c.Feedback != nil {
			feedback = *c.Feedback
		}

		options = append(options, wise4.ChallengeChoice{
			Feedback:   feedback,
			Fixed:      true,
			Identifier: c.Identifier,
			Text:       c.Text,
		})
	}

	var decl any = wise4.EmptyObject()
	if response != nil {
		key := wise4.ChallengeResponse{CorrectResponse: []string{}, Identifier: response.Identifier}
		if response.Correct != nil {
			key.CorrectResponse = response.Correct.Values()
		}

		decl = key
	}

	return wise4.Challenge{
		AssessmentItem: wise4.AssessmentItem{
			Identifier: interaction.ResponseIdentifier,
			Interaction: wise4.ChallengeInteraction{
				Attempts:           wise4.Attempts{NavigateTo: "", Scores: wise4.EmptyObject()},
				Choices:            options,
				HasInlineFeedback:  true,
				MaxChoices:         interaction.MaxChoices,
				Prompt:             interaction.Prompt,
				ResponseIdentifier: interaction.ResponseIdentifier,
				Shuffle:            interaction.Shuffle,
			},
			ResponseDeclaration: decl,
		},
		Type: wise4.TypeChallenge,
	}, nil
}

func noteInteraction(in Interaction) any {
	if in.Kind == KindChoice {
		return wise4.ChoiceInteraction{
			Choices:            choices(in.Choices),
			MaxChoices:         in.MaxChoices,
			Prompt:             in.Prompt,
			ResponseIdentifier: in.ResponseIdentifier,
			Shuffle:            in.Shuffle,
			Type:               wise4.AssessmentRadio,
		}
	}

	return wise4.TextInteraction{
		ExpectedLines:      in.ExpectedLines,
		HasInlineFeedback:  false,
		PlaceholderText:    in.PlaceholderText,
		Prompt:             in.Prompt,
		ResponseIdentifier: in.ResponseIdentifier,
		Type:               wise4.AssessmentText,
	}
}

func choices(in []Choice) []wise4.Choice {
	out := make([]wise4.Choice, 0, len(in))
	for _, c := range in {
		out = append(out, wise4.Choice{ID: c.Identifier, Text: c.Text, Feedback: c.Feedback})
	}

	return out
}

// starterDisplay is "0" for a blank starter and "2" otherwise.
func starterDisplay(text string) string {
	if common.IsBlank(text) {
		return "0"
	}

	return "2"
}
