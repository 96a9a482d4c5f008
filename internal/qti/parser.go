package qti

import (
	"context"
	"fmt"

	"wise-migrator/internal/common"
	"wise-migrator/internal/legacy"
)

// Path of the QTI markup inside a legacy step.
const StepPath = "parameters/asQTI"

// Rewriter rewrites references inside prompt and choice markup.
type Rewriter interface {
	Rewrite(ctx context.Context, text string) string
}

// Parser reads QTI markup under a profile.
type Parser struct {
	profile  Profile
	rewriter Rewriter
}

// NewParser creates a Parser. A nil rewriter leaves text untouched.
func NewParser(profile Profile, rewriter Rewriter) *Parser {
	return &Parser{profile: profile, rewriter: rewriter}
}

// ParseStep parses the QTI markup held by a legacy step. A step without
// markup yields an empty Document.
func (p *Parser) ParseStep(ctx context.Context, step *legacy.Node) (*Document, error) {
	return p.Parse(ctx, step.OptionalTextAt(StepPath))
}

// Parse parses a QTI document. Markup that cannot be read yields an empty
// Document and no error.
func (p *Parser) Parse(ctx context.Context, markup string) (*Document, error) {
	doc := &Document{}

	root, err := legacy.ParseString(markup)
	if err != nil {
		return doc, nil
	}

	for _, itemNode := range root.Descendants(Namespace, "assessmentItem") {
		doc.Items = append(doc.Items, Item{node: itemNode})
	}

	for _, item := range doc.Items {
		interactions, err := p.parseInteractions(ctx, item.node)
		if err != nil {
			return nil, err
		}

		doc.Interactions = append(doc.Interactions, interactions...)
	}

	for _, item := range doc.Items {
		for _, decl := range item.node.ChildrenNamed("responseDeclaration") {
			resp, err := p.parseResponse(decl)
			if err != nil {
				return nil, err
			}

			doc.Responses = append(doc.Responses, resp)
		}
	}

	return doc, nil
}

func (p *Parser) parseInteractions(ctx context.Context, item *legacy.Node) ([]Interaction, error) {
	var out []Interaction

	for _, body := range item.ChildrenNamed("itemBody") {
		for _, child := range body.Children() {
			var (
				interaction Interaction
				err         error
			)

			switch child.Name() {
			case "extendedTextInteraction":
				interaction, err = p.parseTextInteraction(ctx, child)
			case "choiceInteraction":
				interaction, err = p.parseChoiceInteraction(ctx, child)
			default:
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", child.Name(), err)
			}

			out = append(out, interaction)
		}
	}

	return out, nil
}

func (p *Parser) parseTextInteraction(ctx context.Context, el *legacy.Node) (Interaction, error) {
	responseID, err := el.RequireAttr("responseIdentifier")
	if err != nil {
		return Interaction{}, err
	}

	placeholder, err := el.RequireAttr("placeholderText")
	if err != nil {
		return Interaction{}, err
	}

	expectedLines, _ := el.Attr("expectedLines")

	return Interaction{
		Kind:               KindText,
		ResponseIdentifier: responseID,
		Prompt:             p.rewrite(ctx, prompt(el)),
		PlaceholderText:    placeholder,
		ExpectedLines:      expectedLines,
	}, nil
}

func (p *Parser) parseChoiceInteraction(ctx context.Context, el *legacy.Node) (Interaction, error) {
	responseID, err := el.RequireAttr("responseIdentifier")
	if err != nil {
		return Interaction{}, err
	}

	shuffle, err := el.RequireAttr("shuffle")
	if err != nil {
		return Interaction{}, err
	}

	maxChoices, err := el.RequireAttr("maxChoices")
	if err != nil {
		return Interaction{}, err
	}

	choices, err := p.parseChoices(ctx, el)
	if err != nil {
		return Interaction{}, err
	}

	return Interaction{
		Kind:               KindChoice,
		ResponseIdentifier: responseID,
		Prompt:             p.rewrite(ctx, prompt(el)),
		Shuffle:            shuffle,
		MaxChoices:         maxChoices,
		Choices:            choices,
	}, nil
}

func (p *Parser) parseChoices(ctx context.Context, el *legacy.Node) ([]Choice, error) {
	var out []Choice

	for _, sc := range el.ChildrenNamed("simpleChoice") {
		id, err := sc.RequireAttr("identifier")
		if err != nil {
			return nil, err
		}

		choice := Choice{Identifier: id, Text: sc.Text()}

		if fb := sc.Child("feedbackInline"); fb != nil {
			text := fb.Text()
			choice.Feedback = &text
		} else if p.profile == Challenge {
			return nil, fmt.Errorf("%w: feedbackInline of choice %s", legacy.ErrMissingField, id)
		}

		if common.IsBlank(choice.Text) {
			continue
		}

		choice.Text = p.rewrite(ctx, choice.Text)
		out = append(out, choice)
	}

	return out, nil
}

func (p *Parser) parseResponse(decl *legacy.Node) (Response, error) {
	id, err := decl.RequireAttr("identifier")
	if err != nil {
		return Response{}, fmt.Errorf("parsing responseDeclaration: %w", err)
	}

	resp := Response{Identifier: id}

	if p.profile == Standard {
		if resp.Cardinality, err = decl.RequireAttr("cardinality"); err != nil {
			return Response{}, fmt.Errorf("parsing responseDeclaration %s: %w", id, err)
		}

		if resp.BaseType, err = decl.RequireAttr("baseType"); err != nil {
			return Response{}, fmt.Errorf("parsing responseDeclaration %s: %w", id, err)
		}
	}

	var value *legacy.Node
	if correct := decl.Child("correctResponse"); correct != nil {
		value = correct.Child("value")
	}

	switch {
	case value != nil:
		decoded := DecodeCorrectResponse(value.Text())
		resp.Correct = &decoded
	case p.profile == Challenge:
		return Response{}, fmt.Errorf("%w: correctResponse/value of %s", legacy.ErrMissingField, id)
	}

	return resp, nil
}

func (p *Parser) rewrite(ctx context.Context, text string) string {
	if p.rewriter == nil {
		return text
	}

	return p.rewriter.Rewrite(ctx, text)
}

// prompt returns the text of the last prompt child, or "".
func prompt(el *legacy.Node) string {
	var out string

	for _, pr := range el.ChildrenNamed("prompt") {
		out = pr.Text()
	}

	return out
}
