package convert

import (
	"context"

	"wise-migrator/internal/legacy"
	"wise-migrator/internal/wise4"
)

const (
	brainstormNodeType = "BrainstormNode"
	brainstormClass    = "brainstorm"
	brainstormExt      = "bs"
	discussionPrompt   = "parameters/prompt"

	matchSequenceNodeType = "MatchSequenceNode"
	matchSequenceClass    = "matchsequence"
	matchSequenceExt      = "ms"
	instructionsPath      = "parameters/instructions"

	tableNodeType = "TableNode"
	tableClass    = "table"
	tableExt      = "ta"

	dataGraphNodeType = "DataGraphNode"
	dataGraphClass    = "datatable"
	dataGraphExt      = "dg"

	outsideURLNodeType = "OutsideUrlNode"
	outsideURLClass    = "www"
	outsideURLExt      = "ou"
	urlPath            = "parameters/url"
)

// brainstorm converts discussion steps into an open response. The prompt
// is optional.
type brainstorm struct{}

func (brainstorm) Convert(_ context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	payload := wise4.NewBrainstorm(step.OptionalTextAt(discussionPrompt))

	return jsonOutput(brainstormNodeType, brainstormClass, brainstormExt, title, counter, payload)
}

type matchSequence struct{}

func (matchSequence) Convert(_ context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	prompt, err := requireText(step, instructionsPath)
	if err != nil {
		return nil, err
	}

	return jsonOutput(matchSequenceNodeType, matchSequenceClass, matchSequenceExt, title, counter,
		wise4.NewMatchSequence(prompt))
}

// table converts data collection steps into an empty table.
type table struct{}

func (table) Convert(_ context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	return jsonOutput(tableNodeType, tableClass, tableExt, title, counter, wise4.NewTable())
}

// dataGraph converts data collection steps into an empty graphing table.
type dataGraph struct{}

func (dataGraph) Convert(_ context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	return jsonOutput(dataGraphNodeType, dataGraphClass, dataGraphExt, title, counter, wise4.NewDataGraph())
}

type outsideURL struct{}

func (outsideURL) Convert(_ context.Context, step *legacy.Node, counter int) (*Output, error) {
	title, err := stepTitle(step)
	if err != nil {
		return nil, err
	}

	url, err := requireText(step, urlPath)
	if err != nil {
		return nil, err
	}

	payload := wise4.OutsideURL{Type: wise4.TypeOutsideURL, URL: url}

	return jsonOutput(outsideURLNodeType, outsideURLClass, outsideURLExt, title, counter, payload)
}
