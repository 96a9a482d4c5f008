package wise4

// Payload type discriminators.
const (
	TypeHTML           = "Html"
	TypeAssessmentList = "AssessmentList"
	TypeNote           = "Note"
	TypeBrainstorm     = "Brainstorm"
	TypeChallenge      = "Challenge"
	TypeMatchSequence  = "MatchSequence"
	TypeSVGDraw        = "SVGDraw"
	TypeTable          = "Table"
	TypeDataGraph      = "DataGraph"
	TypeOutsideURL     = "OutsideUrl"
)

// Assessment type discriminators used inside an AssessmentList.
const (
	AssessmentText  = "text"
	AssessmentRadio = "radio"
)

// HTMLStep is the .ht wrapper pointing at a rendered .html page.
type HTMLStep struct {
	Src   string   `json:"src"`
	Type  string   `json:"type"`
	Hints []string `json:"hints"`
}

// AssessmentList is a multi-question step.
type AssessmentList struct {
	Assessments                      []any  `json:"assessments"`
	DisplayAnswerAfterSubmit         bool   `json:"displayAnswerAfterSubmit"`
	IsLockAfterSubmit                bool   `json:"isLockAfterSubmit"`
	IsMustCompleteAllPartsBeforeExit bool   `json:"isMustCompleteAllPartsBeforeExit"`
	Prompt                           string `json:"prompt"`
	Type                             string `json:"type"`
}

// NewAssessmentList returns a list with the default flags set.
func NewAssessmentList(assessments []any) AssessmentList {
	if assessments == nil {
		assessments = []any{}
	}

	return AssessmentList{
		Assessments:              assessments,
		DisplayAnswerAfterSubmit: true,
		Prompt:                   "",
		Type:                     TypeAssessmentList,
	}
}

// Starter is the starter sentence of a text assessment. Display is either a
// string code ("0", "2") or a number depending on where the list came from.
type Starter struct {
	Display any    `json:"display"`
	Text    string `json:"text"`
}

// TextAssessment is an open text question of an AssessmentList.
type TextAssessment struct {
	ID                      string  `json:"id"`
	Type                    string  `json:"type"`
	Prompt                  string  `json:"prompt"`
	IsRichTextEditorAllowed any     `json:"isRichTextEditorAllowed"`
	Starter                 Starter `json:"starter"`
}

// ChoiceAssessment is a multiple choice question of an AssessmentList.
type ChoiceAssessment struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Prompt          string   `json:"prompt"`
	Choices         []Choice `json:"choices"`
	CorrectResponse any      `json:"correctResponse,omitempty"`
}

// Choice is one option of a choice question.
type Choice struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Feedback *string `json:"feedback,omitempty"`
}

// AssessmentItem holds one question together with its answer key.
// Interaction and ResponseDeclaration are omitted when nil.
type AssessmentItem struct {
	Adaptive            bool   `json:"adaptive"`
	Identifier          string `json:"identifier"`
	Interaction         any    `json:"interaction"`
	ResponseDeclaration any    `json:"responseDeclaration,omitempty"`
	TimeDependent       bool   `json:"timeDependent"`
}

// TextInteraction is an open text interaction inside an AssessmentItem.
type TextInteraction struct {
	ExpectedLines      string `json:"expectedLines"`
	HasInlineFeedback  bool   `json:"hasInlineFeedback"`
	PlaceholderText    string `json:"placeholderText"`
	Prompt             string `json:"prompt"`
	ResponseIdentifier string `json:"responseIdentifier"`
	Type               string `json:"type"`
}

// ChoiceInteraction is a choice interaction inside an AssessmentItem.
type ChoiceInteraction struct {
	Choices            []Choice `json:"choices"`
	MaxChoices         string   `json:"maxChoices"`
	Prompt             string   `json:"prompt"`
	ResponseIdentifier string   `json:"responseIdentifier"`
	Shuffle            string   `json:"shuffle"`
	Type               string   `json:"type"`
}

// ResponseDeclaration is the answer key of an interaction.
type ResponseDeclaration struct {
	BaseType        string `json:"baseType"`
	Cardinality     string `json:"cardinality"`
	CorrectResponse any    `json:"correctResponse,omitempty"`
	Identifier      string `json:"identifier"`
}

// StarterSentence is the starter of a Note.
type StarterSentence struct {
	Display  string `json:"display"`
	Sentence string `json:"sentence"`
}

// Note is a single-question step. StarterSentence is an empty object
// unless the question is an open text one.
type Note struct {
	AssessmentItem          AssessmentItem `json:"assessmentItem"`
	IsRichTextEditorAllowed bool           `json:"isRichTextEditorAllowed"`
	StarterSentence         any            `json:"starterSentence"`
	Type                    string         `json:"type"`
}

// BrainstormInteraction is the open prompt of a Brainstorm.
type BrainstormInteraction struct {
	ExpectedLines      string `json:"expectedLines"`
	Prompt             string `json:"prompt"`
	ResponseIdentifier string `json:"responseIdentifier"`
}

// Brainstorm is a discussion step.
type Brainstorm struct {
	AssessmentItem          AssessmentItem  `json:"assessmentItem"`
	CannedResponses         []any           `json:"cannedResponses"`
	DisplayName             string          `json:"displayName"`
	IsGated                 bool            `json:"isGated"`
	IsInstantPollActive     bool            `json:"isInstantPollActive"`
	IsPollEnded             bool            `json:"isPollEnded"`
	IsRichTextEditorAllowed bool            `json:"isRichTextEditorAllowed"`
	StarterSentence         StarterSentence `json:"starterSentence"`
	Title                   string          `json:"title"`
	Type                    string          `json:"type"`
	UseServer               bool            `json:"useServer"`
}

// BrainstormIdentifier names both the item and the response of a Brainstorm.
const BrainstormIdentifier = "Brainstorm"

// NewBrainstorm returns the open response payload for prompt.
func NewBrainstorm(prompt string) Brainstorm {
	return Brainstorm{
		AssessmentItem: AssessmentItem{
			Identifier: BrainstormIdentifier,
			Interaction: BrainstormInteraction{
				ExpectedLines:      "0",
				Prompt:             prompt,
				ResponseIdentifier: BrainstormIdentifier,
			},
		},
		CannedResponses: []any{},
		DisplayName:     "0",
		IsGated:         true,
		StarterSentence: StarterSentence{Display: "0", Sentence: ""},
		Title:           "",
		Type:            TypeBrainstorm,
		UseServer:       true,
	}
}

// Attempts configures retries of a Challenge.
type Attempts struct {
	NavigateTo string `json:"navigateTo"`
	Scores     Object `json:"scores"`
}

// ChallengeChoice is one option of a Challenge question.
type ChallengeChoice struct {
	Feedback   string `json:"feedback"`
	Fixed      bool   `json:"fixed"`
	Identifier string `json:"identifier"`
	Text       string `json:"text"`
}

// ChallengeInteraction is the question of a Challenge.
type ChallengeInteraction struct {
	Attempts           Attempts          `json:"attempts"`
	Choices            []ChallengeChoice `json:"choices"`
	HasInlineFeedback  bool              `json:"hasInlineFeedback"`
	MaxChoices         string            `json:"maxChoices"`
	Prompt             string            `json:"prompt"`
	ResponseIdentifier string            `json:"responseIdentifier"`
	Shuffle            string            `json:"shuffle"`
}

// ChallengeResponse is the answer key of a Challenge.
type ChallengeResponse struct {
	CorrectResponse []string `json:"correctResponse"`
	Identifier      string   `json:"identifier"`
}

// Challenge is a multiple choice question with inline feedback.
type Challenge struct {
	AssessmentItem AssessmentItem `json:"assessmentItem"`
	Type           string         `json:"type"`
}

// MatchSequenceIdentifier names both the item and the response of a MatchSequence.
const MatchSequenceIdentifier = "MatchSequence"

// MatchSequenceInteraction is the (initially empty) matching exercise.
type MatchSequenceInteraction struct {
	Choices            []any  `json:"choices"`
	Fields             []any  `json:"fields"`
	HasInlineFeedback  bool   `json:"hasInlineFeedback"`
	Ordered            bool   `json:"ordered"`
	Prompt             string `json:"prompt"`
	ResponseIdentifier string `json:"responseIdentifier"`
	Shuffle            bool   `json:"shuffle"`
}

// MatchSequenceResponse is the (initially empty) answer key.
type MatchSequenceResponse struct {
	CorrectResponses []any  `json:"correctResponses"`
	Identifier       string `json:"identifier"`
}

// MatchSequence is a matching step.
type MatchSequence struct {
	AssessmentItem AssessmentItem `json:"assessmentItem"`
	Type           string         `json:"type"`
}

// NewMatchSequence returns an empty matching exercise with prompt.
func NewMatchSequence(prompt string) MatchSequence {
	return MatchSequence{
		AssessmentItem: AssessmentItem{
			Identifier: MatchSequenceIdentifier,
			Interaction: MatchSequenceInteraction{
				Choices:            []any{},
				Fields:             []any{},
				HasInlineFeedback:  true,
				Prompt:             prompt,
				ResponseIdentifier: MatchSequenceIdentifier,
				Shuffle:            true,
			},
			ResponseDeclaration: MatchSequenceResponse{
				CorrectResponses: []any{},
				Identifier:       MatchSequenceIdentifier,
			},
		},
		Type: TypeMatchSequence,
	}
}

// Stamp is an image students can place on a drawing.
type Stamp struct {
	Title  string `json:"title"`
	URI    string `json:"uri"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// SVGDraw is a drawing step.
type SVGDraw struct {
	DescriptionActive  bool    `json:"description_active"`
	DescriptionDefault string  `json:"description_default"`
	Prompt             string  `json:"prompt"`
	SnapshotsActive    bool    `json:"snapshots_active"`
	Stamps             []Stamp `json:"stamps"`
	SVGBackground      string  `json:"svg_background"`
	Type               string  `json:"type"`
}

// Table is an empty data table step.
type Table struct {
	NumColumns int    `json:"numColumns"`
	NumRows    int    `json:"numRows"`
	Prompt     string `json:"prompt"`
	TableData  []any  `json:"tableData"`
	Type       string `json:"type"`
}

// NewTable returns an empty table.
func NewTable() Table {
	return Table{TableData: []any{}, Type: TypeTable}
}

// DataGraphDisplay selects what a DataGraph shows first.
type DataGraphDisplay struct {
	Start string `json:"start"`
	Which string `json:"which"`
}

// DataGraphGraph toggles the available graph kinds.
type DataGraphGraph struct {
	Bar       bool `json:"bar"`
	Line      bool `json:"line"`
	LinePoint bool `json:"linePoint"`
	Point     bool `json:"point"`
	Range     bool `json:"range"`
}

// DataGraphOptions groups display and graph settings.
type DataGraphOptions struct {
	Display DataGraphDisplay `json:"display"`
	Graph   DataGraphGraph   `json:"graph"`
}

// DataGraphTable is the table backing a DataGraph.
type DataGraphTable struct {
	GraphHeight      int    `json:"graphHeight"`
	GraphWidth       int    `json:"graphWidth"`
	IndependentIndex int    `json:"independentIndex"`
	IsQualitative    bool   `json:"isQualitative"`
	Rows             []any  `json:"rows"`
	Title            string `json:"title"`
	TitleEditable    bool   `json:"titleEditable"`
	TitleIndex       int    `json:"titleIndex"`
	XLabel           string `json:"xLabel"`
	XLabelEditable   bool   `json:"xLabelEditable"`
	YLabel           string `json:"yLabel"`
	YLabelEditable   bool   `json:"yLabelEditable"`
}

// DataGraph is a table with graphing.
type DataGraph struct {
	Options DataGraphOptions `json:"options"`
	Prompt  string           `json:"prompt"`
	Table   DataGraphTable   `json:"table"`
	Type    string           `json:"type"`
}

// NewDataGraph returns an empty data graph with every graph kind enabled.
func NewDataGraph() DataGraph {
	return DataGraph{
		Options: DataGraphOptions{
			Display: DataGraphDisplay{Start: "0", Which: "2"},
			Graph:   DataGraphGraph{Bar: true, Line: true, LinePoint: true, Point: true, Range: true},
		},
		Table: DataGraphTable{
			GraphHeight:      573,
			GraphWidth:       800,
			IndependentIndex: -1,
			Rows:             []any{},
			TitleEditable:    true,
			TitleIndex:       -1,
			XLabelEditable:   true,
			YLabelEditable:   true,
		},
		Type: TypeDataGraph,
	}
}

// OutsideURL is a link to an external page.
type OutsideURL struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}
