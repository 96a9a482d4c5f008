package convert

import (
	"go.uber.org/zap"

	"wise-migrator/internal/qti"
	"wise-migrator/internal/steptype"
)

// Deps are the collaborators converters need.
type Deps struct {
	// Rewriter localizes images in page and question markup. Nil leaves
	// markup untouched.
	Rewriter Rewriter
	// Prober measures drawing stamps and backgrounds. Nil drops them.
	Prober Prober
	// ProjectID is passed to Pedagogica launch pages.
	ProjectID string
	// LaunchBaseURL overrides DefaultLaunchBaseURL.
	LaunchBaseURL string
	// DataGraph converts data grids and tables into graphing tables.
	DataGraph bool
	Logger    *zap.Logger
}

// Selector picks the converter for a resolved step type.
type Selector struct {
	displayPage Converter
	evidence    Converter
	alerts      Converter
	bookmarks   Converter
	otrunk      Converter
	concord     Converter
	selfTest    Converter
	notes       Converter
	journal     Converter
	brainstorm  Converter
	challenge   Converter
	sensemaker  Converter
	draw        Converter
	table       Converter
	outsideURL  Converter
}

// NewSelector creates a Selector sharing deps among its converters.
func NewSelector(deps Deps) *Selector {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var tableConverter Converter = table{}
	if deps.DataGraph {
		tableConverter = dataGraph{}
	}

	return &Selector{
		displayPage: &htmlPage{class: classDisplay, source: paramSource{path: "parameters/html", rewriter: deps.Rewriter}},
		evidence:    &htmlPage{class: classLesson, source: paramSource{path: "parameters/body", rewriter: deps.Rewriter}},
		alerts:      &htmlPage{class: classDisplay, source: paramSource{path: "parameters/alertText", rewriter: deps.Rewriter}},
		bookmarks:   &htmlPage{class: classDisplay, source: bookmarksSource{}},
		otrunk:      &htmlPage{class: classLesson, source: jnlpSource{}},
		concord: &htmlPage{
			class:  classLesson,
			source: concordSource{projectID: deps.ProjectID, baseURL: deps.LaunchBaseURL},
		},
		selfTest:   &assessmentList{parser: qti.NewParser(qti.Standard, deps.Rewriter)},
		notes:      &notes{parser: qti.NewParser(qti.Standard, deps.Rewriter)},
		journal:    journal{},
		brainstorm: brainstorm{},
		challenge:  &challenge{parser: qti.NewParser(qti.Challenge, deps.Rewriter)},
		sensemaker: matchSequence{},
		draw:       &svgDraw{prober: deps.Prober, logger: logger},
		table:      tableConverter,
		outsideURL: outsideURL{},
	}
}

// Select returns the converter for t. It reports false for types that have
// no converter.
func (s *Selector) Select(t steptype.Type) (Converter, bool) {
	switch t {
	case steptype.DisplayPage:
		return s.displayPage, true
	case steptype.Evidence:
		return s.evidence, true
	case steptype.Alerts:
		return s.alerts, true
	case steptype.Bookmarks:
		return s.bookmarks, true
	case steptype.OTrunk, steptype.OTrunkModel, steptype.OTrunkDIY:
		return s.otrunk, true
	case steptype.ConcordModelSaveJar:
		return s.concord, true
	case steptype.StudentAssessment, steptype.SelfTest:
		return s.selfTest, true
	case steptype.Notes:
		return s.notes, true
	case steptype.Journal:
		return s.journal, true
	case steptype.Discussion, steptype.DiscussionForum, steptype.Brainstorm:
		return s.brainstorm, true
	case steptype.ChallengeQuestion:
		return s.challenge, true
	case steptype.Sensemaker:
		return s.sensemaker, true
	case steptype.Wisedraw2:
		return s.draw, true
	case steptype.DataGrid, steptype.Table:
		return s.table, true
	case steptype.OutsideURL:
		return s.outsideURL, true
	case steptype.Unspecified, steptype.Unrecognized,
		steptype.ShowAllWork, steptype.GraphData,
		steptype.PrincipleMakerStep1, steptype.PrincipleMakerStep2, steptype.PrincipleMakerStep3:
		return nil, false
	default:
		return nil, false
	}
}
