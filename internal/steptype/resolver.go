package steptype

import (
	"fmt"
	"strings"

	"wise-migrator/internal/legacy"
)

// Field paths read from a <step> element.
const (
	typePath          = "type"
	authoringURLPath  = "authoringURL"
	urlPath           = "url"
	otherDataPath     = "otherData"
	otrunkStepMarker  = "otrunk-wise-step"
	spreadsheetMarker = "SSStudent.php"
	selfTestMarker    = "SelfTest"
)

// authoringRule maps an authoringURL substring to a type.
type authoringRule struct {
	substr string
	typ    Type
}

// authoringRules are tried in order after the OTrunk check.
var authoringRules = []authoringRule{
	{"Discussion", DiscussionForum},
	{"allWork", ShowAllWork},
	{"SelfTest", SelfTest},
	{"Brainstorm", Brainstorm},
	{"GraphData", GraphData},
	{"Journal", Journal},
	{"psdDemoModeI", PrincipleMakerStep1},
	{"discussionModeI", PrincipleMakerStep2},
	{"exPsdDemoMode", PrincipleMakerStep3},
}

// Resolve determines the semantic type of a step.
//
// It only fails when an OTrunk authoring step has no otherData element to
// tell its variant apart; every other outcome, including Unspecified, is a
// valid resolution.
func Resolve(step *legacy.Node) (Resolution, error) {
	res, err := resolveCandidate(step)
	if err != nil {
		return Resolution{Type: Unspecified}, err
	}

	// Generic outside-link steps were reused to host self tests.
	if res.Type == OutsideURL &&
		strings.Contains(step.OptionalTextAt(authoringURLPath), selfTestMarker) {
		res = Resolution{Type: SelfTest, Raw: SelfTest.String()}
	}

	return res, nil
}

func resolveCandidate(step *legacy.Node) (Resolution, error) {
	if explicit := step.OptionalTextAt(typePath); explicit != "" && explicit != Unspecified.String() {
		return explicitResolution(explicit), nil
	}

	t, err := inferType(step)
	if err != nil {
		return Resolution{}, err
	}

	return Resolution{Type: t, Raw: t.String()}, nil
}

func explicitResolution(raw string) Resolution {
	t, ok := Parse(raw)
	if !ok {
		return Resolution{Type: Unrecognized, Raw: raw}
	}

	return Resolution{Type: t, Raw: raw}
}

// inferType applies the authoringURL heuristics.
func inferType(step *legacy.Node) (Type, error) {
	authoringURL := step.OptionalTextAt(authoringURLPath)

	if strings.Contains(authoringURL, otrunkStepMarker) {
		diyType, err := step.TextAt(otherDataPath)
		if err != nil {
			return Unspecified, fmt.Errorf("resolving otrunk step variant: %w", err)
		}

		switch diyType {
		case "otrunk":
			return OTrunk, nil
		case "model":
			return OTrunkModel, nil
		default:
			return OTrunkDIY, nil
		}
	}

	for _, rule := range authoringRules {
		if strings.Contains(authoringURL, rule.substr) {
			return rule.typ, nil
		}
	}

	if strings.Contains(step.OptionalTextAt(urlPath), spreadsheetMarker) {
		return Table, nil
	}

	return Unspecified, nil
}
