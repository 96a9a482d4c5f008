package qti

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"wise-migrator/internal/legacy"
)

// Namespace is the QTI 2.0 namespace assessment items must belong to.
const Namespace = "http://www.imsglobal.org/xsd/imsqti_v2p0"

//go:generate go tool stringer -type=Profile -linecomment -output=profile_string.go

// Profile selects which attributes are required.
type Profile int

const (
	Standard  Profile = iota // standard
	Challenge                // challenge
)

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the kind of an interaction.
type Kind int

const (
	KindText   Kind = iota // text
	KindChoice             // choice
)

// Document is the parsed content of one QTI block.
type Document struct {
	Items        []Item
	Interactions []Interaction
	Responses    []Response
}

// Item is one assessmentItem. Its attributes are only required by the
// single question shape, so they are read on demand.
type Item struct {
	node *legacy.Node
}

// Identifier returns the item's identifier attribute.
func (it Item) Identifier() (string, error) {
	return it.node.RequireAttr("identifier")
}

// Adaptive returns the item's adaptive flag.
func (it Item) Adaptive() (bool, error) {
	return it.flag("adaptive")
}

// TimeDependent returns the item's timeDependent flag.
func (it Item) TimeDependent() (bool, error) {
	return it.flag("timeDependent")
}

// flag parses a boolean attribute. Anything but "true" (in any case) is false.
func (it Item) flag(name string) (bool, error) {
	v, err := it.node.RequireAttr(name)
	if err != nil {
		return false, err
	}

	return strings.EqualFold(strings.TrimSpace(v), "true"), nil
}

// Interaction is one question found in an itemBody.
type Interaction struct {
	Kind               Kind
	ResponseIdentifier string
	Prompt             string

	// Text interactions only.
	PlaceholderText string
	ExpectedLines   string

	// Choice interactions only.
	Shuffle    string
	MaxChoices string
	Choices    []Choice
}

// Choice is one simpleChoice. Feedback is nil when the choice has no
// feedbackInline child.
type Choice struct {
	Identifier string
	Text       string
	Feedback   *string
}

// Response is one responseDeclaration.
type Response struct {
	Identifier  string
	Cardinality string
	BaseType    string
	Correct     *CorrectResponse
}

// CorrectResponse is the decoded value of a correctResponse. A raw value
// containing "|" is a list, anything else a scalar.
type CorrectResponse struct {
	raw    string
	values []string
	list   bool
}

// DecodeCorrectResponse decodes a raw correct response value. In the list
// form every element after the first is a bare choice index, so it gets the
// "choice" prefix: "choice0|2|3" becomes [choice0 choice2 choice3]. Trailing
// empty elements are dropped.
func DecodeCorrectResponse(raw string) CorrectResponse {
	if !strings.Contains(raw, "|") {
		return CorrectResponse{raw: raw, values: []string{raw}}
	}

	parts := strings.Split(raw, "|")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}

	values := make([]string, 0, len(parts))
	for i, part := range parts {
		if i > 0 {
			part = "choice" + part
		}

		values = append(values, part)
	}

	return CorrectResponse{raw: raw, values: values, list: true}
}

// IsList reports whether the value decoded to a list.
func (c CorrectResponse) IsList() bool {
	return c.list
}

// Values returns the decoded values; a scalar has exactly one.
func (c CorrectResponse) Values() []string {
	return append([]string(nil), c.values...)
}

// MarshalJSON encodes a scalar as a string and a list as an array.
func (c CorrectResponse) MarshalJSON() ([]byte, error) {
	if c.list {
		return json.Marshal(c.values)
	}

	return json.Marshal(c.raw)
}

func (c CorrectResponse) String() string {
	if c.list {
		return fmt.Sprintf("%q", c.values)
	}

	return strconv.Quote(c.raw)
}
