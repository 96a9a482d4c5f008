package wise4

import "fmt"

// Manifest defaults.
const (
	ManifestFile     = "wise4.project.json"
	MasterSequenceID = "master"
	SequenceType     = "sequence"
	DefaultStepTerm  = "Step"
)

// Node is the manifest entry for one step. Identifier and Ref both hold the
// step's content file name.
type Node struct {
	Type                string   `json:"type"`
	Identifier          string   `json:"identifier"`
	Title               string   `json:"title"`
	Ref                 string   `json:"ref"`
	PreviousWorkNodeIDs []string `json:"previousWorkNodeIds"`
	Links               []string `json:"links"`
	Class               string   `json:"class"`
}

// NewNode creates a manifest entry whose identifier and ref are fileName.
func NewNode(nodeType, fileName, title, class string) Node {
	return Node{
		Type:                nodeType,
		Identifier:          fileName,
		Title:               title,
		Ref:                 fileName,
		PreviousWorkNodeIDs: []string{},
		Links:               []string{},
		Class:               class,
	}
}

// StepFileName returns the content file name for the step at counter.
func StepFileName(counter int, ext string) string {
	return fmt.Sprintf("node_%d.%s", counter, ext)
}

// Sequence groups node or sequence identifiers.
type Sequence struct {
	Type       string   `json:"type"`
	Identifier string   `json:"identifier"`
	Title      string   `json:"title"`
	View       string   `json:"view"`
	Refs       []string `json:"refs"`
}

// NewSequence creates a sequence referencing refs in order.
func NewSequence(identifier, title string, refs []string) Sequence {
	if refs == nil {
		refs = []string{}
	}

	return Sequence{
		Type:       SequenceType,
		Identifier: identifier,
		Title:      title,
		View:       "",
		Refs:       refs,
	}
}

// ActivitySequenceID returns the identifier of the n-th activity sequence.
func ActivitySequenceID(n int) string {
	return fmt.Sprintf("seq_%d", n)
}

// Project is the manifest written to ManifestFile.
type Project struct {
	AutoStep     bool       `json:"autoStep"`
	StepLevelNum bool       `json:"stepLevelNum"`
	StepTerm     string     `json:"stepTerm"`
	Title        string     `json:"title"`
	Constraints  []any      `json:"constraints"`
	Nodes        []Node     `json:"nodes"`
	Sequences    []Sequence `json:"sequences"`
	StartPoint   string     `json:"startPoint"`
}

// NewProject builds the manifest. The master sequence is placed first and
// references every activity sequence in order.
func NewProject(title string, nodes []Node, activities []Sequence) Project {
	if nodes == nil {
		nodes = []Node{}
	}

	refs := make([]string, 0, len(activities))
	for _, seq := range activities {
		refs = append(refs, seq.Identifier)
	}

	sequences := make([]Sequence, 0, len(activities)+1)
	sequences = append(sequences, NewSequence(MasterSequenceID, MasterSequenceID, refs))
	sequences = append(sequences, activities...)

	return Project{
		AutoStep:     true,
		StepLevelNum: false,
		StepTerm:     DefaultStepTerm,
		Title:        title,
		Constraints:  []any{},
		Nodes:        nodes,
		Sequences:    sequences,
		StartPoint:   MasterSequenceID,
	}
}
