package steptype

//go:generate go tool stringer -type=Type -linecomment -output=type_string.go

// Type is the semantic type of a legacy step. String returns its legacy
// spelling.
type Type int

const (
	// Unspecified - no explicit type and no heuristic matched.
	Unspecified Type = iota
	// Unrecognized - an explicit type value outside the known set.
	Unrecognized

	DisplayPage
	Evidence
	Notes
	StudentAssessment
	SelfTest
	Journal
	Discussion
	DiscussionForum
	Brainstorm
	Wisedraw2
	ChallengeQuestion
	Bookmarks
	Alerts
	Sensemaker
	ConcordModelSaveJar
	DataGrid
	Table
	OTrunk
	OTrunkModel
	OTrunkDIY
	OutsideURL // OutsideUrl

	// Heuristic-only types; nothing converts them.
	ShowAllWork
	GraphData
	PrincipleMakerStep1
	PrincipleMakerStep2
	PrincipleMakerStep3

	// TypeTotal is the number of defined types.
	TypeTotal = int(iota)
)

// aliases are alternative spellings found in exported projects.
var aliases = map[string]Type{
	"SVGDraw": Wisedraw2,
	"Otrunk":  OTrunk,
}

var byName = func() map[string]Type {
	m := make(map[string]Type, TypeTotal+len(aliases))
	for t := Type(0); int(t) < TypeTotal; t++ {
		m[t.String()] = t
	}

	for name, t := range aliases {
		m[name] = t
	}

	// Unrecognized is never spelled out in a project file.
	delete(m, Unrecognized.String())

	return m
}()

// Parse maps a legacy type string to a Type. It reports false for strings
// outside the known set.
func Parse(s string) (Type, bool) {
	t, ok := byName[s]
	return t, ok
}

// Resolution is the outcome of resolving one step.
type Resolution struct {
	// Type is the resolved type.
	Type Type
	// Raw is the type string as found or inferred; for Unrecognized it is the
	// only record of what the step declared.
	Raw string
}

// String returns the raw type string, used in run log lines.
func (r Resolution) String() string {
	if r.Raw != "" {
		return r.Raw
	}

	return r.Type.String()
}
