package domain

// Module is one curriculum entry of the degree programme.
type Module struct {
	Code        string
	Name        string
	NameEN      string
	Credits     int
	Category    Category
	Semester    *int // nil for flexible electives
	Description string
	Notes       string
	Mandatory   bool
}

// DisplayName returns the English name when present, otherwise the German one.
func (m Module) DisplayName() string {
	return CoalesceStr(m.NameEN, m.Name)
}

// InSemesterRange reports whether the module is scheduled within [from, to].
// Flexible modules are never in range.
func (m Module) InSemesterRange(from, to int) bool {
	if m.Semester == nil {
		return false
	}
	return *m.Semester >= from && *m.Semester <= to
}

// ScoredModule is a Module ranked against one career path. It is recomputed
// on every request and never persisted.
type ScoredModule struct {
	Module
	RelevanceScore int
	IsCore         bool
	Phase          Phase
	Completed      bool
	Reasons        []string
}
