package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

const thesisRequirementKey = "thesis"

// Store is the immutable reference dataset: modules, career paths, goal
// aliases, credit requirements and milestone definitions. All list methods
// return copies in insertion order.
type Store struct {
	version       string
	totalRequired int
	requirements  map[string]int
	modules       []domain.Module
	byCode        map[string]int
	paths         []domain.CareerPath
	byID          map[string]int
	aliases       map[string]string
	milestones    []domain.MilestoneDefinition
}

// Option configures a Store built with New.
type Option func(*Store)

func WithAliases(aliases map[string]string) Option {
	return func(s *Store) {
		for k, v := range aliases {
			s.aliases[normalizeGoal(k)] = v
		}
	}
}

func WithMilestones(defs []domain.MilestoneDefinition) Option {
	return func(s *Store) {
		s.milestones = append([]domain.MilestoneDefinition(nil), defs...)
	}
}

func WithCreditRequirements(req map[string]int) Option {
	return func(s *Store) {
		for k, v := range req {
			s.requirements[k] = v
		}
	}
}

func WithTotalRequired(total int) Option {
	return func(s *Store) {
		s.totalRequired = total
	}
}

func WithVersion(v string) Option {
	return func(s *Store) {
		s.version = v
	}
}

// New builds a Store from already-resolved domain values. Data loaded from
// JSON goes through Parse, which validates before calling New.
func New(modules []domain.Module, paths []domain.CareerPath, opts ...Option) *Store {
	s := &Store{
		totalRequired: domain.TotalRequiredCredits,
		requirements:  map[string]int{thesisRequirementKey: domain.ThesisCredits},
		modules:       append([]domain.Module(nil), modules...),
		byCode:        make(map[string]int, len(modules)),
		paths:         append([]domain.CareerPath(nil), paths...),
		byID:          make(map[string]int, len(paths)),
		aliases:       make(map[string]string),
	}
	for i, m := range s.modules {
		s.byCode[m.Code] = i
	}
	for i, p := range s.paths {
		s.byID[p.ID] = i
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Version() string { return s.version }

// TotalRequiredCredits is the credit total the degree requires.
func (s *Store) TotalRequiredCredits() int { return s.totalRequired }

func (s *Store) ListModules() []domain.Module {
	return append([]domain.Module(nil), s.modules...)
}

func (s *Store) ListCareerPaths() []domain.CareerPath {
	return append([]domain.CareerPath(nil), s.paths...)
}

func (s *Store) GetModule(code string) (domain.Module, error) {
	i, ok := s.byCode[code]
	if !ok {
		return domain.Module{}, fmt.Errorf("module %q: %w", code, domain.ErrNotFound)
	}
	return s.modules[i], nil
}

func (s *Store) GetCareerPath(id string) (domain.CareerPath, error) {
	i, ok := s.byID[id]
	if !ok {
		return domain.CareerPath{}, fmt.Errorf("career path %q: %w", id, domain.ErrNotFound)
	}
	return s.paths[i], nil
}

// ModulesByCategory returns the modules of one category in insertion order.
func (s *Store) ModulesByCategory(cat domain.Category) []domain.Module {
	var out []domain.Module
	for _, m := range s.modules {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// MandatoryForSemesters returns mandatory modules scheduled in [from, to].
func (s *Store) MandatoryForSemesters(from, to int) []domain.Module {
	var out []domain.Module
	for _, m := range s.modules {
		if m.Category == domain.CategoryMandatory && m.InSemesterRange(from, to) {
			out = append(out, m)
		}
	}
	return out
}

// MandatoryCredits is the credit sum over all mandatory modules.
func (s *Store) MandatoryCredits() int {
	var sum int
	for _, m := range s.modules {
		if m.Category == domain.CategoryMandatory {
			sum += m.Credits
		}
	}
	return sum
}

// CreditRequirement returns the required credits for a category. Categories
// without an explicit requirement fall back to their catalog credit sum for
// the mandatory area and zero otherwise.
func (s *Store) CreditRequirement(cat domain.Category) int {
	if v, ok := s.requirements[string(cat)]; ok {
		return v
	}
	if cat == domain.CategoryMandatory {
		return s.MandatoryCredits()
	}
	return 0
}

// CreditRequirements returns a copy of the requirement table, keyed by
// category plus "thesis".
func (s *Store) CreditRequirements() map[string]int {
	out := make(map[string]int, len(s.requirements))
	for k, v := range s.requirements {
		out[k] = v
	}
	return out
}

// ThesisCredits is the credit value of the bachelor thesis.
func (s *Store) ThesisCredits() int {
	return s.requirements[thesisRequirementKey]
}

// Milestones returns the milestone definitions ordered by OrderIndex.
func (s *Store) Milestones() []domain.MilestoneDefinition {
	out := append([]domain.MilestoneDefinition(nil), s.milestones...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OrderIndex < out[j].OrderIndex
	})
	return out
}

// ResolveCareerGoal maps a career id or a free-text goal name such as
// "Cybersecurity Specialist" to a career path id.
func (s *Store) ResolveCareerGoal(goal string) (string, bool) {
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return "", false
	}
	if _, ok := s.byID[goal]; ok {
		return goal, true
	}
	key := normalizeGoal(goal)
	if id, ok := s.aliases[key]; ok {
		return id, true
	}
	for _, p := range s.paths {
		if normalizeGoal(p.ID) == key || normalizeGoal(p.TitleEN) == key {
			return p.ID, true
		}
	}
	return "", false
}

func normalizeGoal(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
