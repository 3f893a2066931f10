package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

//go:embed data/catalog.json
var bundledJSON []byte

// Bundled returns the curriculum dataset compiled into the binary.
func Bundled() (*Store, error) {
	return Parse(bundledJSON)
}

// LoadFile reads a dataset from disk. It is validated the same way as the
// bundled one.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes, validates and resolves a dataset.
func Parse(data []byte) (*Store, error) {
	var schema Schema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}
	if errs := Validate(&schema); len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation: %w", errors.Join(errs...))
	}
	return resolve(&schema), nil
}

func resolve(s *Schema) *Store {
	modules := make([]domain.Module, 0, len(s.Modules))
	for _, m := range s.Modules {
		modules = append(modules, resolveModule(m))
	}
	paths := make([]domain.CareerPath, 0, len(s.CareerPaths))
	for _, p := range s.CareerPaths {
		paths = append(paths, resolveCareerPath(p))
	}
	milestones := make([]domain.MilestoneDefinition, 0, len(s.Milestones))
	for _, ms := range s.Milestones {
		milestones = append(milestones, resolveMilestone(ms))
	}

	return New(modules, paths,
		WithVersion(s.Version),
		WithTotalRequired(domain.IntFromPtrWithDefault(domain.TotalRequiredCredits, s.TotalRequiredCredits)),
		WithCreditRequirements(s.CreditRequirements),
		WithAliases(s.CareerAliases),
		WithMilestones(milestones),
	)
}

func resolveModule(m ModuleSchema) domain.Module {
	cat, _ := domain.ParseCategory(m.Category)
	nameEN := m.Name
	if m.NameEN != nil {
		nameEN = domain.CoalesceStr(*m.NameEN, m.Name)
	}
	var sem *int
	if m.Semester != nil {
		v := *m.Semester
		sem = &v
	}
	return domain.Module{
		Code:        m.Code,
		Name:        m.Name,
		NameEN:      nameEN,
		Credits:     m.Credits,
		Category:    cat,
		Semester:    sem,
		Description: m.Description,
		Notes:       m.Notes,
		Mandatory:   domain.BoolFromPtrWithDefault(cat == domain.CategoryMandatory, m.Mandatory),
	}
}

func resolveCareerPath(p CareerPathSchema) domain.CareerPath {
	derefOr := func(v *string, fallback string) string {
		if v == nil {
			return fallback
		}
		return domain.CoalesceStr(*v, fallback)
	}
	return domain.CareerPath{
		ID:                 p.ID,
		TitleEN:            p.TitleEN,
		TitleDE:            derefOr(p.TitleDE, p.TitleEN),
		DescriptionEN:      p.DescriptionEN,
		DescriptionDE:      derefOr(p.DescriptionDE, p.DescriptionEN),
		Salary:             domain.SalaryBand{Junior: p.Salary.Junior, Mid: p.Salary.Mid, Senior: p.Salary.Senior},
		RequiredSkills:     append([]string(nil), p.RequiredSkills...),
		RecommendedModules: append([]string(nil), p.RecommendedModules...),
		Keywords:           domain.StringsOrDefault(lowerAll(p.Keywords), KeywordsFromSkills(p.RequiredSkills)),
	}
}

func resolveMilestone(ms MilestoneSchema) domain.MilestoneDefinition {
	def := domain.MilestoneDefinition{
		ID:                 ms.ID,
		OrderIndex:         domain.IntFromPtrWithDefault(ms.ID, ms.OrderIndex),
		Type:               domain.MilestoneType(ms.Type),
		Label:              ms.Label,
		Description:        ms.Description,
		ExpectedBySemester: ms.ExpectedBySemester,
	}
	def.Rule.CreditsRequired = domain.IntFromPtrWithDefault(0, ms.CreditsRequired)
	if ms.ModuleGroup != nil {
		def.Rule.ModuleGroup, _ = domain.ParseCategory(*ms.ModuleGroup)
	}
	return def
}

// minKeywordLen drops short tokens such as "and", "or" and "UX".
const minKeywordLen = 4

// KeywordsFromSkills derives lowercase matching terms from free-text skill
// descriptions, in first-seen order without duplicates.
func KeywordsFromSkills(skills []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, skill := range skills {
		words := strings.FieldsFunc(strings.ToLower(skill), func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		for _, w := range words {
			if len([]rune(w)) < minKeywordLen || seen[w] {
				continue
			}
			seen[w] = true
			out = append(out, w)
		}
	}
	return out
}

func lowerAll(vals []string) []string {
	if len(vals) == 0 {
		return nil
	}
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = strings.ToLower(v)
	}
	return out
}
