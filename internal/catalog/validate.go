package catalog

import (
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

var validMilestoneTypes = map[string]bool{
	string(domain.MilestoneOnboarding):  true,
	string(domain.MilestoneCPThreshold): true,
	string(domain.MilestoneModuleGroup): true,
	string(domain.MilestoneCareerGoal):  true,
	string(domain.MilestoneThesis):      true,
	string(domain.MilestoneCompletion):  true,
}

const (
	minModuleSemester = 1
	maxModuleSemester = 6
)

// Validate checks a dataset before it is resolved into a Store.
// Returns a slice of all validation errors found.
func Validate(s *Schema) []error {
	var errs []error

	codes := make(map[string]bool, len(s.Modules))
	errs = append(errs, validateModules(s.Modules, codes)...)

	ids := make(map[string]bool, len(s.CareerPaths))
	errs = append(errs, validateCareerPaths(s.CareerPaths, codes, ids)...)

	for alias, id := range s.CareerAliases {
		if !ids[id] {
			errs = append(errs, fmt.Errorf("career_aliases[%q]: unknown career path %q", alias, id))
		}
	}

	errs = append(errs, validateRequirements(s)...)
	errs = append(errs, validateMilestones(s.Milestones)...)

	return errs
}

func validateModules(modules []ModuleSchema, codes map[string]bool) []error {
	var errs []error
	for i, m := range modules {
		prefix := fmt.Sprintf("modules[%d]", i)
		if m.Code == "" {
			errs = append(errs, fmt.Errorf("%s.code is required", prefix))
		} else if codes[m.Code] {
			errs = append(errs, fmt.Errorf("%s.code %q is duplicated", prefix, m.Code))
		}
		codes[m.Code] = true

		if m.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if m.Credits <= 0 {
			errs = append(errs, fmt.Errorf("%s.credits must be > 0, got %d", prefix, m.Credits))
		}
		cat, ok := domain.ParseCategory(m.Category)
		if !ok {
			errs = append(errs, fmt.Errorf("%s.category %q is not a known category", prefix, m.Category))
		}
		if m.Semester != nil && (*m.Semester < minModuleSemester || *m.Semester > maxModuleSemester) {
			errs = append(errs, fmt.Errorf("%s.semester must be %d..%d, got %d", prefix, minModuleSemester, maxModuleSemester, *m.Semester))
		}
		if cat == domain.CategoryMandatory && m.Semester == nil {
			errs = append(errs, fmt.Errorf("%s: mandatory module %q has no semester", prefix, m.Code))
		}
	}
	return errs
}

func validateCareerPaths(paths []CareerPathSchema, codes, ids map[string]bool) []error {
	var errs []error
	for i, p := range paths {
		prefix := fmt.Sprintf("career_paths[%d]", i)
		if p.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if ids[p.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, p.ID))
		}
		ids[p.ID] = true

		if p.TitleEN == "" {
			errs = append(errs, fmt.Errorf("%s.title_en is required", prefix))
		}
		band := domain.SalaryBand{Junior: p.Salary.Junior, Mid: p.Salary.Mid, Senior: p.Salary.Senior}
		if !band.Ordered() {
			errs = append(errs, fmt.Errorf("%s.salary must satisfy 0 <= junior <= mid <= senior, got %d/%d/%d",
				prefix, p.Salary.Junior, p.Salary.Mid, p.Salary.Senior))
		}
		for _, code := range p.RecommendedModules {
			if !codes[code] {
				errs = append(errs, fmt.Errorf("%s.recommended_modules: unknown module %q", prefix, code))
			}
		}
	}
	return errs
}

func validateRequirements(s *Schema) []error {
	var errs []error
	if s.TotalRequiredCredits != nil && *s.TotalRequiredCredits <= 0 {
		errs = append(errs, fmt.Errorf("total_required_credits must be > 0"))
	}
	for key, v := range s.CreditRequirements {
		if key != thesisRequirementKey {
			if _, ok := domain.ParseCategory(key); !ok {
				errs = append(errs, fmt.Errorf("credit_requirements: unknown category %q", key))
				continue
			}
		}
		if v < 0 {
			errs = append(errs, fmt.Errorf("credit_requirements[%q] must be >= 0", key))
		}
	}
	if want, ok := s.CreditRequirements[string(domain.CategoryMandatory)]; ok {
		var sum int
		for _, m := range s.Modules {
			if cat, _ := domain.ParseCategory(m.Category); cat == domain.CategoryMandatory {
				sum += m.Credits
			}
		}
		if sum != want {
			errs = append(errs, fmt.Errorf("credit_requirements[mandatory] is %d but mandatory modules sum to %d", want, sum))
		}
	}
	return errs
}

func validateMilestones(milestones []MilestoneSchema) []error {
	var errs []error
	seen := make(map[int]bool, len(milestones))
	for i, ms := range milestones {
		prefix := fmt.Sprintf("milestones[%d]", i)
		if seen[ms.ID] {
			errs = append(errs, fmt.Errorf("%s.id %d is duplicated", prefix, ms.ID))
		}
		seen[ms.ID] = true
		if !validMilestoneTypes[ms.Type] {
			errs = append(errs, fmt.Errorf("%s.type %q is not a known milestone type", prefix, ms.Type))
		}
		if ms.Label == "" {
			errs = append(errs, fmt.Errorf("%s.label is required", prefix))
		}
		switch domain.MilestoneType(ms.Type) {
		case domain.MilestoneCPThreshold, domain.MilestoneThesis, domain.MilestoneCompletion:
			if ms.CreditsRequired == nil || *ms.CreditsRequired <= 0 {
				errs = append(errs, fmt.Errorf("%s: %s milestone needs credits_required > 0", prefix, ms.Type))
			}
		case domain.MilestoneModuleGroup:
			if ms.ModuleGroup == nil {
				errs = append(errs, fmt.Errorf("%s: module_group milestone needs module_group", prefix))
			} else if _, ok := domain.ParseCategory(*ms.ModuleGroup); !ok {
				errs = append(errs, fmt.Errorf("%s.module_group %q is not a known category", prefix, *ms.ModuleGroup))
			}
		}
	}
	return errs
}
