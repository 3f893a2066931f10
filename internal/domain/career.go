package domain

import "fmt"

// SalaryBand holds yearly gross salary estimates in euros.
type SalaryBand struct {
	Junior int
	Mid    int
	Senior int
}

// Ordered reports whether the band is non-negative and junior <= mid <= senior.
func (s SalaryBand) Ordered() bool {
	return s.Junior >= 0 && s.Junior <= s.Mid && s.Mid <= s.Senior
}

// CareerPath is a named occupational target with its recommended modules.
type CareerPath struct {
	ID                 string
	TitleEN            string
	TitleDE            string
	DescriptionEN      string
	DescriptionDE      string
	Salary             SalaryBand
	RequiredSkills     []string
	RecommendedModules []string
	Keywords           []string
}

// Title returns the title for the given language, falling back to English.
func (c CareerPath) Title(lang string) string {
	if lang == "de" {
		return CoalesceStr(c.TitleDE, c.TitleEN)
	}
	return c.TitleEN
}

// Description returns the description for the given language, falling back to English.
func (c CareerPath) Description(lang string) string {
	if lang == "de" {
		return CoalesceStr(c.DescriptionDE, c.DescriptionEN)
	}
	return c.DescriptionEN
}

// SalaryRange renders the junior..senior band as "50k - 80k €".
func (c CareerPath) SalaryRange() string {
	return fmt.Sprintf("%dk - %dk €", c.Salary.Junior/1000, c.Salary.Senior/1000)
}

// ModuleCount is the number of recommended module codes.
func (c CareerPath) ModuleCount() int {
	return len(c.RecommendedModules)
}

// Recommends reports whether code is in the path's recommended list.
func (c CareerPath) Recommends(code string) bool {
	for _, rc := range c.RecommendedModules {
		if rc == code {
			return true
		}
	}
	return false
}
