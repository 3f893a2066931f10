package catalog

// Schema is the on-disk JSON layout of a curriculum dataset. Optional fields
// are pointers; their defaults are applied once in resolve, never by callers.
type Schema struct {
	Version              string             `json:"version"`
	TotalRequiredCredits *int               `json:"total_required_credits,omitempty"`
	CreditRequirements   map[string]int     `json:"credit_requirements,omitempty"`
	Modules              []ModuleSchema     `json:"modules"`
	CareerPaths          []CareerPathSchema `json:"career_paths"`
	CareerAliases        map[string]string  `json:"career_aliases,omitempty"`
	Milestones           []MilestoneSchema  `json:"milestones,omitempty"`
}

// ModuleSchema defines one module. NameEN defaults to Name; Mandatory
// defaults to true for the mandatory category.
type ModuleSchema struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	NameEN      *string `json:"name_en,omitempty"`
	Credits     int     `json:"credits"`
	Category    string  `json:"category"`
	Semester    *int    `json:"semester,omitempty"`
	Description string  `json:"description"`
	Notes       string  `json:"notes,omitempty"`
	Mandatory   *bool   `json:"mandatory,omitempty"`
}

// CareerPathSchema defines one career path. German fields default to the
// English ones; Keywords default to terms derived from RequiredSkills.
type CareerPathSchema struct {
	ID                 string       `json:"id"`
	TitleEN            string       `json:"title_en"`
	TitleDE            *string      `json:"title_de,omitempty"`
	DescriptionEN      string       `json:"description_en"`
	DescriptionDE      *string      `json:"description_de,omitempty"`
	Salary             SalarySchema `json:"salary"`
	RequiredSkills     []string     `json:"required_skills"`
	RecommendedModules []string     `json:"recommended_modules"`
	Keywords           []string     `json:"keywords,omitempty"`
}

type SalarySchema struct {
	Junior int `json:"junior"`
	Mid    int `json:"mid"`
	Senior int `json:"senior"`
}

// MilestoneSchema defines one milestone. OrderIndex defaults to ID.
type MilestoneSchema struct {
	ID                 int     `json:"id"`
	OrderIndex         *int    `json:"order_index,omitempty"`
	Type               string  `json:"type"`
	Label              string  `json:"label"`
	Description        string  `json:"description"`
	CreditsRequired    *int    `json:"credits_required,omitempty"`
	ModuleGroup        *string `json:"module_group,omitempty"`
	ExpectedBySemester int     `json:"expected_by_semester"`
}
