package remote

import (
	"encoding/json"
	"fmt"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// careerPayload is one entry of GET /careers/. The API identifies paths by
// career_id; some deployments send the string id in "id" instead.
type careerPayload struct {
	CareerID           string          `json:"career_id"`
	ID                 json.RawMessage `json:"id"`
	TitleEN            string          `json:"title_en"`
	TitleDE            string          `json:"title_de"`
	DescriptionEN      string          `json:"description_en"`
	DescriptionDE      string          `json:"description_de"`
	AverageSalary      salaryPayload   `json:"average_salary"`
	RequiredSkills     []string        `json:"required_skills"`
	RecommendedModules []string        `json:"recommended_modules"`
}

type salaryPayload struct {
	Junior int `json:"junior"`
	Mid    int `json:"mid"`
	Senior int `json:"senior"`
}

// careerModulesPayload is the body of GET /careers/{id}/modules/.
type careerModulesPayload struct {
	Modules []scoredModulePayload `json:"modules"`
}

type scoredModulePayload struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	NameEN         string `json:"name_en"`
	Credits        int    `json:"credits"`
	Category       string `json:"category"`
	Semester       *int   `json:"semester"`
	Description    string `json:"description"`
	RelevanceScore int    `json:"relevance_score"`
	IsCore         bool   `json:"is_core"`
}

func (p careerPayload) careerID() (string, error) {
	if p.CareerID != "" {
		return p.CareerID, nil
	}
	var id string
	if err := json.Unmarshal(p.ID, &id); err == nil && id != "" {
		return id, nil
	}
	return "", fmt.Errorf("career %q has no string identifier", p.TitleEN)
}

func (p careerPayload) toDomain() (domain.CareerPath, error) {
	id, err := p.careerID()
	if err != nil {
		return domain.CareerPath{}, err
	}
	return domain.CareerPath{
		ID:            id,
		TitleEN:       p.TitleEN,
		TitleDE:       domain.CoalesceStr(p.TitleDE, p.TitleEN),
		DescriptionEN: p.DescriptionEN,
		DescriptionDE: domain.CoalesceStr(p.DescriptionDE, p.DescriptionEN),
		Salary: domain.SalaryBand{
			Junior: p.AverageSalary.Junior,
			Mid:    p.AverageSalary.Mid,
			Senior: p.AverageSalary.Senior,
		},
		RequiredSkills:     p.RequiredSkills,
		RecommendedModules: p.RecommendedModules,
	}, nil
}

func (p scoredModulePayload) toDomain() domain.ScoredModule {
	cat, _ := domain.ParseCategory(p.Category)
	score := p.RelevanceScore
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return domain.ScoredModule{
		Module: domain.Module{
			Code:        p.Code,
			Name:        p.Name,
			NameEN:      domain.CoalesceStr(p.NameEN, p.Name),
			Credits:     p.Credits,
			Category:    cat,
			Semester:    p.Semester,
			Description: p.Description,
			Mandatory:   cat == domain.CategoryMandatory,
		},
		RelevanceScore: score,
		IsCore:         p.IsCore,
	}
}
