package contract

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// ProfileUpdate changes the stored profile. Nil fields are left unchanged;
// an empty CareerID clears the selected career.
type ProfileUpdate struct {
	Semester *int
	CareerID *string
}

// Empty reports whether the update changes nothing.
func (u ProfileUpdate) Empty() bool {
	return u.Semester == nil && u.CareerID == nil
}

// ModuleQuery filters the module list. A zero Category matches all.
type ModuleQuery struct {
	Category domain.Category
	Semester int
}

func NewModuleQuery() ModuleQuery {
	return ModuleQuery{}
}

// ParseSemester reads a semester number. Values outside the study range are
// clamped and reported through clamped; non-numbers are rejected.
func ParseSemester(s string) (sem int, clamped bool, err error) {
	n, convErr := strconv.Atoi(strings.TrimSpace(s))
	if convErr != nil {
		return 0, false, NewError(ErrInvalidSemester, fmt.Sprintf("semester %q is not a number", s))
	}
	sem, clamped = domain.ClampSemester(n)
	return sem, clamped, nil
}

// ParseCategory accepts a category id or its German label.
func ParseCategory(s string) (domain.Category, error) {
	c, ok := domain.ParseCategory(strings.TrimSpace(s))
	if !ok {
		names := make([]string, len(domain.Categories))
		for i, c := range domain.Categories {
			names[i] = string(c)
		}
		return "", NewError(ErrInvalidCategory,
			fmt.Sprintf("unknown category %q (expected one of %s)", s, strings.Join(names, ", ")))
	}
	return c, nil
}
