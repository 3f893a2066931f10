package cli

import (
	"strconv"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*semesterFlag)(nil)
	_ pflag.Value = (*categoryFlag)(nil)
)

// semesterFlag parses --semester, clamping values outside the study range
// and rejecting non-numbers.
type semesterFlag struct {
	value   int
	set     bool
	clamped bool
}

func (f *semesterFlag) String() string {
	if !f.set {
		return ""
	}
	return strconv.Itoa(f.value)
}

func (f *semesterFlag) Set(s string) error {
	sem, clamped, err := contract.ParseSemester(s)
	if err != nil {
		return err
	}
	f.value, f.clamped, f.set = sem, clamped, true
	return nil
}

func (f *semesterFlag) Type() string { return "semester" }

// categoryFlag parses --category as an id or German label.
type categoryFlag struct {
	value domain.Category
}

func (f *categoryFlag) String() string { return string(f.value) }

func (f *categoryFlag) Set(s string) error {
	c, err := contract.ParseCategory(s)
	if err != nil {
		return err
	}
	f.value = c
	return nil
}

func (f *categoryFlag) Type() string { return "category" }

// langFlag restricts --lang to the languages the catalog carries.
type langFlag struct {
	value string
}

func (f *langFlag) String() string { return f.value }

func (f *langFlag) Set(s string) error {
	switch s {
	case "en", "de":
		f.value = s
		return nil
	}
	return contract.NewError(contract.ErrInvalidInput, "language must be en or de, got "+strconv.Quote(s))
}

func (f *langFlag) Type() string { return "lang" }
