package contract

import (
	"errors"
	"fmt"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_ErrorString(t *testing.T) {
	err := NewError(ErrInvalidSemester, "semester \"x\" is not a number")
	assert.Equal(t, `INVALID_SEMESTER: semester "x" is not a number`, err.Error())
}

func TestErrorCodes_AreDistinct(t *testing.T) {
	codes := []ErrorCode{
		ErrInvalidSemester, ErrInvalidCategory, ErrInvalidInput, ErrUnknownCareer,
		ErrUnknownModule, ErrUnknownMilestone, ErrUnknownNotification, ErrNotFound,
		ErrPersistence,
	}
	seen := make(map[ErrorCode]bool)
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate error code: %s", c)
		seen[c] = true
	}
}

func TestWrap(t *testing.T) {
	notFound := fmt.Errorf("module 99-99-9999: %w", domain.ErrNotFound)
	err := Wrap(notFound, ErrUnknownModule)
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownModule, code)
	assert.ErrorIs(t, err, domain.ErrNotFound, "cause stays reachable")

	code, _ = CodeOf(Wrap(notFound, ""))
	assert.Equal(t, ErrNotFound, code)

	code, _ = CodeOf(Wrap(&domain.ValidationError{Field: "title"}, ""))
	assert.Equal(t, ErrInvalidInput, code)

	code, _ = CodeOf(Wrap(errors.New("disk full"), ""))
	assert.Equal(t, ErrPersistence, code)

	original := NewError(ErrInvalidCategory, "bad")
	assert.Same(t, original, Wrap(original, ErrUnknownModule))

	assert.NoError(t, Wrap(nil, ErrUnknownModule))
}

func TestParseSemester(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		clamped bool
	}{
		{"1", 1, false},
		{" 5 ", 5, false},
		{"8", 8, false},
		{"0", 1, true},
		{"-3", 1, true},
		{"12", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, clamped, err := ParseSemester(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.clamped, clamped)
		})
	}

	_, _, err := ParseSemester("third")
	code, ok := CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidSemester, code)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("elective_open")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryElectiveOpen, c)

	c, err = ParseCategory("Pflichtbereich")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryMandatory, c)

	_, err = ParseCategory("optional")
	code, _ := CodeOf(err)
	assert.Equal(t, ErrInvalidCategory, code)
	assert.Contains(t, err.Error(), "general_studies")
}

func TestProfileUpdate_Empty(t *testing.T) {
	assert.True(t, ProfileUpdate{}.Empty())
	sem := 3
	assert.False(t, ProfileUpdate{Semester: &sem}.Empty())
	career := ""
	assert.False(t, ProfileUpdate{CareerID: &career}.Empty())
}

func TestRoadmapResponse_Current(t *testing.T) {
	r := RoadmapResponse{Stages: []domain.RoadmapStage{
		{Ordinal: 1, Completed: true},
		{Ordinal: 2, Current: true},
	}}
	cur, ok := r.Current()
	require.True(t, ok)
	assert.Equal(t, 2, cur.Ordinal)

	_, ok = RoadmapResponse{}.Current()
	assert.False(t, ok)
}
