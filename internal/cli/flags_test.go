package cli

import (
	"testing"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemesterFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		clamped bool
	}{
		{"3", 3, false},
		{" 6 ", 6, false},
		{"0", 1, true},
		{"-2", 1, true},
		{"11", 8, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var f semesterFlag
			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.Var(&f, "semester", "")
			require.NoError(t, fs.Parse([]string{"--semester", tt.in}))
			assert.True(t, f.set)
			assert.Equal(t, tt.want, f.value)
			assert.Equal(t, tt.clamped, f.clamped)
		})
	}
}

func TestSemesterFlag_RejectsText(t *testing.T) {
	var f semesterFlag
	err := f.Set("five")
	code, ok := contract.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, contract.ErrInvalidSemester, code)
	assert.False(t, f.set)
	assert.Empty(t, f.String())
}

func TestCategoryFlag(t *testing.T) {
	var f categoryFlag
	require.NoError(t, f.Set("elective_open"))
	assert.Equal(t, domain.CategoryElectiveOpen, f.value)

	require.NoError(t, f.Set("Studium Generale"))
	assert.Equal(t, domain.CategoryGeneralStudies, f.value)

	err := f.Set("sports")
	code, _ := contract.CodeOf(err)
	assert.Equal(t, contract.ErrInvalidCategory, code)
	assert.Equal(t, domain.CategoryGeneralStudies, f.value)
}

func TestLangFlag(t *testing.T) {
	f := langFlag{value: "en"}
	require.NoError(t, f.Set("de"))
	assert.Equal(t, "de", f.String())
	assert.Error(t, f.Set("fr"))
	assert.Equal(t, "de", f.value)
}
