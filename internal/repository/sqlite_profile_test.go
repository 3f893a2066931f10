package repository

import (
	"context"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_GetMissingIsNotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	_, err := repo.Get(context.Background(), "default")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_UpsertRoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := domain.NewProfile("default")
	p.Semester = 3
	p.CareerPathID = "security_engineer"
	p.UpdatedAt = testutil.FixedNow
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "default")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Semester)
	assert.Equal(t, "security_engineer", got.CareerPathID)
	assert.True(t, testutil.FixedNow.Equal(got.UpdatedAt))
}

func TestProfileRepo_ClearCareer(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)
	ctx := context.Background()

	p := domain.NewProfile("default")
	p.CareerPathID = "ml_engineer"
	require.NoError(t, repo.Upsert(ctx, p))

	p.CareerPathID = ""
	p.Semester = 5
	require.NoError(t, repo.Upsert(ctx, p))

	got, err := repo.Get(ctx, "default")
	require.NoError(t, err)
	assert.False(t, got.HasCareer())
	assert.Equal(t, 5, got.Semester)
}

func TestProfileRepo_RejectsOutOfRangeSemester(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProfileRepo(db)

	p := domain.NewProfile("default")
	p.Semester = 12
	assert.Error(t, repo.Upsert(context.Background(), p))
}
