package service

import (
	"context"
	"testing"

	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_DefaultsWhenMissing(t *testing.T) {
	s := newStack(t)

	resp, err := s.profiles.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "default", resp.Profile.SessionID)
	assert.Equal(t, 1, resp.Profile.Semester)
	assert.False(t, resp.Profile.HasCareer())
	assert.Nil(t, resp.Career)
}

func TestProfile_SetSemesterClamps(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	resp, err := s.profiles.SetSemester(ctx, 12)
	require.NoError(t, err)
	assert.Equal(t, 8, resp.Profile.Semester)
	assert.True(t, resp.Clamped)

	resp, err = s.profiles.SetSemester(ctx, 4)
	require.NoError(t, err)
	assert.False(t, resp.Clamped)

	got, err := s.profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Profile.Semester)
}

func TestProfile_SetCareer(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	resp, err := s.profiles.SetCareer(ctx, "AI Researcher")
	require.NoError(t, err)
	assert.Equal(t, "ml_engineer", resp.Profile.CareerPathID)
	require.NotNil(t, resp.Career)
	assert.Equal(t, "Machine Learning Engineer", resp.Career.TitleEN)

	_, err = s.profiles.SetCareer(ctx, "astronaut")
	code, ok := contract.CodeOf(err)
	require.True(t, ok)
	assert.Equal(t, contract.ErrUnknownCareer, code)

	got, err := s.profiles.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ml_engineer", got.Profile.CareerPathID, "failed update leaves profile unchanged")

	resp, err = s.profiles.SetCareer(ctx, "")
	require.NoError(t, err)
	assert.False(t, resp.Profile.HasCareer())
}

func TestProfile_UpdateKeepsUntouchedFields(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	_, err := s.profiles.Update(ctx, contract.ProfileUpdate{Semester: intPtr(3), CareerID: strPtr("devops_engineer")})
	require.NoError(t, err)
	resp, err := s.profiles.Update(ctx, contract.ProfileUpdate{Semester: intPtr(4)})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Profile.Semester)
	assert.Equal(t, "devops_engineer", resp.Profile.CareerPathID)

	ev := s.observer.last(t)
	assert.Equal(t, "update-profile", ev.Name)
	assert.Equal(t, 4, ev.Fields["semester"])
}
