package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/repository"
)

type profileService struct {
	profiles  repository.ProfileRepo
	store     *catalog.Store
	sessionID string
	observer  UseCaseObserver
}

func NewProfileService(profiles repository.ProfileRepo, store *catalog.Store, sessionID string, observers ...UseCaseObserver) ProfileService {
	return &profileService{
		profiles:  profiles,
		store:     store,
		sessionID: domain.CoalesceStr(sessionID, domain.DefaultSessionID),
		observer:  useCaseObserverOrNoop(observers),
	}
}

// Get returns the stored profile, or an unsaved first-semester profile when
// the session has none yet.
func (s *profileService) Get(ctx context.Context) (*contract.ProfileResponse, error) {
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return s.response(p, false), nil
}

func (s *profileService) SetSemester(ctx context.Context, semester int) (*contract.ProfileResponse, error) {
	return s.Update(ctx, contract.ProfileUpdate{Semester: &semester})
}

func (s *profileService) SetCareer(ctx context.Context, idOrGoal string) (*contract.ProfileResponse, error) {
	return s.Update(ctx, contract.ProfileUpdate{CareerID: &idOrGoal})
}

// Update applies u and persists the profile. Semesters are clamped to the
// study range; careers may be given by id or goal alias.
func (s *profileService) Update(ctx context.Context, u contract.ProfileUpdate) (resp *contract.ProfileResponse, err error) {
	fields := map[string]any{"session": s.sessionID}
	defer observeUseCase(ctx, s.observer, "update-profile", time.Now(), fields, &err)

	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	clamped := false
	if u.Semester != nil {
		p.Semester, clamped = domain.ClampSemester(*u.Semester)
		fields["semester"] = p.Semester
	}
	if u.CareerID != nil {
		if *u.CareerID == "" {
			p.CareerPathID = ""
		} else {
			id, ok := s.store.ResolveCareerGoal(*u.CareerID)
			if !ok {
				return nil, contract.NewError(contract.ErrUnknownCareer,
					fmt.Sprintf("unknown career path %q", *u.CareerID))
			}
			p.CareerPathID = id
		}
		fields["career"] = p.CareerPathID
	}

	p.UpdatedAt = time.Now().UTC()
	if err = s.profiles.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}
	return s.response(p, clamped), nil
}

func (s *profileService) load(ctx context.Context) (*domain.Profile, error) {
	p, err := s.profiles.Get(ctx, s.sessionID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewProfile(s.sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	p.Semester, _ = domain.ClampSemester(p.Semester)
	return p, nil
}

func (s *profileService) response(p *domain.Profile, clamped bool) *contract.ProfileResponse {
	resp := &contract.ProfileResponse{Profile: *p, Clamped: clamped}
	if p.HasCareer() {
		if path, err := s.store.GetCareerPath(p.CareerPathID); err == nil {
			resp.Career = &path
		}
	}
	return resp
}
