package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/TPSE31/career-roadmap/internal/catalog"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
)

type catalogService struct {
	store    *catalog.Store
	source   *catalog.FallbackSource
	observer UseCaseObserver
}

// NewCatalogService serves careers through source and modules from store.
// A nil source serves careers from store as well.
func NewCatalogService(store *catalog.Store, source *catalog.FallbackSource, observers ...UseCaseObserver) CatalogService {
	if source == nil {
		source = catalog.NewFallbackSource(nil, store, nil, nil)
	}
	return &catalogService{store: store, source: source, observer: useCaseObserverOrNoop(observers)}
}

func (s *catalogService) ListCareers(ctx context.Context) (resp *contract.CareersResponse, err error) {
	fields := map[string]any{}
	defer observeUseCase(ctx, s.observer, "list-careers", time.Now(), fields, &err)

	paths, origin := s.source.CareerPaths(ctx)
	fields["origin"] = string(origin)
	fields["count"] = len(paths)
	return &contract.CareersResponse{Careers: paths, Origin: contract.Origin(origin)}, nil
}

// GetCareer finds a career by id, alias or title. Upstream careers take
// precedence over bundled ones with the same id.
func (s *catalogService) GetCareer(ctx context.Context, idOrGoal string) (*domain.CareerPath, error) {
	paths, _ := s.source.CareerPaths(ctx)
	if p := findCareer(paths, idOrGoal); p != nil {
		return p, nil
	}
	if id, ok := s.store.ResolveCareerGoal(idOrGoal); ok {
		if p := findCareer(paths, id); p != nil {
			return p, nil
		}
		path, err := s.store.GetCareerPath(id)
		if err != nil {
			return nil, err
		}
		return &path, nil
	}
	return nil, fmt.Errorf("career path %q: %w", idOrGoal, domain.ErrNotFound)
}

func (s *catalogService) ListModules(_ context.Context, q contract.ModuleQuery) ([]domain.Module, error) {
	mods := s.store.ListModules()
	if q.Category != "" {
		mods = s.store.ModulesByCategory(q.Category)
	}
	if q.Semester == 0 {
		return mods, nil
	}
	out := make([]domain.Module, 0, len(mods))
	for _, m := range mods {
		if m.InSemesterRange(q.Semester, q.Semester) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *catalogService) GetModule(_ context.Context, code string) (*domain.Module, error) {
	m, err := s.store.GetModule(strings.TrimSpace(code))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *catalogService) ResolveGoal(_ context.Context, goal string) (string, error) {
	id, ok := s.store.ResolveCareerGoal(goal)
	if !ok {
		return "", fmt.Errorf("career goal %q: %w", goal, domain.ErrNotFound)
	}
	return id, nil
}

func findCareer(paths []domain.CareerPath, id string) *domain.CareerPath {
	id = strings.TrimSpace(id)
	for i := range paths {
		if paths[i].ID == id {
			p := paths[i]
			return &p
		}
	}
	return nil
}
