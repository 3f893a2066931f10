package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/TPSE31/career-roadmap/internal/domain"
)

// Upstream is a remote source of career data.
type Upstream interface {
	FetchCareerPaths(ctx context.Context) ([]domain.CareerPath, error)
	FetchCareerModules(ctx context.Context, careerID string) ([]domain.ScoredModule, error)
}

// Origin records where a FallbackSource answer came from.
type Origin string

const (
	OriginUpstream Origin = "upstream"
	OriginBundled  Origin = "bundled"
)

// LocalRanker scores the bundled catalog for a career path when the upstream
// cannot.
type LocalRanker func(careerID string) []domain.ScoredModule

// FallbackSource serves career data from an Upstream when one is configured
// and reachable, and from the bundled Store otherwise. Upstream failures are
// logged and never returned.
type FallbackSource struct {
	upstream Upstream
	bundled  *Store
	rank     LocalRanker
	logger   *slog.Logger
}

// NewFallbackSource wires the source. upstream may be nil, in which case the
// bundled data is always used. A nil logger discards fallback warnings.
func NewFallbackSource(upstream Upstream, bundled *Store, rank LocalRanker, logger *slog.Logger) *FallbackSource {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &FallbackSource{upstream: upstream, bundled: bundled, rank: rank, logger: logger}
}

// CareerPaths returns the upstream career paths, or the bundled ones on any
// upstream failure. Upstream paths have recommended codes that do not
// resolve in the bundled catalog dropped.
func (f *FallbackSource) CareerPaths(ctx context.Context) ([]domain.CareerPath, Origin) {
	if f.upstream == nil {
		return f.bundled.ListCareerPaths(), OriginBundled
	}
	paths, err := f.upstream.FetchCareerPaths(ctx)
	if err == nil && len(paths) == 0 {
		err = fmt.Errorf("empty career path list")
	}
	if err != nil {
		f.warn(ctx, "career_paths", "", err)
		return f.bundled.ListCareerPaths(), OriginBundled
	}
	for i := range paths {
		paths[i].RecommendedModules = f.knownCodes(paths[i].RecommendedModules)
	}
	return paths, OriginUpstream
}

// CareerModules returns pre-scored modules for a career path. Upstream
// modules whose code does not resolve in the bundled catalog are dropped. On
// upstream failure, or when nothing known is left, the bundled catalog is
// ranked locally.
func (f *FallbackSource) CareerModules(ctx context.Context, careerID string) ([]domain.ScoredModule, Origin) {
	if f.upstream != nil {
		mods, err := f.upstream.FetchCareerModules(ctx, careerID)
		if err == nil {
			mods = f.knownModules(mods)
			if len(mods) > 0 {
				return mods, OriginUpstream
			}
			err = fmt.Errorf("no known modules for career %q", careerID)
		}
		f.warn(ctx, "career_modules", careerID, err)
	}
	if f.rank == nil {
		return []domain.ScoredModule{}, OriginBundled
	}
	return f.rank(careerID), OriginBundled
}

func (f *FallbackSource) knownCodes(codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, err := f.bundled.GetModule(c); err == nil {
			out = append(out, c)
		}
	}
	return out
}

func (f *FallbackSource) knownModules(mods []domain.ScoredModule) []domain.ScoredModule {
	out := make([]domain.ScoredModule, 0, len(mods))
	for _, m := range mods {
		if _, err := f.bundled.GetModule(m.Code); err == nil {
			out = append(out, m)
		}
	}
	return out
}

func (f *FallbackSource) warn(ctx context.Context, op, careerID string, cause error) {
	err := fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, cause)
	attrs := []any{"op", op, "error", err.Error()}
	if careerID != "" {
		attrs = append(attrs, "career_id", careerID)
	}
	f.logger.WarnContext(ctx, "upstream unavailable, using bundled catalog", attrs...)
}
