package repository

import "github.com/TPSE31/career-roadmap/internal/domain"

// ErrNotFound is returned when a lookup matches no row. It is the domain
// sentinel so callers above the repository layer need only one check.
var ErrNotFound = domain.ErrNotFound
