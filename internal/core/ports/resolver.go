package ports

// RootResolver turns configured project locations into verified directories.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type RootResolver interface {
	// Resolve returns the deduplicated existing directories named by raw.
	// The last successful result is cached; force bypasses the cache.
	// It fails with domain.ErrNoConfiguredRoots or domain.ErrInvalidRoots.
	Resolve(raw []string, force bool) ([]string, error)

	// Cached returns the last successful result, if any.
	Cached() ([]string, bool)
}
