package images

import "context"

type staticFinder struct{}

// NewStaticFinder constructs a Finder that skips outbound lookups and always
// answers with deterministic placeholder URLs. Used when IMAGE_LOOKUPS is
// disabled and in tests.
func NewStaticFinder() Finder {
	return staticFinder{}
}

func (staticFinder) Find(_ context.Context, query, _ string) string {
	return Placeholder(query)
}

func (staticFinder) DepartmentLogo(_ context.Context, _, code string) string {
	return LogoPlaceholder(code)
}

var _ Finder = staticFinder{}
var _ Finder = (*httpFinder)(nil)
