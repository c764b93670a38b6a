package driven

import (
	"github.com/threadlens/threadlens/internal/core/domain"
)

// Normaliser transforms one raw, loosely-structured record into a
// canonical Post. Implementations are platform-specific (the raw field
// names of a reddit export differ from other feeds).
//
// Normalise must tolerate missing or malformed fields by defaulting
// rather than failing: the only error condition is a nil record. A
// record whose timestamp cannot be resolved is returned with a zero
// CreatedAt; dropping it is the loader's decision, not the normaliser's.
type Normaliser interface {
	// Platform returns the platform identifier stamped on produced posts.
	Platform() string

	// Normalise converts a raw key-value record (optionally nested one
	// level under a "data" key) into a Post.
	Normalise(raw map[string]any) (*domain.Post, error)
}
