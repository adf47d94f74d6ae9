package memory

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"project-planner/internal/recommendation/repository"
)

// newUserLRU builds the per-user index. Zero size and TTL keep every user for
// the lifetime of the process.
func newUserLRU[V any](opt repository.Options) *expirable.LRU[string, V] {
	size := opt.MaxUsers
	if size < 0 {
		size = 0
	}
	ttl := opt.UserTTL
	if ttl < 0 {
		ttl = 0
	}
	return expirable.NewLRU[string, V](size, nil, ttl)
}

func normalize(opt repository.Options) repository.Options {
	if opt.MaxHistory <= 0 {
		opt.MaxHistory = repository.DefaultMaxHistory
	}
	return opt
}
