package cache

import (
	"github.com/bornholm/maven/internal/core/model"
)

type CacheableProfile struct {
	*model.Profile
}

// CacheKeys implements [Cacheable].
func (p *CacheableProfile) CacheKeys() []string {
	return []string{string(p.UserID)}
}

// Detached returns a copy of the cached profile, safe to modify.
func (p *CacheableProfile) Detached() *model.Profile {
	profile := *p.Profile
	return &profile
}

func NewCacheableProfile(profile *model.Profile) *CacheableProfile {
	cloned := *profile
	return &CacheableProfile{&cloned}
}

var _ Cacheable = &CacheableProfile{}
