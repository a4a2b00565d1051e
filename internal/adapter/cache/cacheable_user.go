package cache

import (
	"fmt"
	"strings"

	"github.com/bornholm/maven/internal/core/model"
)

type CacheableUser struct {
	model.User
}

// CacheKeys implements [Cacheable].
func (u *CacheableUser) CacheKeys() []string {
	return []string{
		getUserIdentityCacheKey(u.Provider(), u.Subject()),
		getUserIDCacheKey(u.ID()),
	}
}

func NewCacheableUser(user model.User) *CacheableUser {
	return &CacheableUser{user}
}

var (
	_ model.User = &CacheableUser{}
	_ Cacheable  = &CacheableUser{}
)

func getUserIdentityCacheKey(provider string, subject string) string {
	return getCompositeCacheKey("identity", provider, subject)
}

func getUserIDCacheKey(id model.UserID) string {
	return getCompositeCacheKey("id", id)
}

func getCompositeCacheKey(parts ...any) string {
	var sb strings.Builder
	for i, p := range parts {
		if i > 0 {
			sb.WriteString("|")
		}
		sb.WriteString(fmt.Sprintf("%s", p))
	}
	return sb.String()
}
