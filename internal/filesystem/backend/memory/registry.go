package memory

import (
	"net/url"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/filesystem"
	"github.com/bornholm/maven/internal/filesystem/backend"
	"github.com/spf13/afero"
)

func init() {
	backend.RegisterBackendFactory("memory", FromDSN)
}

func FromDSN(dsn *url.URL) (port.AvatarStore, error) {
	return filesystem.NewAvatarStore(afero.NewMemMapFs()), nil
}
