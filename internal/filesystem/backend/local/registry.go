package local

import (
	"net/url"
	"os"
	"strings"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/filesystem"
	"github.com/bornholm/maven/internal/filesystem/backend"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

func init() {
	backend.RegisterBackendFactory("local", FromDSN)
}

func FromDSN(dsn *url.URL) (port.AvatarStore, error) {
	basePath := dsn.Host + "/" + strings.TrimPrefix(dsn.Path, "/")

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create avatars directory '%s'", basePath)
	}

	fs := afero.NewBasePathFs(afero.NewOsFs(), basePath)

	return filesystem.NewAvatarStore(fs), nil
}
