package filesystem

import (
	"path"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidPath = errors.New("invalid path")

// CleanPath normalizes the given slash-separated path and rejects the ones
// escaping the storage root.
func CleanPath(p string) (string, error) {
	cleaned := path.Clean("/" + p)
	if cleaned == "/" || strings.Contains(p, "..") {
		return "", errors.Wrapf(ErrInvalidPath, "'%s'", p)
	}

	return strings.TrimPrefix(cleaned, "/"), nil
}
