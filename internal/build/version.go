package build

// Overridden at link time with -ldflags "-X github.com/bornholm/maven/internal/build.ShortVersion=..."
var (
	ShortVersion = "unknown"
	LongVersion  = "unknown"
)
