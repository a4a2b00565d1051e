package config

import (
	"time"
)

type HTTP struct {
	BaseURL         string        `env:"BASE_URL,expand" envDefault:"http://localhost:3002"`
	Address         string        `env:"ADDRESS,expand" envDefault:":3002"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT,expand" envDefault:"10s"`
	Session         Session       `envPrefix:"SESSION_"`
	Authn           Authn         `envPrefix:"AUTHN_"`
	RateLimit       RateLimit     `envPrefix:"RATE_LIMIT_"`
	Metrics         Metrics       `envPrefix:"METRICS_"`
}

type Session struct {
	// Keys are the cookie signing (and optionally encryption) key pairs.
	// A random key is generated at startup when empty, invalidating
	// existing sessions on each restart.
	Keys   []string `env:"KEYS,expand" envSeparator:","`
	Cookie Cookie   `envPrefix:"COOKIE_"`
}

type Cookie struct {
	Path     string        `env:"PATH,expand" envDefault:"/"`
	HTTPOnly bool          `env:"HTTP_ONLY,expand" envDefault:"true"`
	Secure   bool          `env:"SECURE,expand" envDefault:"false"`
	MaxAge   time.Duration `env:"MAX_AGE,expand" envDefault:"24h"`
}

type Authn struct {
	Providers AuthProviders `envPrefix:"PROVIDERS_"`
}

type AuthProviders struct {
	Google OAuth2Provider `envPrefix:"GOOGLE_"`
	Github OAuth2Provider `envPrefix:"GITHUB_"`
	Gitea  GiteaProvider  `envPrefix:"GITEA_"`
	OIDC   OIDCProvider   `envPrefix:"OIDC_"`
}

type OAuth2Provider struct {
	Key    string   `env:"KEY,expand"`
	Secret string   `env:"SECRET,expand"`
	Scopes []string `env:"SCOPES,expand" envSeparator:","`
}

type GiteaProvider struct {
	OAuth2Provider
	TokenURL   string `env:"TOKEN_URL,expand"`
	AuthURL    string `env:"AUTH_URL,expand"`
	ProfileURL string `env:"PROFILE_URL,expand"`
	Label      string `env:"LABEL,expand" envDefault:"Gitea"`
}

type OIDCProvider struct {
	OAuth2Provider
	DiscoveryURL string `env:"DISCOVERY_URL,expand"`
	Icon         string `env:"ICON,expand" envDefault:"fa-openid"`
	Label        string `env:"LABEL,expand" envDefault:"OpenID Connect"`
}

type RateLimit struct {
	Enabled      bool          `env:"ENABLED,expand" envDefault:"true"`
	TrustHeaders bool          `env:"TRUST_HEADERS,expand" envDefault:"false"`
	Interval     time.Duration `env:"INTERVAL,expand" envDefault:"6s"`
	MaxBurst     int           `env:"MAX_BURST,expand" envDefault:"10"`
	CacheSize    int           `env:"CACHE_SIZE,expand" envDefault:"1024"`
	CacheTTL     time.Duration `env:"CACHE_TTL,expand" envDefault:"10m"`
}

type Metrics struct {
	Enabled bool `env:"ENABLED,expand" envDefault:"true"`
}
