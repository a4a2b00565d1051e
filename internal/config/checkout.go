package config

type Checkout struct {
	SecretKey      string `env:"SECRET_KEY,expand"`
	PriceID        string `env:"PRICE_ID,expand"`
	PublishableKey string `env:"PUBLISHABLE_KEY,expand"`
}
