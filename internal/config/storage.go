package config

import "time"

type Storage struct {
	Database Database `envPrefix:"DATABASE_"`
	Tasks    Tasks    `envPrefix:"TASKS_"`
	Avatars  Avatars  `envPrefix:"AVATARS_"`
}

type Database struct {
	DSN   string        `env:"DSN" envDefault:"data.sqlite"`
	Cache DatabaseCache `envPrefix:"CACHE_"`
}

type DatabaseCache struct {
	Users CacheConfig `envPrefix:"USERS_"`
}

type CacheConfig struct {
	Enabled bool          `env:"ENABLED,expand" envDefault:"true"`
	Size    int           `env:"SIZE,expand" envDefault:"128"`
	TTL     time.Duration `env:"TTL,expand" envDefault:"5m"`
}

type Tasks struct {
	// Store selects the task store implementation, "gorm" or "memory"
	Store string `env:"STORE,expand" envDefault:"gorm"`
	// SnapshotTTL bounds the lifetime of the cached board snapshot
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL,expand" envDefault:"30s"`
}

type Avatars struct {
	DSN     string `env:"DSN,expand" envDefault:"local://./avatars"`
	MaxSize int64  `env:"MAX_SIZE,expand" envDefault:"1048576"`
}
