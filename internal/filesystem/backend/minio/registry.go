package minio

import (
	"context"
	"net/url"

	"github.com/bornholm/maven/internal/core/port"
	"github.com/bornholm/maven/internal/filesystem/backend"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

func init() {
	backend.RegisterBackendFactory("minio", FromDSN)
}

type Config struct {
	Endpoint     string
	Bucket       string
	CreateBucket bool
	Options      minio.Options
}

func FromDSN(dsn *url.URL) (port.AvatarStore, error) {
	conf := &Config{}

	configurations := []ConfigureFunc{
		configureBucket,
		configureCredentials,
		configureRegion,
		configureEndpoint,
		configureCreateBucket,
	}

	for _, configure := range configurations {
		if err := configure(dsn, conf); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	client, err := minio.New(conf.Endpoint, &conf.Options)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	store := NewAvatarStore(client, conf.Bucket, dsn.Path)

	if conf.CreateBucket {
		if err := store.ensureBucket(context.Background(), conf.Options.Region); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	return store, nil
}

type ConfigureFunc func(dsn *url.URL, conf *Config) error

const (
	paramToken = "token"
)

func configureCredentials(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	if dsn.User != nil {
		id := dsn.User.Username()
		secret, _ := dsn.User.Password()
		token := query.Get(paramToken)

		dsn.User = nil
		query.Del(paramToken)

		conf.Options.Creds = credentials.NewStaticV4(id, secret, token)
	}

	dsn.RawQuery = query.Encode()

	return nil
}

const (
	paramBucket = "bucket"
)

func configureBucket(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	var bucket string
	if query.Has(paramBucket) {
		bucket = query.Get(paramBucket)
		query.Del(paramBucket)
		dsn.RawQuery = query.Encode()
	} else {
		bucket = "avatars"
	}

	conf.Bucket = bucket

	return nil
}

const (
	paramRegion = "region"
)

func configureRegion(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	var region string
	if query.Has(paramRegion) {
		region = query.Get(paramRegion)
		query.Del(paramRegion)
		dsn.RawQuery = query.Encode()
	} else {
		region = "us-east-1"
	}

	conf.Options.Region = region

	return nil
}

const (
	paramSecure = "secure"
)

func configureEndpoint(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	conf.Endpoint = dsn.Host

	if query.Get(paramSecure) == "true" {
		query.Del(paramSecure)
		dsn.RawQuery = query.Encode()
		conf.Options.Secure = true
	}

	return nil
}

const (
	paramCreateBucket = "createBucket"
)

func configureCreateBucket(dsn *url.URL, conf *Config) error {
	query := dsn.Query()

	if query.Has(paramCreateBucket) {
		conf.CreateBucket = query.Get(paramCreateBucket) == "true"
		query.Del(paramCreateBucket)
		dsn.RawQuery = query.Encode()
	}

	return nil
}
