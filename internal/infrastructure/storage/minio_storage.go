package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinioConfig holds the S3-compatible connection settings.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// MinioStorage stores uploads as objects in an S3-compatible bucket. Object
// keys are the same relative paths LocalStorage would use on disk.
type MinioStorage struct {
	client    *minio.Client
	bucket    string
	publicURL string
	log       *logrus.Logger
}

// NewMinioStorage connects to the endpoint and checks that the bucket exists.
func NewMinioStorage(ctx context.Context, cfg MinioConfig, log *logrus.Logger) (*MinioStorage, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("minio configuration incomplete")
	}

	endpoint, secure, err := normaliseEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("minio bucket does not exist: %s", cfg.Bucket)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if secure {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}

	return &MinioStorage{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
		log:       log,
	}, nil
}

func (s *MinioStorage) Save(ctx context.Context, content io.Reader, originalName, folder, desiredName string) (*StoredObject, error) {
	folder = NormalizeFolder(folder)
	name := ResolveName(originalName, desiredName)
	key := RelativePath(folder, name)

	opts := minio.PutObjectOptions{ContentType: contentTypeFor(name)}
	if _, err := s.client.PutObject(ctx, s.bucket, key, content, -1, opts); err != nil {
		return nil, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	s.log.Debugf("Stored object %s/%s", s.bucket, key)

	return &StoredObject{
		URL:  JoinURL(s.publicURL, key),
		Path: key,
	}, nil
}

func (s *MinioStorage) Remove(ctx context.Context, reference string) error {
	key := CleanReference(reference, s.publicURL)
	if key == "" {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}

	s.log.Debugf("Removed object %s/%s", s.bucket, key)
	return nil
}

// normaliseEndpoint accepts either "minio:9000" or "http(s)://minio:9000".
func normaliseEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		return u.Host, u.Scheme == "https", nil
	}

	return raw, false, nil
}

func contentTypeFor(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
