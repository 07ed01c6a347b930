// Package objectstore keeps uploaded media (curriculum covers, avatars) in a
// MinIO bucket with a public read policy.
package objectstore

import (
	"context"
	"encoding/json"
	"io"
	"net/url"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/logger"
	"rmu/credit_bank_service/storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

type Store struct {
	client *minio.Client
	bucket string
	base   *url.URL
	log    logger.LoggerI
}

// New connects to MinIO and creates the bucket on first use.
func New(ctx context.Context, cfg config.Config, log logger.LoggerI) (storage.FileStorageI, error) {
	client, err := minio.New(cfg.MinioHost, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKeyID, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "minio.New")
	}

	s := &Store{
		client: client,
		bucket: cfg.MinioBucket,
		base:   client.EndpointURL(),
		log:    log,
	}

	if err = s.ensureBucket(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return errors.Wrap(err, "bucket exists")
	}
	if exists {
		return nil
	}

	if err = s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return errors.Wrap(err, "make bucket")
	}

	policy, err := json.Marshal(publicReadPolicy(s.bucket))
	if err != nil {
		return err
	}

	if err = s.client.SetBucketPolicy(ctx, s.bucket, string(policy)); err != nil {
		return errors.Wrap(err, "set bucket policy")
	}

	s.log.Info("bucket created", logger.String("bucket", s.bucket))
	return nil
}

func publicReadPolicy(bucket string) map[string]any {
	return map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": map[string]string{"AWS": "*"},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{"arn:aws:s3:::" + bucket + "/*"},
			},
		},
	}
}

// Upload stores r under objectName and returns its public URL.
func (s *Store) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "put object")
	}

	return s.base.JoinPath(s.bucket, objectName).String(), nil
}

// Remove deletes objectName. A missing object is not an error.
func (s *Store) Remove(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil && minio.ToErrorResponse(err).Code != "NoSuchKey" {
		return errors.Wrap(err, "remove object")
	}
	return nil
}
