// Package storage implementa el almacén de fotos sobre S3 o un servicio compatible (MinIO).
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/jhoicas/Empleados-api/internal/application/ports"
	"github.com/jhoicas/Empleados-api/pkg/config"
)

var _ ports.AssetStore = (*S3AssetStore)(nil)

// S3AssetStore sube y borra fotos en un bucket S3.
type S3AssetStore struct {
	client    *s3.Client
	uploader  *manager.Uploader
	bucket    string
	region    string
	publicURL string
}

// NewS3AssetStore construye el cliente S3. No realiza llamadas de red; usar EnsureBucket
// para verificar el bucket al arrancar.
func NewS3AssetStore(ctx context.Context, cfg config.AssetConfig) (*S3AssetStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage: bucket vacío")
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cargar configuración AWS: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	})
	return &S3AssetStore{
		client:    client,
		uploader:  manager.NewUploader(client),
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		publicURL: cfg.PublicURL,
	}, nil
}

// EnsureBucket crea el bucket si no existe.
func (s *S3AssetStore) EnsureBucket(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err == nil {
		return nil
	}
	in := &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}
	if s.region != "" && s.region != "us-east-1" {
		in.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(s.region),
		}
	}
	if _, err := s.client.CreateBucket(ctx, in); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		if errors.As(err, &owned) {
			return nil
		}
		return fmt.Errorf("crear bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Upload guarda data bajo "<namespace>/<uuid>" y devuelve su URL pública.
func (s *S3AssetStore) Upload(ctx context.Context, namespace string, data []byte, contentType string) (string, error) {
	key := ObjectKey(namespace, uuid.New().String())
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("subir %s a %s: %w", key, s.bucket, err)
	}
	return s.ObjectURL(key), nil
}

// Delete borra el objeto con clave publicID.
func (s *S3AssetStore) Delete(ctx context.Context, publicID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(publicID),
	})
	if err != nil {
		return fmt.Errorf("borrar %s de %s: %w", publicID, s.bucket, err)
	}
	return nil
}

// ObjectURL URL pública de un objeto: <publicURL>/<bucket>/<key>.
func (s *S3AssetStore) ObjectURL(key string) string {
	return strings.TrimRight(s.publicURL, "/") + "/" + s.bucket + "/" + key
}

// ObjectKey clave de objeto dentro del namespace, sin extensión.
func ObjectKey(namespace, name string) string {
	namespace = strings.Trim(namespace, "/")
	if namespace == "" {
		return name
	}
	return namespace + "/" + name
}
