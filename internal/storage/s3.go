package storage

import (
	"io"
	"strings"

	"forever-captured-server/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Store S3 兼容对象存储，凭证走 AWS SDK 默认链（环境变量/实例角色）
type S3Store struct {
	client    *s3.S3
	uploader  *s3manager.Uploader
	bucket    string
	keyPrefix string
	publicURL string
	acl       string
}

func newS3Client(cfg config.StorageConfig) *session.Session {
	awsConfig := aws.Config{
		Region: aws.String(cfg.S3Region),
	}
	if cfg.S3Endpoint != "" {
		// MinIO 等兼容实现需要 path-style 访问
		awsConfig.Endpoint = aws.String(cfg.S3Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	return session.Must(session.NewSession(&awsConfig))
}

func newS3Store(sess *session.Session, cfg config.StorageConfig, keyPrefix string) *S3Store {
	publicURL := cfg.S3PublicURL
	if publicURL != "" && !strings.HasSuffix(publicURL, "/") {
		publicURL += "/"
	}
	return &S3Store{
		client:    s3.New(sess),
		uploader:  s3manager.NewUploader(sess),
		bucket:    cfg.S3Bucket,
		keyPrefix: keyPrefix,
		publicURL: publicURL,
		acl:       cfg.S3ACL,
	}
}

func (s *S3Store) Save(key string, reader io.Reader, mimeType string) error {
	input := &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.keyPrefix + key),
		Body:        reader,
		ContentType: aws.String(mimeType),
	}
	if s.acl != "" {
		input.ACL = aws.String(s.acl)
	}
	_, err := s.uploader.Upload(input)
	return err
}

func (s *S3Store) Delete(key string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.keyPrefix + key),
	})
	return err
}

func (s *S3Store) PublicURL(key string) string {
	if s.publicURL != "" {
		return s.publicURL + s.keyPrefix + key
	}
	return "https://" + s.bucket + ".s3.amazonaws.com/" + s.keyPrefix + key
}

func (s *S3Store) Backend() string {
	return "s3"
}
