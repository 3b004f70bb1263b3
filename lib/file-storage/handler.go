package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"hireflow-backend/config"
	s3client "hireflow-backend/s3"
)

type Provider interface {
	// UploadResume кладёт файл резюме в бакет и возвращает публичный локатор.
	// Ядро хранит локатор как непрозрачную строку.
	UploadResume(ctx context.Context, jobID, candidateName, fileName, contentType string, file []byte) (locator string, err error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadResume(ctx context.Context, jobID, candidateName, fileName, contentType string, file []byte) (string, error) {
	objectName := buildObjectName(jobID, candidateName, fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "ошибка загрузки резюме в хранилище")
	}
	return fmt.Sprintf("%s/%s/%s", config.Conf.S3.PublicURL, config.Conf.S3.BucketName, objectName), nil
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
	if err != nil {
		return err
	}
	return nil
}

// buildObjectName формирует ключ вида {jobId}/{candidateName}_{timestamp}.{ext}
func buildObjectName(jobID, candidateName, fileName string) string {
	ext := strings.TrimPrefix(filepath.Ext(fileName), ".")
	name := strings.ReplaceAll(strings.TrimSpace(candidateName), " ", "_")
	return fmt.Sprintf("%s/%s_%d.%s", jobID, name, time.Now().Unix(), ext)
}
