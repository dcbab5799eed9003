package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"career_path_backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService saves uploaded files (avatars) and returns a public URL.
// Two backends: the local filesystem for development and MinIO for
// deployments.
type StorageService struct {
	cfg   *config.StorageConfig
	minio *minio.Client
}

func NewStorageService(cfg *config.StorageConfig) (*StorageService, error) {
	s := &StorageService{cfg: cfg}
	if cfg.Type == "minio" {
		client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
			Secure: cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		s.minio = client
	}
	return s, nil
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveImage stores an uploaded image under a generated name and returns
// its public URL.
func (s *StorageService) SaveImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	objectName := fmt.Sprintf("avatars/%s%s", uuid.New().String(), ext)

	if s.minio != nil {
		return s.saveToMinio(ctx, file, objectName)
	}
	return s.saveToLocal(file, objectName)
}

func (s *StorageService) saveToMinio(ctx context.Context, file *multipart.FileHeader, objectName string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	_, err = s.minio.PutObject(ctx, s.cfg.MinioBucket, objectName, src, file.Size, minio.PutObjectOptions{
		ContentType: file.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", fmt.Errorf("minio upload: %w", err)
	}

	scheme := "http"
	if s.cfg.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinioEndpoint, s.cfg.MinioBucket, objectName), nil
}

func (s *StorageService) saveToLocal(file *multipart.FileHeader, objectName string) (string, error) {
	dst := filepath.Join(s.cfg.LocalPath, objectName)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.BaseURL, "/"), objectName), nil
}

// PresignedURL hands out a short-lived direct download link when the
// MinIO backend is active; local files are served statically instead.
func (s *StorageService) PresignedURL(ctx context.Context, objectName string) (string, error) {
	if s.minio == nil {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.cfg.BaseURL, "/"), objectName), nil
	}
	u, err := s.minio.PresignedGetObject(ctx, s.cfg.MinioBucket, objectName, 15*time.Minute, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
