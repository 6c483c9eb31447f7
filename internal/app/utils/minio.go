package utils

import (
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"

	"port_tracker/internal/app/config"
)

// NewMinioClient - клиент хранилища фотографий кораблей. Ошибка
// подключения не валит сервис: API работает без картинок.
func NewMinioClient(cfg *config.Config) *minio.Client {
	if cfg.MinioEndpoint == "" {
		logrus.Warn("MinIO endpoint not configured, image upload disabled")
		return nil
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: false,
	})
	if err != nil {
		logrus.Errorf("MinIO init error: %v", err)
		return nil
	}
	return client
}
