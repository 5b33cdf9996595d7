package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const mebibyte = 1024 * 1024

type Settings struct {
	ServerPort  int
	Environment string

	CloudName        string
	CloudAPIKey      string
	CloudAPISecret   string
	CloudAPIBaseURL  string
	CloudHTTPTimeout time.Duration

	ImagesFolder string
	VideosFolder string

	MaxImageSize      int64
	MaxVideoSize      int64
	UploadMaxRetries  int
	UploadBackoffBase time.Duration
	ListMaxResults    int

	ExportArchiveName string
	ExportFolder      string
	ExportConcurrency int

	PingCacheTTL time.Duration

	RedisAddr     string
	RedisPassword string

	MinioEndpoint   string
	MinioAccessKey  string
	MinioSecretKey  string
	MinioUseSSL     bool
	SnapshotsBucket string
	SnapshotLinkTTL time.Duration
}

// SnapshotsEnabled reports whether both the task queue and the archive
// bucket are configured.
func (s *Settings) SnapshotsEnabled() bool {
	return s.RedisAddr != "" && s.MinioEndpoint != ""
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	setDefaults(v)

	for _, key := range []string{"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET"} {
		if strings.TrimSpace(v.GetString(key)) == "" {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	s := &Settings{
		ServerPort:  v.GetInt("SERVER_PORT"),
		Environment: v.GetString("APP_ENV"),

		CloudName:        v.GetString("CLOUDINARY_CLOUD_NAME"),
		CloudAPIKey:      v.GetString("CLOUDINARY_API_KEY"),
		CloudAPISecret:   v.GetString("CLOUDINARY_API_SECRET"),
		CloudAPIBaseURL:  strings.TrimRight(v.GetString("CLOUDINARY_API_BASE_URL"), "/"),
		CloudHTTPTimeout: time.Duration(v.GetInt("CLOUDINARY_HTTP_TIMEOUT")) * time.Second,

		ImagesFolder: strings.Trim(v.GetString("IMAGES_FOLDER"), "/"),
		VideosFolder: strings.Trim(v.GetString("VIDEOS_FOLDER"), "/"),

		MaxImageSize:      v.GetInt64("MAX_IMAGE_SIZE_MB") * mebibyte,
		MaxVideoSize:      v.GetInt64("MAX_VIDEO_SIZE_MB") * mebibyte,
		UploadMaxRetries:  v.GetInt("UPLOAD_MAX_RETRIES"),
		UploadBackoffBase: time.Duration(v.GetInt("UPLOAD_BACKOFF_BASE_MS")) * time.Millisecond,
		ListMaxResults:    v.GetInt("LIST_MAX_RESULTS"),

		ExportArchiveName: v.GetString("EXPORT_ARCHIVE_NAME"),
		ExportFolder:      strings.Trim(v.GetString("EXPORT_FOLDER"), "/"),
		ExportConcurrency: v.GetInt("EXPORT_CONCURRENCY"),

		PingCacheTTL: time.Duration(v.GetInt("PING_CACHE_TTL")) * time.Second,

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),

		MinioEndpoint:   v.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  v.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  v.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     v.GetBool("MINIO_USE_SSL"),
		SnapshotsBucket: v.GetString("SNAPSHOTS_BUCKET"),
		SnapshotLinkTTL: time.Duration(v.GetInt("SNAPSHOT_LINK_TTL")) * time.Second,
	}

	if s.UploadMaxRetries < 1 {
		return nil, fmt.Errorf("UPLOAD_MAX_RETRIES must be at least 1, got %d", s.UploadMaxRetries)
	}
	if s.ExportConcurrency < 1 {
		return nil, fmt.Errorf("EXPORT_CONCURRENCY must be at least 1, got %d", s.ExportConcurrency)
	}

	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("CLOUDINARY_API_BASE_URL", "https://api.cloudinary.com/v1_1")
	v.SetDefault("CLOUDINARY_HTTP_TIMEOUT", 120)
	v.SetDefault("IMAGES_FOLDER", "casamiento-fotos")
	v.SetDefault("VIDEOS_FOLDER", "casamiento-videos")
	v.SetDefault("MAX_IMAGE_SIZE_MB", 10)
	v.SetDefault("MAX_VIDEO_SIZE_MB", 100)
	v.SetDefault("UPLOAD_MAX_RETRIES", 3)
	v.SetDefault("UPLOAD_BACKOFF_BASE_MS", 1000)
	v.SetDefault("LIST_MAX_RESULTS", 500)
	v.SetDefault("EXPORT_ARCHIVE_NAME", "fotos-casamiento.zip")
	v.SetDefault("EXPORT_FOLDER", "fotos-casamiento")
	v.SetDefault("EXPORT_CONCURRENCY", 8)
	v.SetDefault("PING_CACHE_TTL", 60)
	v.SetDefault("SNAPSHOTS_BUCKET", "snapshots")
	v.SetDefault("SNAPSHOT_LINK_TTL", 3600)
}
