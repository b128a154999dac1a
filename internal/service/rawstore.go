package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	minio "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/netinventorypro/netinventorypro/internal/config"
	"github.com/netinventorypro/netinventorypro/pkg/logger"
)

// RawStore 原始回显归档存储
type RawStore interface {
	Write(ctx context.Context, meta RawMeta, content string) (string, error)
}

// RawMeta 归档元数据
type RawMeta struct {
	RunID      string
	DeviceIP   string
	DeviceName string
	Command    string
}

var commandSlugRe = regexp.MustCompile(`[^a-z0-9._\-]+`)

// objectPath 归档路径：<日期>/<批次>/<设备IP>/<命令>.txt
func (m RawMeta) objectPath() string {
	slug := commandSlugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(m.Command)), "_")
	if slug == "" {
		slug = "output"
	}
	return filepath.ToSlash(filepath.Join(
		time.Now().Format("20060102"),
		m.RunID,
		m.DeviceIP,
		slug+".txt",
	))
}

// NewRawStore 按配置创建归档写入器；backend 为 none 时返回 nil（不归档）
func NewRawStore(cfg *config.Config) RawStore {
	switch strings.ToLower(strings.TrimSpace(cfg.Storage.Backend)) {
	case "minio":
		store, err := newMinioRawStore(cfg.Storage.Minio)
		if err != nil {
			logger.Warnf("minio raw store unavailable, falling back to local: %v", err)
			return &LocalRawStore{baseDir: cfg.Storage.Local.BaseDir}
		}
		return store
	case "local":
		return &LocalRawStore{baseDir: cfg.Storage.Local.BaseDir}
	default:
		return nil
	}
}

// LocalRawStore 本地目录归档
type LocalRawStore struct {
	baseDir string
}

// Write 写入本地文件，返回落盘路径
func (s *LocalRawStore) Write(ctx context.Context, meta RawMeta, content string) (string, error) {
	base := s.baseDir
	if base == "" {
		base = "./data/raw"
	}
	target := filepath.Join(base, filepath.FromSlash(meta.objectPath()))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("failed to create raw dir: %w", err)
	}
	if err := os.WriteFile(target, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write raw file: %w", err)
	}
	return target, nil
}

// MinioRawStore 对象存储归档
type MinioRawStore struct {
	client *minio.Client
	bucket string
}

func newMinioRawStore(cfg config.MinioConfig) (*MinioRawStore, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("minio host not configured")
	}
	endpoint := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	return &MinioRawStore{client: client, bucket: cfg.Bucket}, nil
}

// Write 上传对象，返回对象键
func (s *MinioRawStore) Write(ctx context.Context, meta RawMeta, content string) (string, error) {
	key := meta.objectPath()
	reader := bytes.NewReader([]byte(content))
	_, err := s.client.PutObject(ctx, s.bucket, key, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s: %w", key, err)
	}
	return key, nil
}
