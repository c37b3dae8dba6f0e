package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/Miraku17/PowerSystems-sub006/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

var bucket *oss.Bucket

var ErrNotConfigured = errors.New("object storage not configured")

// Init connects to the OSS bucket from env config. Missing credentials are
// not fatal; endpoints that upload files will return errors instead.
func Init() {
	if config.OSSBucket == "" || config.OSSEndpoint == "" {
		log.Println("⚠️  Object storage disabled (missing OSS config)")
		return
	}

	client, err := oss.New(config.OSSEndpoint, config.OSSKeyID, config.OSSKeySecret)
	if err != nil {
		log.Printf("⚠️  OSS client init failed: %v", err)
		return
	}

	b, err := client.Bucket(config.OSSBucket)
	if err != nil {
		log.Printf("⚠️  OSS bucket open failed: %v", err)
		return
	}

	bucket = b
	log.Printf("✅ OSS connected: bucket=%s", config.OSSBucket)
}

// Upload writes one object and returns its public URL.
func Upload(objectKey string, r io.Reader, contentType string) (string, error) {
	if bucket == nil {
		return "", ErrNotConfigured
	}

	opts := []oss.Option{}
	if contentType != "" {
		opts = append(opts, oss.ContentType(contentType))
	}
	if err := bucket.PutObject(objectKey, r, opts...); err != nil {
		return "", err
	}
	return PublicURL(objectKey), nil
}

func PublicURL(objectKey string) string {
	endpoint := strings.TrimPrefix(config.OSSEndpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")
	return fmt.Sprintf("https://%s.%s/%s", config.OSSBucket, endpoint, objectKey)
}

func Remove(objectKey string) error {
	if bucket == nil {
		return ErrNotConfigured
	}
	return bucket.DeleteObject(objectKey)
}
