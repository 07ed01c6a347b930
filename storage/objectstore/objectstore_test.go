package objectstore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"rmu/credit_bank_service/config"
	"rmu/credit_bank_service/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicReadPolicy(t *testing.T) {
	raw, err := json.Marshal(publicReadPolicy("covers"))
	require.NoError(t, err)

	var doc struct {
		Version   string
		Statement []struct {
			Effect   string
			Action   []string
			Resource []string
		}
	}
	require.NoError(t, json.Unmarshal(raw, &doc))

	require.Len(t, doc.Statement, 1)
	assert.Equal(t, "Allow", doc.Statement[0].Effect)
	assert.Equal(t, []string{"s3:GetObject"}, doc.Statement[0].Action)
	assert.Equal(t, []string{"arn:aws:s3:::covers/*"}, doc.Statement[0].Resource)
}

// Runs against a live MinIO when MINIO_TEST_ENDPOINT is set.
func TestUploadAndRemove(t *testing.T) {
	endpoint := os.Getenv("MINIO_TEST_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_TEST_ENDPOINT not set")
	}

	cfg := config.Config{
		MinioHost:        endpoint,
		MinioAccessKeyID: os.Getenv("MINIO_TEST_ACCESS_KEY"),
		MinioSecretKey:   os.Getenv("MINIO_TEST_SECRET_KEY"),
		MinioBucket:      "test-" + strings.ToLower(uuid.NewString()[:8]),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	store, err := New(ctx, cfg, logger.Nop())
	require.NoError(t, err)

	body := "cover"
	link, err := store.Upload(ctx, "curriculums/a.png", strings.NewReader(body), int64(len(body)), "image/png")
	require.NoError(t, err)
	assert.Contains(t, link, cfg.MinioBucket+"/curriculums/a.png")

	resp, err := http.Get(link)
	require.NoError(t, err)
	got, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, body, string(got))

	require.NoError(t, store.Remove(ctx, "curriculums/a.png"))
	require.NoError(t, store.Remove(ctx, "curriculums/a.png"))
}
