package backup

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/video-trimmer-cli/db"
)

func testConfig(endpoint string) S3Config {
	return S3Config{
		Bucket:          "test-bucket",
		Region:          "us-east-1",
		Prefix:          "trimmer/",
		Endpoint:        endpoint,
		AccessKeyID:     "test-access-key",
		SecretAccessKey: "test-secret-key",
	}
}

func TestNewUploader(t *testing.T) {
	u, err := NewUploader(context.Background(), testConfig("http://localhost:4566"))
	require.NoError(t, err)
	assert.Equal(t, "test-bucket", u.bucket)
	assert.Equal(t, "us-east-1", u.region)
	assert.Equal(t, "trimmer/", u.prefix)
}

func TestNewSnapshot(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 2, 10, 30, 15, 0, time.FixedZone("CET", 3600))

	s := NewSnapshot([]db.Trim{{
		ID:        7,
		VideoPath: "/videos/match.mp4",
		Name:      "try",
		Start:     2500 * time.Millisecond,
		End:       7 * time.Second,
		CreatedAt: created,
	}}, now)

	require.Len(t, s.Selections, 1)
	assert.Equal(t, Selection{
		ID:        7,
		Video:     "/videos/match.mp4",
		Name:      "try",
		StartMs:   2500,
		EndMs:     7000,
		CreatedAt: created,
	}, s.Selections[0])
	assert.Equal(t, "trimmer/selections-20260302T093015Z.json", s.Key("trimmer/"))
}

func TestNewSnapshot_Empty(t *testing.T) {
	s := NewSnapshot(nil, time.Now())
	assert.NotNil(t, s.Selections)
	assert.Empty(t, s.Selections)
}

func TestUploadSnapshot_MockServer(t *testing.T) {
	var (
		mu      sync.Mutex
		gotPath string
		gotBody string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT method, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := NewUploader(context.Background(), testConfig(server.URL))
	require.NoError(t, err)

	s := NewSnapshot([]db.Trim{{ID: 1, VideoPath: "/videos/a.mp4", Name: "kick-off", End: time.Second}},
		time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC))
	key, url, err := u.UploadSnapshot(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "trimmer/selections-20260302T100000Z.json", key)
	assert.Equal(t, "https://test-bucket.s3.us-east-1.amazonaws.com/"+key, url)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, strings.HasSuffix(gotPath, "/test-bucket/"+key), gotPath)
	assert.Contains(t, gotBody, `"name": "kick-off"`)
}

func TestUpload_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	u, err := NewUploader(context.Background(), testConfig(server.URL))
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "k", strings.NewReader("x"))
	assert.ErrorContains(t, err, "upload to S3")
}
