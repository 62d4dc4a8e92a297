package utils

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	appconfig "findly-api/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("treasures", "Golden Lamp #2", ".PNG")
	assert.Regexp(t, regexp.MustCompile(`^treasures/golden-lamp-2-[0-9a-f-]{36}\.png$`), key)

	assert.Regexp(t, `^treasures/object-[0-9a-f-]{36}$`, ObjectKey("/treasures/", "!!!", ""))
	assert.True(t, strings.HasSuffix(ObjectKey("x", "y", "jpg"), ".jpg"))
	assert.NotEqual(t, ObjectKey("x", "y", ".jpg"), ObjectKey("x", "y", ".jpg"))
}

func TestR2StoreUpload(t *testing.T) {
	var (
		gotPath, gotType, gotBody string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		b, _ := io.ReadAll(r.Body)
		gotPath, gotType, gotBody = r.URL.Path, r.Header.Get("Content-Type"), string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	store, err := NewR2Store(context.Background(), appconfig.StorageConfig{
		AccessKeyID:     "key",
		AccessKeySecret: "secret",
		Bucket:          "findly",
		Endpoint:        srv.URL,
		PublicBaseURL:   "https://cdn.findly.app/",
	})
	require.NoError(t, err)

	body := "png-bytes"
	url, err := store.Upload(context.Background(), "treasures/lamp.png", strings.NewReader(body), int64(len(body)), "image/png")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.findly.app/treasures/lamp.png", url)
	assert.Equal(t, "/findly/treasures/lamp.png", gotPath)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, body, gotBody)
}
