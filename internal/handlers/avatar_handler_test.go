package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAvatarRouter(repo *stubProfileRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAvatarHandler(repo, testConfig())

	r := gin.New()
	r.POST("/api/me/avatar", fakeAuth("user_abc"), h.Upload)
	return r
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestAvatarUploadRequiresFile(t *testing.T) {
	repo := &stubProfileRepo{}
	r := newAvatarRouter(repo)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/me/avatar", nil)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_avatar_file")
}

func TestAvatarUploadRejectsNonImage(t *testing.T) {
	repo := &stubProfileRepo{}
	r := newAvatarRouter(repo)

	body, contentType := multipartBody(t, "avatar", "nota.txt", []byte("isto não é uma imagem"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/me/avatar", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_image")
	assert.Empty(t, repo.avatarCalls)
}
