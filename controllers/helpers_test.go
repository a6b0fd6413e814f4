package controllers

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"Yatube/auth"
	"Yatube/cache"
	"Yatube/config"
	"Yatube/models"
	"Yatube/storage"
	"Yatube/utils/testdb"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const postMarker = `<article class="post">`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		AppEnv:              "test",
		PageSize:            10,
		IndexCacheTTL:       20 * time.Second,
		MediaURL:            "/media/",
		RateLimitRPS:        1000,
		RateLimitBurst:      1000,
		LoginRateLimitBurst: 1000,
	}
	images, err := storage.NewLocalStore(t.TempDir(), cfg.MediaURL)
	require.NoError(t, err)

	server, err := NewServer(cfg, testdb.Open(t), cache.NewMemoryPageCache(64, cfg.IndexCacheTTL), images)
	require.NoError(t, err)
	return server
}

func sessionCookie(t *testing.T, user *models.User) *http.Cookie {
	t.Helper()
	token, err := auth.CreateToken(user.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func (server *Server) get(t *testing.T, path string, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if user != nil {
		req.AddCookie(sessionCookie(t, user))
	}
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)
	return w
}

func (server *Server) submitForm(t *testing.T, path string, user *models.User, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if user != nil {
		req.AddCookie(sessionCookie(t, user))
	}
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)
	return w
}

func (server *Server) postMultipart(t *testing.T, path string, user *models.User, fields map[string]string, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("image", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if user != nil {
		req.AddCookie(sessionCookie(t, user))
	}
	w := httptest.NewRecorder()
	server.Router.ServeHTTP(w, req)
	return w
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{B: 255, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}
