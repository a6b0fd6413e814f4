package middlewares

import (
	"bytes"
	"fmt"
	"net/http"

	"Yatube/cache"
	"Yatube/monitoring"
	"Yatube/utils/httpctx"

	"github.com/gin-gonic/gin"
)

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCacheKey identifies a rendered page for one viewer.
func PageCacheKey(c *gin.Context) string {
	viewer := "anon"
	if uid, ok := httpctx.CurrentUserID(c); ok {
		viewer = fmt.Sprintf("user:%d", uid)
	}
	return c.Request.URL.RequestURI() + "|" + viewer
}

// CachePage replays a stored copy of the page while it is fresh and stores
// successful GET renders. Must run after SessionMiddleware.
func CachePage(pc cache.PageCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := PageCacheKey(c)

		if page, ok := pc.Get(ctx, key); ok {
			monitoring.CacheHit()
			c.Header("X-Page-Cache", "hit")
			c.Data(page.Status, page.ContentType, page.Body)
			c.Abort()
			return
		}
		monitoring.CacheMiss()

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer
		c.Header("X-Page-Cache", "miss")
		c.Next()

		if writer.Status() != http.StatusOK || len(c.Errors) > 0 {
			return
		}
		pc.Set(ctx, key, &cache.CachedPage{
			Status:      http.StatusOK,
			ContentType: writer.Header().Get("Content-Type"),
			Body:        writer.body.Bytes(),
		})
	}
}
