package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/ginext"
)

const eventCachePrefix = "cache:events:"

type cachedBody struct {
	Status int
	Header map[string][]string
	Body   []byte
}

func cacheKey(c *ginext.Context) string {
	if c.Request.Method != http.MethodGet || c.FullPath() == "" {
		return ""
	}
	sum := sha1.Sum([]byte(c.Request.Method + "|" + c.Request.URL.Path + "|" + c.Request.URL.RawQuery))
	return eventCachePrefix + hex.EncodeToString(sum[:])
}

// ResponseCache serves repeated GETs of the public listing from
// redis for a short TTL. Only 2xx responses are stored.
func ResponseCache(rdb *redis.Client, ttl time.Duration) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		key := cacheKey(c)
		if key == "" {
			c.Next()
			return
		}

		if b, err := rdb.Get(c.Request.Context(), key).Bytes(); err == nil && len(b) > 0 {
			var hit cachedBody
			if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&hit); err == nil {
				for k, vals := range hit.Header {
					for _, v := range vals {
						c.Writer.Header().Add(k, v)
					}
				}
				c.Writer.Header().Set("X-Cache", "HIT")
				c.Status(hit.Status)
				_, _ = c.Writer.Write(hit.Body)
				c.Abort()
				return
			}
		}

		buf := &bytes.Buffer{}
		bw := &bufferedWriter{ResponseWriter: c.Writer, buf: buf}
		c.Writer = bw

		c.Next()

		if bw.Status() >= 200 && bw.Status() < 300 {
			item := cachedBody{
				Status: bw.Status(),
				Header: c.Writer.Header(),
				Body:   buf.Bytes(),
			}

			var o bytes.Buffer
			if err := gob.NewEncoder(&o).Encode(item); err == nil {
				_ = rdb.Set(context.Background(), key, o.Bytes(), ttl).Err()
			}
		}
	}
}

// InvalidateEventCache drops all cached listing responses after a
// successful mutation so stale capacity numbers never outlive an
// event change by more than one round trip.
func InvalidateEventCache(rdb *redis.Client) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Next()

		if c.Writer.Status() >= 400 {
			return
		}

		ctx := context.Background()
		iter := rdb.Scan(ctx, 0, eventCachePrefix+"*", 0).Iterator()
		for iter.Next(ctx) {
			_ = rdb.Del(ctx, iter.Val()).Err()
		}
	}
}

type bufferedWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}
