package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		gz, _ := gzip.NewWriterLevel(io.Discard, gzip.DefaultCompression)
		return gz
	},
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gz *gzip.Writer
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.gz.Write(b)
}

// Compression gzips response bodies for clients that accept it. Preflight and HEAD requests pass through.
func Compression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Accept-Encoding")
		if r.Method == http.MethodHead || r.Method == http.MethodOptions ||
			!strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w)
		defer func() {
			_ = gz.Close()
			gzipWriterPool.Put(gz)
		}()

		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gz: gz}, r)
	})
}

// clientCachePolicy is matched in order; prefix entries end in "/".
type clientCachePolicy struct {
	route  string
	header string
}

var clientCachePolicies = []clientCachePolicy{
	{"/api/mood/list", "public, max-age=3600"},
	{"/api/recommendations/correlations/", "public, max-age=600, must-revalidate"},
	{"/api/heatmap", "public, max-age=120, must-revalidate"},
	{"/api/heatmap/", "public, max-age=120, must-revalidate"},
}

const noStoreHeader = "private, no-cache, must-revalidate"

func cacheControlFor(path string) string {
	for _, p := range clientCachePolicies {
		if path == p.route || (strings.HasSuffix(p.route, "/") && strings.HasPrefix(path, p.route)) {
			return p.header
		}
	}
	return noStoreHeader
}

// CacheControl sets client cache headers by route. Recommendations and vibe questions are never reused.
func CacheControl(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			w.Header().Set("Cache-Control", cacheControlFor(r.URL.Path))
		} else {
			w.Header().Set("Cache-Control", noStoreHeader)
		}
		next.ServeHTTP(w, r)
	})
}

// ResponseOptimization combines cache control and compression
func ResponseOptimization(next http.Handler) http.Handler {
	return CacheControl(Compression(next))
}
