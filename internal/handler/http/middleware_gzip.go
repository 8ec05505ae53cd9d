package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	gzipWriters = sync.Pool{
		New: func() any { return gzip.NewWriter(io.Discard) },
	}
	gzipReaders = sync.Pool{
		New: func() any { return new(gzip.Reader) },
	}
)

// withGZip decompresses gzip request bodies and compresses responses for
// clients that advertise gzip support. Writers and readers are pooled.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			zr := gzipReaders.Get().(*gzip.Reader)
			if err := zr.Reset(r.Body); err != nil {
				gzipReaders.Put(zr)
				http.Error(w, "Invalid gzip data", http.StatusBadRequest)
				return
			}

			r.Body = &gzipRequestBody{reader: zr}
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zw := gzipWriters.Get().(*gzip.Writer)
		zw.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, zw: zw}, r)

		zw.Close()
		gzipWriters.Put(zw)
	})
}

// gzipRequestBody returns the pooled reader on Close.
type gzipRequestBody struct {
	reader *gzip.Reader
}

func (b *gzipRequestBody) Read(p []byte) (int, error) {
	return b.reader.Read(p)
}

func (b *gzipRequestBody) Close() error {
	err := b.reader.Close()
	gzipReaders.Put(b.reader)
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	zw *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	// Any Content-Length set by the handler refers to the uncompressed body.
	w.Header().Del("Content-Length")
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}
