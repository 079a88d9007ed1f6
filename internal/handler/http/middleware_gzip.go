package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled; gzip allocation is the dominant cost of
// this middleware under load.
var (
	gzipWriters = sync.Pool{New: func() any { return gzip.NewWriter(io.Discard) }}
	gzipReaders = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip transparently inflates gzip-encoded request bodies and, when the
// client advertises gzip support, deflates the response.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			reader := gzipReaders.Get().(*gzip.Reader)
			if err := reader.Reset(r.Body); err != nil {
				gzipReaders.Put(reader)
				http.Error(w, "malformed gzip body", http.StatusBadRequest)
				return
			}

			r.Body = &pooledBodyReader{reader: reader}
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		writer := gzipWriters.Get().(*gzip.Writer)
		writer.Reset(w)

		w.Header().Add("Vary", "Accept-Encoding")
		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: writer}, r)

		writer.Close()
		gzipWriters.Put(writer)
	})
}

// pooledBodyReader returns its gzip.Reader to the pool exactly once, on Close.
type pooledBodyReader struct {
	reader *gzip.Reader
	closed bool
}

func (p *pooledBodyReader) Read(data []byte) (int, error) {
	return p.reader.Read(data)
}

func (p *pooledBodyReader) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	err := p.reader.Close()
	gzipReaders.Put(p.reader)
	return err
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
