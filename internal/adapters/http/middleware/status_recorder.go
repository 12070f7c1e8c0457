// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// Stack returns the chain the router installs behind CORS:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → Handler
//
// Each middleware is a func(http.Handler) http.Handler.
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler sent.
// code stays 0 until the first WriteHeader or Write.
type statusRecorder struct {
	http.ResponseWriter
	code  int
	bytes int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// status reports the status the client received, 200 if nothing was sent.
func (s *statusRecorder) status() int {
	if s.code == 0 {
		return http.StatusOK
	}
	return s.code
}

// started reports whether the header has gone out.
func (s *statusRecorder) started() bool { return s.code != 0 }

func (s *statusRecorder) WriteHeader(code int) {
	if s.started() {
		return
	}
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.started() {
		s.code = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }
