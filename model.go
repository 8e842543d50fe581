package main

import "bytes"

// Request is the parsed request line of a single connection.  Only the
// method and the path are kept; headers and bodies are never read.
type Request struct {
	Method string // verb, e.g. "PUT"
	Path   string // route with trailing slashes removed
}

// ResponseWriter accumulates the status and body of a response.  The server
// serialises it to the connection exactly once, after the handler returns.
type ResponseWriter struct {
	status int
	body   bytes.Buffer
}

func newResponseWriter() *ResponseWriter {
	return &ResponseWriter{status: StatusOK}
}

// SetStatus replaces the status code.  200 is the default.
func (w *ResponseWriter) SetStatus(code int) { w.status = code }

// Status returns the current status code.
func (w *ResponseWriter) Status() int { return w.status }

// Write appends p to the body.
func (w *ResponseWriter) Write(p []byte) (int, error) { return w.body.Write(p) }

// Reset drops anything written to the body so far.
func (w *ResponseWriter) Reset() { w.body.Reset() }

// Handler responds to a request.  Implementations must not keep w after
// returning.
type Handler interface {
	Handle(r *Request, w *ResponseWriter)
}

// HandlerFunc lets an ordinary function act as a Handler.
type HandlerFunc func(r *Request, w *ResponseWriter)

// Handle calls f(r, w).
func (f HandlerFunc) Handle(r *Request, w *ResponseWriter) { f(r, w) }

// Status codes produced by this server.
const (
	StatusOK               = 200
	StatusNoContent        = 204
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusInternalError    = 500
)

// statusText returns the reason phrase for code.  Anything not in the table
// is reported as an internal server error.
func statusText(code int) string {
	switch code {
	case StatusOK:
		return "OK"
	case StatusNoContent:
		return "NO CONTENT"
	case StatusNotFound:
		return "NOT FOUND"
	case StatusMethodNotAllowed:
		return "METHOD NOT ALLOWED"
	default:
		return "INTERNAL SERVER ERROR"
	}
}
