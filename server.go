package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strings"
	"unicode"
)

// Server is a deliberately small HTTP/1.1 server.  It serves one connection
// at a time: the request line is read, the handler registered for the exact
// path runs, one response is written and the connection is closed.  There is
// no keep-alive and no request header or body parsing.
type Server struct {
	addr   string
	routes map[string]Handler
}

// NewServer returns a server that will listen on addr.
func NewServer(addr string) *Server {
	return &Server{
		addr:   addr,
		routes: make(map[string]Handler),
	}
}

// Register binds h to path.  Matching is exact and case sensitive; a later
// registration for the same path replaces the earlier one.  Register must not
// be called once Serve is running.
func (s *Server) Register(path string, h Handler) {
	s.routes[path] = h
}

// Listen opens the TCP listener for the configured address.
func (s *Server) Listen() (net.Listener, error) {
	return net.Listen("tcp", s.addr)
}

// Serve accepts connections on l and handles them sequentially.  It returns
// nil once l is closed.
func (s *Server) Serve(l net.Listener) error {
	log.Printf("Listening on http://%s", l.Addr())
	for {
		conn, err := l.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}
		s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer func() {
		if err := conn.Close(); err != nil {
			log.Printf("Failed to close connection: %v", err)
		}
	}()

	req, err := readRequest(bufio.NewReader(conn))
	if err != nil {
		log.Printf("Failed to read request line from %s: %v", conn.RemoteAddr(), err)
		return
	}

	w := newResponseWriter()
	defer func() {
		if err := w.writeTo(conn); err != nil {
			log.Printf("Failed to write response to %s: %v", conn.RemoteAddr(), err)
		}
	}()
	s.dispatch(req, w)
}

// dispatch runs the handler for req.Path.  A panicking handler is reported as
// a 500 so that the client still gets a response.
func (s *Server) dispatch(req *Request, w *ResponseWriter) {
	defer func() {
		if v := recover(); v != nil {
			log.Printf("Handler for %s %s panicked: %v", req.Method, req.Path, v)
			w.Reset()
			w.SetStatus(StatusInternalError)
		}
	}()

	h, ok := s.routes[req.Path]
	if !ok {
		w.SetStatus(StatusNotFound)
		return
	}
	h.Handle(req, w)
}

// readRequest reads the request line.  A final line that ends at EOF without
// a newline is accepted as long as it carries data.
func readRequest(br *bufio.Reader) (*Request, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return nil, err
		}
	}
	return parseRequestLine(line), nil
}

// parseRequestLine splits line on single spaces.  The path is the second
// token with trailing slashes removed; a line without one yields an empty
// path, which no route matches.
func parseRequestLine(line string) *Request {
	parts := strings.Split(strings.TrimRightFunc(line, unicode.IsSpace), " ")
	req := &Request{Method: parts[0]}
	if len(parts) > 1 {
		req.Path = strings.TrimRight(parts[1], "/")
	}
	return req
}

// writeTo serialises the response: status line, Content-Length, blank line
// and body.
func (w *ResponseWriter) writeTo(out io.Writer) error {
	bw := bufio.NewWriter(out)
	fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", w.status, statusText(w.status))
	fmt.Fprintf(bw, "Content-Length: %d\r\n", w.body.Len())
	bw.WriteString("\r\n")
	bw.Write(w.body.Bytes())
	return bw.Flush()
}
