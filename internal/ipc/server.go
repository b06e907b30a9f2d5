package ipc

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync"
)

// Handler executes IPC commands on behalf of the daemon. Implementations
// are responsible for marshalling the work onto the daemon's own thread;
// handler methods are called from connection goroutines.
type Handler interface {
	Toggle() error
	Stop() error
	Reload() error
	Status() StatusData
}

// Server handles IPC requests from clients
type Server struct {
	handler      Handler
	logger       *slog.Logger
	listener     net.Listener
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new IPC server
func NewServer(handler Handler, logger *slog.Logger) *Server {
	return &Server{
		handler: handler,
		logger:  logger,
	}
}

// Start listens on the daemon's named pipe and begins accepting
// connections.
func (s *Server) Start() error {
	listener, err := listenPipe()
	if err != nil {
		return fmt.Errorf("failed to create IPC endpoint: %w", err)
	}
	s.logger.Info("IPC server listening", "endpoint", listener.Addr().String())
	s.Serve(listener)
	return nil
}

// Serve accepts connections on the given listener. Split from Start so
// tests can serve on an ordinary TCP or in-memory listener.
func (s *Server) Serve(listener net.Listener) {
	s.listener = listener
	go s.acceptLoop()
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			s.logger.Warn("IPC accept error", "error", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single IPC connection: one JSON request per
// line, one JSON response back.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	data, err := reader.ReadBytes('\n')
	if err != nil && err != io.EOF {
		s.logger.Warn("IPC read error", "error", err)
		return
	}

	req, err := ParseRequest(data)
	if err != nil {
		s.sendResponse(conn, NewErrorResponse(fmt.Sprintf("Invalid request: %v", err)))
		return
	}

	s.sendResponse(conn, s.handleCommand(req))
}

func (s *Server) handleCommand(req *Request) *Response {
	s.logger.Debug("IPC command received", "command", string(req.Command))

	switch req.Command {
	case CommandToggle:
		if err := s.handler.Toggle(); err != nil {
			return NewErrorResponse(fmt.Sprintf("Failed to toggle: %v", err))
		}
	case CommandStop:
		if err := s.handler.Stop(); err != nil {
			return NewErrorResponse(fmt.Sprintf("Failed to stop: %v", err))
		}
	case CommandReload:
		if err := s.handler.Reload(); err != nil {
			return NewErrorResponse(fmt.Sprintf("Failed to reload: %v", err))
		}
	case CommandGetStatus:
		resp, err := NewOKResponse(s.handler.Status())
		if err != nil {
			return NewErrorResponse(fmt.Sprintf("Failed to encode status: %v", err))
		}
		return resp
	default:
		return NewErrorResponse(fmt.Sprintf("Unknown command: %s", req.Command))
	}

	resp, _ := NewOKResponse(nil)
	return resp
}

func (s *Server) sendResponse(conn net.Conn, resp *Response) {
	data, err := resp.Marshal()
	if err != nil {
		s.logger.Warn("failed to marshal response", "error", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		s.logger.Warn("failed to send response", "error", err)
	}
}

// Stop gracefully shuts down the IPC server
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
}
