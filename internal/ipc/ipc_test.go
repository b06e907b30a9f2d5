package ipc

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"strings"
	"testing"
	"time"
)

type fakeHandler struct {
	toggles   int
	stops     int
	reloads   int
	toggleErr error
	status    StatusData
}

func (h *fakeHandler) Toggle() error { h.toggles++; return h.toggleErr }
func (h *fakeHandler) Stop() error   { h.stops++; return nil }
func (h *fakeHandler) Reload() error { h.reloads++; return nil }

func (h *fakeHandler) Status() StatusData { return h.status }

func startTestServer(t *testing.T, handler Handler) *Client {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	server := NewServer(handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server.Serve(listener)
	t.Cleanup(server.Stop)

	addr := listener.Addr().String()
	return newClientWithDial(func(timeout time.Duration) (net.Conn, error) {
		return net.DialTimeout("tcp", addr, timeout)
	})
}

func TestClientToggle(t *testing.T) {
	handler := &fakeHandler{}
	client := startTestServer(t, handler)

	if err := client.Toggle(); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if handler.toggles != 1 {
		t.Fatalf("expected 1 toggle, got %d", handler.toggles)
	}
}

func TestClientToggleErrorSurfaces(t *testing.T) {
	handler := &fakeHandler{toggleErr: errors.New("desktop surface not found")}
	client := startTestServer(t, handler)

	err := client.Toggle()
	if err == nil || !strings.Contains(err.Error(), "desktop surface not found") {
		t.Fatalf("expected handler error to surface, got %v", err)
	}
}

func TestClientStop(t *testing.T) {
	handler := &fakeHandler{}
	client := startTestServer(t, handler)

	if err := client.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}
	if handler.stops != 1 {
		t.Fatalf("expected 1 stop, got %d", handler.stops)
	}
}

func TestClientReload(t *testing.T) {
	handler := &fakeHandler{}
	client := startTestServer(t, handler)

	if err := client.Reload(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if handler.reloads != 1 {
		t.Fatalf("expected 1 reload, got %d", handler.reloads)
	}
}

func TestClientGetStatus(t *testing.T) {
	handler := &fakeHandler{status: StatusData{
		Mode:          "double_click",
		HookInstalled: true,
		IconsVisible:  false,
		UptimeSeconds: 42,
		DaemonRunning: true,
	}}
	client := startTestServer(t, handler)

	status, err := client.GetStatus()
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if status.Mode != "double_click" || !status.HookInstalled || status.IconsVisible {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.UptimeSeconds != 42 || !status.DaemonRunning {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestServerRejectsUnknownCommand(t *testing.T) {
	handler := &fakeHandler{}
	client := startTestServer(t, handler)

	_, err := client.sendRequest(&Request{Command: "DANCE"})
	if err == nil || !strings.Contains(err.Error(), "Unknown command") {
		t.Fatalf("expected unknown-command error, got %v", err)
	}
}

func TestServerRejectsMalformedRequest(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	server := NewServer(&fakeHandler{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	server.Serve(listener)
	defer server.Stop()

	conn, err := net.Dial("tcp", listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("this is not json\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	buf := make([]byte, 256)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := conn.Read(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(buf[:n]), "ERROR") {
		t.Fatalf("expected error response, got %q", string(buf[:n]))
	}
}

func TestClientFailsWhenDaemonNotRunning(t *testing.T) {
	client := newClientWithDial(func(timeout time.Duration) (net.Conn, error) {
		return nil, errors.New("connection refused")
	})

	err := client.Ping()
	if err == nil || !strings.Contains(err.Error(), "is the daemon running?") {
		t.Fatalf("expected connect hint, got %v", err)
	}
}
