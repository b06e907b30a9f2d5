package ipc

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"time"
)

const defaultTimeout = 5 * time.Second

// Client handles IPC communication with the daemon
type Client struct {
	timeout time.Duration
	dial    func(timeout time.Duration) (net.Conn, error)
}

// NewClient creates a client talking to the daemon's named pipe.
func NewClient() *Client {
	return &Client{
		timeout: defaultTimeout,
		dial:    dialPipe,
	}
}

// newClientWithDial is used by tests to substitute the transport.
func newClientWithDial(dial func(timeout time.Duration) (net.Conn, error)) *Client {
	return &Client{
		timeout: defaultTimeout,
		dial:    dial,
	}
}

// sendRequest sends a request and waits for a response
func (c *Client) sendRequest(req *Request) (*Response, error) {
	conn, err := c.dial(c.timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w (is the daemon running?)", err)
	}
	defer conn.Close()

	conn.SetDeadline(time.Now().Add(c.timeout))

	reqData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	reqData = append(reqData, '\n')
	if _, err := conn.Write(reqData); err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	reader := bufio.NewReader(conn)
	respData, err := reader.ReadBytes('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(respData, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if resp.Status == "ERROR" {
		return nil, fmt.Errorf("daemon error: %s", resp.Error)
	}

	return &resp, nil
}

// Toggle asks the running daemon to flip desktop icon visibility.
func (c *Client) Toggle() error {
	_, err := c.sendRequest(&Request{Command: CommandToggle})
	return err
}

// Stop asks the running daemon to exit.
func (c *Client) Stop() error {
	_, err := c.sendRequest(&Request{Command: CommandStop})
	return err
}

// Reload asks the running daemon to reload its configuration.
func (c *Client) Reload() error {
	_, err := c.sendRequest(&Request{Command: CommandReload})
	return err
}

// GetStatus retrieves daemon status
func (c *Client) GetStatus() (*StatusData, error) {
	resp, err := c.sendRequest(&Request{Command: CommandGetStatus})
	if err != nil {
		return nil, err
	}

	var status StatusData
	if err := json.Unmarshal(resp.Data, &status); err != nil {
		return nil, fmt.Errorf("failed to parse status data: %w", err)
	}

	return &status, nil
}

// Ping checks if the daemon is responding
func (c *Client) Ping() error {
	_, err := c.GetStatus()
	return err
}
