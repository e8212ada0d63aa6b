// Package mpv talks to an mpv process over its JSON IPC socket.
package mpv

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"
)

const (
	// DefaultSocketPath is used when no socket path is configured.
	DefaultSocketPath = "/tmp/video-trimmer-mpv.sock"
	// DefaultTimeout bounds one command round trip.
	DefaultTimeout = 2 * time.Second
)

var (
	// ErrNotConnected is returned by commands issued before Connect.
	ErrNotConnected = errors.New("mpv: not connected")
	// ErrSocketNotFound is returned when nothing listens on the socket path.
	ErrSocketNotFound = errors.New("mpv: socket not found - is mpv running with --input-ipc-server?")
)

// request is one line sent to mpv: {"command": [...], "request_id": N}.
type request struct {
	Command   []any  `json:"command"`
	RequestID uint64 `json:"request_id"`
}

// reply is a command result. Event lines decode with RequestID zero.
type reply struct {
	Data      any    `json:"data"`
	RequestID uint64 `json:"request_id"`
	Error     string `json:"error"`
}

// Client is a synchronous mpv IPC client. Commands are serialized; each waits
// for the reply carrying its own request ID.
type Client struct {
	socketPath string
	timeout    time.Duration

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	nextID uint64
}

// NewClient returns an unconnected client for socketPath, or DefaultSocketPath when empty.
func NewClient(socketPath string) *Client {
	if socketPath == "" {
		socketPath = DefaultSocketPath
	}
	return &Client{socketPath: socketPath, timeout: DefaultTimeout}
}

// SetTimeout changes how long a command waits for its reply. Zero disables the limit.
func (c *Client) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = d
}

// SocketPath returns the socket path this client dials.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Connect dials the socket. It is a no-op when already connected.
func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return nil
	}

	conn, err := net.Dial("unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSocketNotFound, err)
	}
	c.conn, c.reader = conn, bufio.NewReader(conn)
	return nil
}

// ConnectWithRetry calls Connect every interval until it succeeds or ctx ends.
// mpv creates the socket some time after the process starts.
func (c *Client) ConnectWithRetry(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		err := c.Connect()
		if err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w (%v)", err, ctx.Err())
		case <-ticker.C:
		}
	}
}

// IsConnected reports whether the socket is open.
func (c *Client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Close closes the socket.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn, c.reader = nil, nil
	return err
}

// GetProperty reads a raw mpv property such as "time-pos" or "pause".
func (c *Client) GetProperty(name string) (any, error) {
	return c.call("get_property", name)
}

// SetProperty writes an mpv property.
func (c *Client) SetProperty(name string, value any) error {
	_, err := c.call("set_property", name, value)
	return err
}

// GetTimePos returns the playback position in seconds.
func (c *Client) GetTimePos() (float64, error) {
	return property[float64](c, "time-pos")
}

// GetDuration returns the file length in seconds.
func (c *Client) GetDuration() (float64, error) {
	return property[float64](c, "duration")
}

// GetPaused reports the pause property.
func (c *Client) GetPaused() (bool, error) {
	return property[bool](c, "pause")
}

// GetPath returns the path of the loaded file.
func (c *Client) GetPath() (string, error) {
	return property[string](c, "path")
}

// Seek jumps to an absolute position in seconds, frame exact.
func (c *Client) Seek(seconds float64) error {
	_, err := c.call("seek", seconds, "absolute+exact")
	return err
}

func (c *Client) Play() error  { return c.SetProperty("pause", false) }
func (c *Client) Pause() error { return c.SetProperty("pause", true) }

// SetVolume sets the mpv volume, 0 to 100.
func (c *Client) SetVolume(volume float64) error {
	return c.SetProperty("volume", volume)
}

// property reads name and asserts its JSON-decoded type.
func property[T any](c *Client, name string) (T, error) {
	var zero T
	raw, err := c.GetProperty(name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("mpv: property %s has type %T, want %T", name, raw, zero)
	}
	return v, nil
}

func (c *Client) call(command string, args ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, ErrNotConnected
	}

	if c.timeout > 0 {
		if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
			return nil, fmt.Errorf("mpv: set deadline: %w", err)
		}
		defer c.conn.SetDeadline(time.Time{})
	}

	c.nextID++
	req := request{Command: append([]any{command}, args...), RequestID: c.nextID}
	line, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("mpv: encode %s: %w", command, err)
	}
	if _, err := c.conn.Write(append(line, '\n')); err != nil {
		return nil, fmt.Errorf("mpv: send %s: %w", command, err)
	}
	return c.awaitReply(req.RequestID)
}

// awaitReply skips events and stale replies until id arrives. A reply that
// arrives after its command timed out is skipped as stale.
func (c *Client) awaitReply(id uint64) (any, error) {
	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil {
			return nil, fmt.Errorf("mpv: read reply: %w", err)
		}
		var r reply
		if json.Unmarshal(line, &r) != nil || r.RequestID != id {
			continue
		}
		if r.Error != "" && r.Error != "success" {
			return nil, fmt.Errorf("mpv: %s", r.Error)
		}
		return r.Data, nil
	}
}
