//go:build windows
// +build windows

package server

import (
	"context"
	"errors"
	"net"
	"time"
)

// SSH server is unsupported on Windows

const (
	DefaultIdleTimeout = 5 * time.Minute
	DefaultAddress     = ":2222"
)

var errUnsupported = errors.New("ssh server is unsupported on windows")

type Server struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string
	IdleTimeout   time.Duration
}

func (s *Server) ListenAndServe() error {
	return errUnsupported
}

func (s *Server) Serve(l net.Listener) error {
	return errUnsupported
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Sessions() int {
	return 0
}
