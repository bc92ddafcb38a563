//go:build !windows
// +build !windows

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/qnkhuat/blockfall/pkg/log"
)

const (
	DefaultIdleTimeout = 5 * time.Minute
	DefaultAddress     = ":2222"
)

// Server hosts one terminal game per SSH session by running Binary under a
// pseudo-terminal.
type Server struct {
	ListenAddress string
	Binary        string
	Args          []string
	HostKeyFile   string
	IdleTimeout   time.Duration

	srv      *ssh.Server
	sessions int64
}

func (s *Server) setup() error {
	if s.srv != nil {
		return nil
	}
	if s.Binary == "" {
		return errors.New("server binary must be specified")
	}
	if s.ListenAddress == "" {
		s.ListenAddress = DefaultAddress
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = DefaultIdleTimeout
	}

	s.srv = &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if s.HostKeyFile != "" {
		if err := s.srv.SetOption(ssh.HostKeyFile(s.HostKeyFile)); err != nil {
			return fmt.Errorf("failed to load host key: %w", err)
		}
	} else {
		log.Warn("no host key given, using a generated one")
	}

	return nil
}

// ListenAndServe listens on ListenAddress and blocks until the server stops.
func (s *Server) ListenAndServe() error {
	if err := s.setup(); err != nil {
		return err
	}

	log.Info("listening for SSH connections on %s", s.ListenAddress)
	return s.srv.ListenAndServe()
}

// Serve accepts connections on l and blocks until the server stops.
func (s *Server) Serve(l net.Listener) error {
	if err := s.setup(); err != nil {
		return err
	}

	log.Info("listening for SSH connections on %s", l.Addr())
	return s.srv.Serve(l)
}

// Shutdown stops accepting connections and waits for sessions to end.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}

	return s.srv.Shutdown(ctx)
}

// Sessions returns the number of games being played.
func (s *Server) Sessions() int {
	return int(atomic.LoadInt64(&s.sessions))
}

func (s *Server) command(ctx context.Context, p *Player, term string) *exec.Cmd {
	args := append(append([]string{}, s.Args...), "--name", p.Name)

	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	p := NewPlayer(sess.User(), sess.RemoteAddr().String())

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")

		sess.Exit(1)
		return
	}

	n := atomic.AddInt64(&s.sessions, 1)
	defer atomic.AddInt64(&s.sessions, -1)
	log.Info("session %s: %s joined from %s (%d playing)", p.ID, p.Name, p.Addr, n)

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, p, ptyReq.Term)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		log.Error("session %s: failed to start game: %s", p.ID, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)}); err != nil {
				log.Debug("session %s: resize failed: %s", p.ID, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Debug("session %s: game exited: %s", p.ID, err)
	}
	log.Info("session %s: %s left", p.ID, p.Name)
}
