package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gliderlabs/ssh"

	"github.com/qnkhuat/blockfall/pkg/log"
	"github.com/qnkhuat/blockfall/pkg/server"
)

func defaultBinary() string {
	exe, err := os.Executable()
	if err != nil {
		return "blockfall"
	}
	return filepath.Join(filepath.Dir(exe), "blockfall")
}

func defaultHostKey() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	key := filepath.Join(homeDir, ".ssh", "id_rsa")
	if _, err := os.Stat(key); err != nil {
		return ""
	}
	return key
}

func main() {
	listen := flag.String("listen-ssh", server.DefaultAddress, "address to listen for SSH connections")
	binary := flag.String("binary", defaultBinary(), "path to the blockfall terminal client")
	hostKey := flag.String("host-key", defaultHostKey(), "path to the SSH host key, generated when empty")
	idle := flag.Duration("idle-timeout", server.DefaultIdleTimeout, "disconnect idle sessions after this long")
	configPath := flag.String("config", "", "config file passed to every session")
	logPath := flag.String("log", "", "path to log file, stderr when empty")
	logLevel := flag.String("log-level", "info", "log level: error, warn, info, debug, trace")
	flag.Parse()

	if *logPath != "" {
		f, err := log.InitLog(*logPath, "SERVER: ")
		if err != nil {
			log.Fatal("%s", err)
		}
		defer f.Close()
	}
	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		log.Fatal("%s", err)
	}
	log.SetLevel(level)

	var args []string
	if *configPath != "" {
		args = append(args, "--config", *configPath)
	}

	s := &server.Server{
		ListenAddress: *listen,
		Binary:        *binary,
		Args:          args,
		HostKeyFile:   *hostKey,
		IdleTimeout:   *idle,
	}

	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe()
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGINT,
		syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Fatal("failed to serve: %s", err)
		}
	case sig := <-sigc:
		log.Info("received %s, shutting down with %d sessions", sig, s.Sessions())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Warn("shutdown: %s", err)
		}
	}
}
