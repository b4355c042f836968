// Command ssh serves the game over SSH. Every session gets its own
// isolated simulation drawn onto its PTY; nothing is shared between
// players beyond the process.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/ttygame/pong/internal/config"
	"github.com/ttygame/pong/internal/draw"
	"github.com/ttygame/pong/internal/game"
	"github.com/ttygame/pong/internal/input"
	"github.com/ttygame/pong/internal/loop"
)

func main() {
	cfg := config.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pong-ssh",
	})

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithHostKeyPath(cfg.SSHHostKey),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger),
			activeterm.Middleware(),
			logging.Middleware(),
		),
		// TCP_NODELAY keeps input latency down for the game loop.
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting SSH server", "host", cfg.SSHHost, "port", cfg.SSHPort)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs one game per SSH session on the session's PTY.
func gameMiddleware(cfg config.Config, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			params := game.DefaultParams()
			if pty.Window.Width < params.Width || pty.Window.Height < params.Height+1 {
				fmt.Fprintf(sess, "Terminal too small: need %dx%d, have %dx%d\n",
					params.Width, params.Height+1, pty.Window.Width, pty.Window.Height)
				return
			}

			logger.Info("session start", "user", sess.User(), "term", pty.Term,
				"size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

			// The field is fixed-size; window changes only need draining so
			// the session doesn't block.
			go func() {
				for range winCh {
				}
			}()

			stream := input.StartStream(bufio.NewReader(sess))
			sink := draw.NewTerminal(sess)
			if err := sink.Start(); err != nil {
				logger.Error("session start failed", "user", sess.User(), "err", err)
				return
			}

			final, err := loop.Run(stream, sink, loop.Options{
				Params:     params,
				TargetFPS:  cfg.TargetFPS,
				HumanRight: true, // the connecting player drives the right paddle
			})
			_ = sink.Stop()
			if err != nil {
				logger.Error("game error", "user", sess.User(), "err", err)
			}

			logger.Info("session end", "user", sess.User(),
				"ticks", final.Tick, "scoreA", final.ScoreA, "scoreB", final.ScoreB)
			next(sess)
		}
	}
}
