// Package server accepts Telnet connections and wires each one to a
// negotiation session and, once negotiation resolves, an animation task.
package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"sync"

	"go.uber.org/zap"

	"telnet-animations/internal/animation"
	"telnet-animations/internal/config"
	"telnet-animations/internal/telnet"
	"telnet-animations/internal/wire"
)

// Server runs one accept loop per configured listener. Each accepted
// connection gets a goroutine pair: the negotiation session reading inbound
// commands, and at most one animation task sharing the output sink.
type Server struct {
	cfg     *config.Config
	log     *zap.SugaredLogger
	metrics *Metrics
}

// New creates a server for the given configuration.
func New(cfg *config.Config, log *zap.SugaredLogger) *Server {
	return &Server{cfg: cfg, log: log, metrics: &Metrics{}}
}

// Metrics returns the server's counters for the admin endpoint.
func (s *Server) Metrics() *Metrics { return s.metrics }

// ListenAndServe binds every configured listener and serves until ctx is
// canceled. Established connections are not waited for; they die with the
// process.
func (s *Server) ListenAndServe(ctx context.Context) error {
	var wg sync.WaitGroup
	var listeners []net.Listener

	for _, lc := range s.cfg.Listeners {
		ln, err := net.Listen("tcp", lc.ListenAddr)
		if err != nil {
			for _, open := range listeners {
				open.Close()
			}
			return fmt.Errorf("bind %s: %w", lc.ListenAddr, err)
		}
		listeners = append(listeners, ln)
		s.log.Infof("listening on %s (animation %q)", ln.Addr(), lc.Animation)

		wg.Add(1)
		go func(ln net.Listener, animationName string) {
			defer wg.Done()
			s.acceptLoop(ctx, ln, animationName)
		}(ln, lc.Animation)
	}

	<-ctx.Done()
	for _, ln := range listeners {
		ln.Close()
	}
	wg.Wait()
	return nil
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener, animationName string) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) || ctx.Err() != nil {
				return
			}
			s.log.Warnf("accept on %s: %v", ln.Addr(), err)
			continue
		}
		go s.handleConn(ctx, conn, animationName)
	}
}

// handleConn owns one connection's lifetime. The first fatal error anywhere
// tears the whole connection down: closing the socket unblocks the
// negotiation read, canceling the context stops the animation loop.
func (s *Server) handleConn(ctx context.Context, conn net.Conn, animationName string) {
	log := s.log.With("remote", conn.RemoteAddr().String())
	s.metrics.IncAccepted()
	s.metrics.AddActive(1)
	defer s.metrics.AddActive(-1)
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sink := wire.NewSink(bufio.NewWriter(conn))
	defer sink.Close()

	go func() {
		select {
		case <-sink.Done():
			cancel()
			conn.Close()
		case <-ctx.Done():
			conn.Close()
		}
	}()

	start := func() {
		s.metrics.IncAnimations()
		go s.runAnimation(ctx, sink, animationName, log)
	}

	sess := telnet.NewSession(conn, sink, log, start)
	err := sess.Run()
	if telnet.IsProtocolViolation(err) {
		s.metrics.IncNegotiationErrors()
		log.Warnf("connection aborted: %v", err)
		return
	}
	log.Infof("connection closed: %v", err)
}

// runAnimation drives the configured animation until the connection dies.
// Failures are not reported further; the sink teardown already stops the
// session.
func (s *Server) runAnimation(ctx context.Context, sink animation.Sink, name string, log *zap.SugaredLogger) {
	sink = countingSink{Sink: sink, metrics: s.metrics}

	anim, ok := animation.New(name)
	if !ok {
		log.Warnf("unknown animation %q configured", name)
		if err := sink.WriteFrame([]byte(animation.FallbackMessage)); err != nil {
			log.Debugf("fallback write: %v", err)
		}
		return
	}
	if err := anim.Play(ctx, sink); err != nil {
		log.Debugf("animation stopped: %v", err)
	}
}
