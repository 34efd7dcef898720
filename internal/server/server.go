// Package server publishes the current selection as an iCalendar feed on
// localhost so calendar clients can subscribe to it.
package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-datepicker/internal/config"
	"github.com/tartampluch/go-datepicker/internal/export"
)

// snapshot is one published rendering of the selection. Snapshots are
// immutable once stored.
type snapshot struct {
	body     []byte
	etag     string
	modified time.Time // whole seconds, as HTTP dates carry no more
}

func newSnapshot(body []byte, now time.Time) *snapshot {
	sum := sha256.Sum256(body)
	return &snapshot{
		body:     body,
		etag:     fmt.Sprintf(config.FormatETag, hex.EncodeToString(sum[:])),
		modified: now.UTC().Truncate(time.Second),
	}
}

// FeedServer serves the latest published selection over HTTP. The UI
// publishes on every commit while clients poll, so the current snapshot
// is swapped atomically.
type FeedServer struct {
	Port string

	current atomic.Pointer[snapshot]
}

// NewFeedServer creates a server bound to localhost on port.
func NewFeedServer(port string) *FeedServer {
	return &FeedServer{Port: port}
}

// Start binds the port, then serves until ctx is cancelled. A port that
// cannot be bound is reported at once.
func (s *FeedServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	ln, err := net.Listen(config.NetworkTCP, net.JoinHostPort(config.LocalhostBindAddr, s.Port))
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}

	mux := http.NewServeMux()
	mux.HandleFunc(config.RouteRoot, s.handleFeed)
	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	log := slog.With(config.LogKeyComponent, config.CompServer)
	log.Info(config.MsgServerListen, config.LogKeyPort, s.Port)

	served := make(chan error, config.ChannelBufferSize)
	go func() { served <- srv.Serve(ln) }()

	select {
	case err := <-served:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	case <-ctx.Done():
	}

	log.Info(config.MsgServerStop)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
	}
	return nil
}

// Publish encodes sel and makes it the served feed.
func (s *FeedServer) Publish(sel export.Selection) error {
	data, err := export.Encode(sel, time.Now())
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrExportSelection, err)
	}
	s.Update(data)
	return nil
}

// Update replaces the served feed with data.
func (s *FeedServer) Update(data []byte) {
	snap := newSnapshot(data, time.Now())
	s.current.Store(snap)

	slog.Debug(config.MsgFeedUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(snap.body),
		config.LogKeyETag, snap.etag,
	)
}

// handleFeed answers GET and HEAD with the current snapshot. Conditional
// requests (If-None-Match, If-Modified-Since) and ranges are resolved by
// http.ServeContent against the snapshot's ETag and time.
func (s *FeedServer) handleFeed(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	default:
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	snap := s.current.Load()
	if snap == nil {
		// Nothing published yet.
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	h := w.Header()
	h.Set(config.HeaderContentType, config.MimeTextCalendar)
	h.Set(config.HeaderXContentType, config.MimeNoSniff)
	h.Set(config.HeaderCacheControl, config.CacheControlPrivate)
	h.Set(config.HeaderETag, snap.etag)
	http.ServeContent(w, r, config.FeedName, snap.modified, bytes.NewReader(snap.body))
}
