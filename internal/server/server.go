package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/pixil98/union-domain/internal/commands"
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/hub"
)

const shutdownTimeout = 5 * time.Second

// Server is the inbound side of the hub protocol.
type Server struct {
	host string
	port int

	store     *game.Store
	commands  *commands.Handler
	registrar *Registrar
	client    *hub.Client
	publisher game.Publisher
}

func NewServer(host string, port int, store *game.Store, cmds *commands.Handler, registrar *Registrar, client *hub.Client, publisher game.Publisher) *Server {
	if publisher == nil {
		publisher = game.NopPublisher{}
	}
	return &Server{
		host:      host,
		port:      port,
		store:     store,
		commands:  cmds,
		registrar: registrar,
		client:    client,
		publisher: publisher,
	}
}

// Handler returns the routed, middleware-wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /newhub", s.handleNewHub)
	mux.HandleFunc("POST /arrive", s.handleArrive)
	mux.HandleFunc("POST /depart", s.handleDepart)
	mux.HandleFunc("POST /dropped", s.handleDropped)
	mux.HandleFunc("POST /command", s.handleCommand)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return withRequestID(withCORS(mux))
}

func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.InfoContext(ctx, "http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving http on %s: %w", addr, err)
	case <-ctx.Done():
	}

	// The serve context is already done; shut down on a fresh one.
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
