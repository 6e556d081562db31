package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-service"
	"github.com/pixil98/union-domain/internal/commands"
	"github.com/pixil98/union-domain/internal/game"
	"github.com/pixil98/union-domain/internal/messaging"
	"github.com/pixil98/union-domain/internal/server"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	err := cfg.applyEnv()
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	logger, err := cfg.Logging.buildLogger(cfg.Logging.writer())
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	slog.SetDefault(logger)

	graph, catalog, err := cfg.Assets.load()
	if err != nil {
		return nil, err
	}
	store := game.NewStore(&game.World{Graph: graph, Catalog: catalog})

	client, err := cfg.Hub.buildClient()
	if err != nil {
		return nil, fmt.Errorf("creating hub client: %w", err)
	}

	workers := service.WorkerList{}

	// Events go nowhere unless the embedded NATS server is enabled
	var publisher game.Publisher = game.NopPublisher{}
	if cfg.Nats.Enabled {
		ns, err := cfg.Nats.buildNatsServer()
		if err != nil {
			return nil, fmt.Errorf("creating nats server: %w", err)
		}
		workers["nats"] = ns
		publisher = messaging.NewEventPublisher(ns, client)
	}

	cmds := commands.NewHandler(store, client, publisher, commands.WithWrapWidth(cfg.Display.WrapWidth))
	registrar := server.NewRegistrar(client, store, graph, catalog, cfg.Domain.info(), cfg.Hub.URL)

	d, err := cfg.Hub.buildDriver(registrar)
	if err != nil {
		return nil, fmt.Errorf("creating driver: %w", err)
	}

	workers["http"] = server.NewServer(cfg.HTTP.Host, cfg.HTTP.Port, store, cmds, registrar, client, publisher)
	workers["driver"] = d

	slog.Info("domain configured",
		"name", cfg.Domain.info().Name,
		"url", cfg.Domain.PublicURL,
		"port", cfg.HTTP.Port,
		"rooms", len(graph.RoomIds()),
		"items", catalog.Len(),
		"nats", cfg.Nats.Enabled)

	return workers, nil
}
