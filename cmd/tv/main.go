package main

import (
	"fmt"
	"os"

	"task-viewer/internal/api"
	"task-viewer/internal/cli"
	"task-viewer/internal/config"
	"task-viewer/internal/logging"
	"task-viewer/internal/remote"
	"task-viewer/internal/services"
)

func main() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	root := cli.NewRootCommand(cfg, newBusinessAPI)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newBusinessAPI opens the configured store and wires the services over a
// cached client for the remote task service
func newBusinessAPI(cfg *config.Config) (api.BusinessAPI, func() error, error) {
	store, err := config.CreateStore(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating store: %w", err)
	}
	logging.Debugf("using %s store at %s\n", cfg.Storage.Backend, cfg.GetStorePath())

	client := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Limit, cfg.Remote.Timeout)
	source := remote.NewCachedSource(client, cfg.Remote.CacheTTL)

	container := services.NewServiceContainer(store, source, cfg.Display.PageWindow)
	return api.NewBusinessAPI(container, cfg.Display.PageSize), store.Close, nil
}
