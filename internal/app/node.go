package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prj/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/adapters/store"     //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/prj/internal/core/ports"
	"go.trai.ch/prj/internal/engine/catalog"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what the entry point needs besides the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ResolverNodeID,
			catalog.NodeID,
			shell.NodeID,
			watcher.NodeID,
			store.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.RootResolver](ctx)
	if err != nil {
		return nil, err
	}

	cat, err := graft.Dep[*catalog.Catalog](ctx)
	if err != nil {
		return nil, err
	}

	workspace, err := graft.Dep[ports.Workspace](ctx)
	if err != nil {
		return nil, err
	}

	configWatcher, err := graft.Dep[ports.ConfigWatcher](ctx)
	if err != nil {
		return nil, err
	}

	kv, err := graft.Dep[ports.Store](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, cat, workspace, configWatcher, kv, tracer, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    a,
		Logger: log,
	}, nil
}
