package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/prosa/internal/adapters/antxml"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/adapters/propfile"           //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/prosa/internal/core/ports"
	"go.trai.ch/prosa/internal/engine/emitter"
	"go.trai.ch/prosa/internal/engine/options"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
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
			emitter.NodeID,
			options.NodeID,
			antxml.NodeID,
			propfile.NodeID,
			fs.HasherNodeID,
			fs.WriterNodeID,
			cas.NodeID,
			progrock.NodeID,
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
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.DescriptorLoader](ctx)
	if err != nil {
		return nil, err
	}
	em, err := graft.Dep[*emitter.Emitter](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[*options.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	scripts, err := graft.Dep[ports.ScriptRenderer](ctx)
	if err != nil {
		return nil, err
	}
	props, err := graft.Dep[ports.PropertiesRenderer](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	writer, err := graft.Dep[ports.OutputWriter](ctx)
	if err != nil {
		return nil, err
	}
	stores, err := graft.Dep[ports.StoreOpener](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, em, resolver, scripts, props, hasher, writer, stores, telemetry, log), nil
}
