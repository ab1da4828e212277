package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rollout/internal/adapters/cas"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/detector"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/remote"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/render"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/adapters/version"   //nolint:depguard // Wired in app layer
	"go.trai.ch/rollout/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
			fs.WalkerNodeID,
			fs.StagerNodeID,
			fs.HasherNodeID,
			shell.NodeID,
			render.NodeID,
			version.NodeID,
			cas.NodeID,
			remote.NodeID,
			git.NodeID,
			prompt.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			detector.NodeID,
		},
		Run: runComponentsNode,
	})
}

//nolint:cyclop,funlen // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	var (
		deps Deps
		err  error
	)

	if deps.ConfigLoader, err = graft.Dep[ports.ConfigLoader](ctx); err != nil {
		return nil, err
	}
	if deps.Logger, err = graft.Dep[ports.Logger](ctx); err != nil {
		return nil, err
	}
	if deps.Tracer, err = graft.Dep[ports.Tracer](ctx); err != nil {
		return nil, err
	}
	if deps.Walker, err = graft.Dep[ports.TreeWalker](ctx); err != nil {
		return nil, err
	}
	if deps.Stager, err = graft.Dep[ports.Stager](ctx); err != nil {
		return nil, err
	}
	if deps.Hasher, err = graft.Dep[ports.Hasher](ctx); err != nil {
		return nil, err
	}
	if deps.Executor, err = graft.Dep[ports.Executor](ctx); err != nil {
		return nil, err
	}
	if deps.Templates, err = graft.Dep[ports.TemplateRenderer](ctx); err != nil {
		return nil, err
	}
	if deps.Versions, err = graft.Dep[ports.VersionManifest](ctx); err != nil {
		return nil, err
	}
	if deps.Store, err = graft.Dep[ports.PackageStore](ctx); err != nil {
		return nil, err
	}
	if deps.Dialer, err = graft.Dep[ports.RemoteDialer](ctx); err != nil {
		return nil, err
	}
	if deps.Git, err = graft.Dep[ports.RepositoryOpener](ctx); err != nil {
		return nil, err
	}
	if deps.Prompter, err = graft.Dep[ports.Prompter](ctx); err != nil {
		return nil, err
	}

	return New(deps), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      app,
		Logger:   log,
		Renderer: renderer,
	}, nil
}
