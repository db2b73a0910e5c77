package worker

import (
	"context"
	"os"
	"sync"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
)

// IsWorkerProcess reports whether this process was started by Start.
func IsWorkerProcess() bool {
	return os.Getenv(Handshake.MagicCookieKey) == Handshake.MagicCookieValue
}

// Serve runs the worker side until the coordinator lets go of it. Tasks
// still running when that happens get their context cancelled, which stops
// any external tool they started, and are waited for.
func Serve(ctx context.Context, impl Converter, logger hclog.Logger) {
	ctx, cancel := context.WithCancel(ctx)
	inflight := new(sync.WaitGroup)

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: plugin.PluginSet{
			PluginName: &ConverterPlugin{Impl: impl, ctx: ctx, inflight: inflight},
		},
		Logger: logger,
	})

	cancel()
	inflight.Wait()
}
