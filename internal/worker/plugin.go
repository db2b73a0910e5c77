package worker

import (
	"context"
	"fmt"
	"net/rpc"
	"sync"

	"github.com/hashicorp/go-plugin"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	tdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

// PluginName is the only plugin a worker process serves.
const PluginName = "converter"

// Handshake is shared by the coordinator and the worker processes it
// spawns. The cookie is not a security measure, it only tells the binary
// which role it was started in.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "MEDIACONVERT_WORKER",
	MagicCookieValue: "8e6b1f0c-convert",
}

// Converter runs one task to an outcome. Implementations never fail: every
// problem is reported inside the outcome.
type Converter interface {
	Convert(ctx context.Context, task *cdto.Task) *tdto.Outcome
}

// ConverterPlugin exposes a Converter over net/rpc.
type ConverterPlugin struct {
	Impl Converter

	ctx      context.Context
	inflight *sync.WaitGroup
}

var _ plugin.Plugin = new(ConverterPlugin)

func (p *ConverterPlugin) Server(*plugin.MuxBroker) (any, error) {
	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	inflight := p.inflight
	if inflight == nil {
		inflight = new(sync.WaitGroup)
	}

	return &RPCServer{ctx: ctx, impl: p.Impl, inflight: inflight}, nil
}

func (p *ConverterPlugin) Client(_ *plugin.MuxBroker, client *rpc.Client) (any, error) {
	return &RPCClient{client: client}, nil
}

// RPCServer lives in the worker process.
type RPCServer struct {
	ctx      context.Context
	impl     Converter
	inflight *sync.WaitGroup
}

func (s *RPCServer) Convert(task cdto.Task, outcome *tdto.Outcome) error {
	s.inflight.Add(1)
	defer s.inflight.Done()

	*outcome = *s.impl.Convert(s.ctx, &task)

	return nil
}

// RPCClient lives in the coordinator.
type RPCClient struct {
	client *rpc.Client
}

// Convert sends the task and waits for the outcome or for ctx. Giving up on
// ctx leaves the call pending; the caller is expected to kill the process.
func (c *RPCClient) Convert(ctx context.Context, task *cdto.Task) (*tdto.Outcome, error) {
	outcome := new(tdto.Outcome)
	call := c.client.Go("Plugin.Convert", *task, outcome, make(chan *rpc.Call, 1))

	select {
	case <-call.Done:
		if call.Error != nil {
			return nil, fmt.Errorf("%w: %w (%w)", ErrWorker, ErrCallFailed, call.Error)
		}

		return outcome, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
