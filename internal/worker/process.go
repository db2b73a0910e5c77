package worker

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"
	cdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/classifier/dto"
	tdto "source.hodakov.me/hdkv/mediaconvert/internal/domains/transcoder/dto"
)

// Process is a running worker process as seen by the coordinator. It is
// used by one goroutine at a time.
type Process struct {
	client    *plugin.Client
	converter *RPCClient
	served    int
}

// Start launches cmd as a worker and connects to its converter. The command
// must end up calling Serve; its environment is extended with the handshake
// cookie by go-plugin.
func Start(cmd *exec.Cmd, logger hclog.Logger) (*Process, error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  Handshake,
		Plugins:          plugin.PluginSet{PluginName: new(ConverterPlugin)},
		Cmd:              cmd,
		Logger:           logger,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolNetRPC},
	})

	rpcClient, err := client.Client()
	if err != nil {
		client.Kill()

		return nil, fmt.Errorf("%w: %w (%w)", ErrWorker, ErrFailedToStart, err)
	}

	raw, err := rpcClient.Dispense(PluginName)
	if err != nil {
		client.Kill()

		return nil, fmt.Errorf("%w: %w (%w)", ErrWorker, ErrFailedToDispense, err)
	}

	converter, ok := raw.(*RPCClient)
	if !ok {
		client.Kill()

		return nil, fmt.Errorf("%w: %w (%T)", ErrWorker, ErrUnexpectedConverter, raw)
	}

	return &Process{client: client, converter: converter}, nil
}

// Convert runs the task in the worker process. An error means the process
// could not deliver an outcome: it crashed, the connection broke or ctx
// was done first. In every such case the process must be killed.
func (p *Process) Convert(ctx context.Context, task *cdto.Task) (*tdto.Outcome, error) {
	p.served++

	outcome, err := p.converter.Convert(ctx, task)
	if err != nil {
		if p.client.Exited() {
			return nil, fmt.Errorf("%w: %w", ErrWorker, ErrProcessExited)
		}

		return nil, err
	}

	return outcome, nil
}

// Served is the number of tasks sent to this process.
func (p *Process) Served() int {
	return p.served
}

func (p *Process) Exited() bool {
	return p.client.Exited()
}

// Kill stops the process, gracefully if it still answers.
func (p *Process) Kill() {
	p.client.Kill()
}
