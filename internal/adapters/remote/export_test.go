package remote

import "go.trai.ch/rollout/internal/core/ports"

// NewDialerWithAgent creates a Dialer using the given agent socket.
func NewDialerWithAgent(logger ports.Logger, socket string) *Dialer {
	return &Dialer{logger: logger, agentSocket: socket}
}

// Endpoint exposes the resolved connection settings.
type Endpoint = endpoint

// ResolveEndpoint exposes resolveEndpoint.
var ResolveEndpoint = resolveEndpoint
