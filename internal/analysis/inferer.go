package analysis

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

// Inferer abstracts chat inference so pipeline nodes can be exercised
// without a live model endpoint.
type Inferer interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

type agentInferer struct {
	cfg gaconfig.AgentConfig
}

// NewInferer creates a go-agents backed Inferer from the given agent
// configuration. A fresh agent is constructed per call.
func NewInferer(cfg gaconfig.AgentConfig) Inferer {
	return &agentInferer{cfg: cfg}
}

func (a *agentInferer) Chat(ctx context.Context, prompt string) (string, error) {
	ag, err := agent.New(&a.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return resp.Content(), nil
}
