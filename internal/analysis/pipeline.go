package analysis

import (
	"context"
	"fmt"

	gaoconfig "github.com/JaimeStill/go-agents-orchestration/pkg/config"
	"github.com/JaimeStill/go-agents-orchestration/pkg/state"
)

// State keys shared between pipeline nodes.
const (
	KeyCommand        = "command"
	KeyClassification = "classification"
	KeyPricedModules  = "priced_modules"
	KeyTotal          = "total"
	KeySimilarity     = "similarity"
	KeyResult         = "result"
)

// Execute runs the analysis pipeline for a single requirement. It builds the
// state graph (classify → price → similarity → assemble, with a short-circuit
// edge classify → assemble when the classifier reports insufficient detail),
// executes it, and extracts the Result from the final state.
func Execute(ctx context.Context, rt *Runtime, cmd AnalyzeCommand) (*Result, error) {
	graph, err := buildGraph(rt)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}

	initialState := state.New(nil)
	initialState = initialState.Set(KeyCommand, cmd)

	finalState, err := graph.Execute(ctx, initialState)
	if err != nil {
		return nil, fmt.Errorf("execute graph: %w", err)
	}

	return extractResult(finalState)
}

func buildGraph(rt *Runtime) (state.StateGraph, error) {
	cfg := gaoconfig.DefaultGraphConfig("pricer-analyze")
	cfg.Observer = "noop"

	graph, err := state.NewGraph(cfg)
	if err != nil {
		return nil, err
	}

	if err := graph.AddNode("classify", ClassifyNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("price", PriceNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("similarity", SimilarityNode(rt)); err != nil {
		return nil, err
	}

	if err := graph.AddNode("assemble", AssembleNode(rt)); err != nil {
		return nil, err
	}

	// classify → price (when the classifier extracted modules)
	if err := graph.AddEdge("classify", "price", classificationOK); err != nil {
		return nil, err
	}

	// classify → assemble (insufficient detail, skip pricing and similarity)
	if err := graph.AddEdge("classify", "assemble", state.Not(classificationOK)); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("price", "similarity", nil); err != nil {
		return nil, err
	}

	if err := graph.AddEdge("similarity", "assemble", nil); err != nil {
		return nil, err
	}

	if err := graph.SetEntryPoint("classify"); err != nil {
		return nil, err
	}

	if err := graph.SetExitPoint("assemble"); err != nil {
		return nil, err
	}

	return graph, nil
}

func classificationOK(s state.State) bool {
	val, ok := s.Get(KeyClassification)
	if !ok {
		return false
	}

	cr, ok := val.(classifierResponse)
	if !ok {
		return false
	}

	return cr.Status == StatusOK
}

func extractResult(s state.State) (*Result, error) {
	val, ok := s.Get(KeyResult)
	if !ok {
		return nil, ErrResultMissing
	}

	result, ok := val.(Result)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not Result", ErrResultMissing, KeyResult)
	}

	return &result, nil
}

func extractCommand(s state.State) (AnalyzeCommand, error) {
	val, ok := s.Get(KeyCommand)
	if !ok {
		return AnalyzeCommand{}, fmt.Errorf("missing %s in state", KeyCommand)
	}

	cmd, ok := val.(AnalyzeCommand)
	if !ok {
		return AnalyzeCommand{}, fmt.Errorf("%s is not AnalyzeCommand", KeyCommand)
	}

	return cmd, nil
}

func extractClassification(s state.State) (classifierResponse, error) {
	val, ok := s.Get(KeyClassification)
	if !ok {
		return classifierResponse{}, fmt.Errorf("missing %s in state", KeyClassification)
	}

	cr, ok := val.(classifierResponse)
	if !ok {
		return classifierResponse{}, fmt.Errorf("%s is not classifierResponse", KeyClassification)
	}

	return cr, nil
}
