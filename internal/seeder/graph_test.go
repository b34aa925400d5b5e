package seeder

import (
	"context"
	"strings"
	"testing"
)

func noop(ctx context.Context) error { return nil }

func TestStageGraphOrder(t *testing.T) {
	graph := NewStageGraph()
	graph.Add(&Stage{Name: "rides", Deps: []string{"drivers", "passengers"}, Run: noop})
	graph.Add(&Stage{Name: "passengers", Run: noop})
	graph.Add(&Stage{Name: "drivers", Deps: []string{"passengers"}, Run: noop})

	order, err := graph.Order()
	if err != nil {
		t.Fatalf("Order failed: %v", err)
	}
	if len(order) != 3 {
		t.Fatalf("Expected 3 stages, got %d", len(order))
	}

	position := make(map[string]int)
	for i, stage := range order {
		position[stage.Name] = i
	}
	if position["passengers"] > position["drivers"] {
		t.Error("passengers must run before drivers")
	}
	if position["drivers"] > position["rides"] {
		t.Error("drivers must run before rides")
	}
}

func TestStageGraphDetectsCycle(t *testing.T) {
	graph := NewStageGraph()
	graph.Add(&Stage{Name: "a", Deps: []string{"b"}, Run: noop})
	graph.Add(&Stage{Name: "b", Deps: []string{"a"}, Run: noop})

	_, err := graph.Order()
	if err == nil {
		t.Fatal("Expected a cycle error")
	}
	if !strings.Contains(err.Error(), "circular dependency") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestStageGraphRejectsUnknownDependency(t *testing.T) {
	graph := NewStageGraph()
	graph.Add(&Stage{Name: "a", Deps: []string{"missing"}, Run: noop})

	_, err := graph.Order()
	if err == nil {
		t.Fatal("Expected an unknown dependency error")
	}
	if !strings.Contains(err.Error(), "unknown stage dependency: missing") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSeederStagesResolve(t *testing.T) {
	s := &Seeder{}
	order, err := s.stages().Order()
	if err != nil {
		t.Fatalf("Stage graph does not resolve: %v", err)
	}
	if len(order) != 13 {
		t.Errorf("Expected 13 stages, got %d", len(order))
	}
	if order[len(order)-1].Name != "rides" {
		t.Errorf("Expected rides to run last, got %s", order[len(order)-1].Name)
	}
}
