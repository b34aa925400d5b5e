package seeder

import (
	"context"
	"fmt"
)

// Stage is one step of the seeding pipeline. Deps name the stages whose rows
// this stage references; the graph guarantees they run first.
type Stage struct {
	Name string
	Deps []string
	Run  func(ctx context.Context) error
}

// StageGraph orders stages parent-before-child. The original pipeline relied
// on incidental statement order for this; here the ordering is declared and
// checked.
type StageGraph struct {
	stages map[string]*Stage
	names  []string
}

func NewStageGraph() *StageGraph {
	return &StageGraph{stages: make(map[string]*Stage)}
}

func (g *StageGraph) Add(stage *Stage) {
	if _, exists := g.stages[stage.Name]; !exists {
		g.names = append(g.names, stage.Name)
	}
	g.stages[stage.Name] = stage
}

// Order returns the stages in an execution order that satisfies every
// declared dependency. Unknown dependencies and cycles are errors.
func (g *StageGraph) Order() ([]*Stage, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []*Stage

	var visit func(string) error
	visit = func(name string) error {
		if temp[name] {
			return fmt.Errorf("circular dependency detected involving stage: %s", name)
		}
		if visited[name] {
			return nil
		}

		stage, ok := g.stages[name]
		if !ok {
			return fmt.Errorf("unknown stage dependency: %s", name)
		}

		temp[name] = true
		for _, dep := range stage.Deps {
			if err := visit(dep); err != nil {
				return err
			}
		}
		temp[name] = false

		visited[name] = true
		order = append(order, stage)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
