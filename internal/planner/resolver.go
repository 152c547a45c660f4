package planner

import (
	"fmt"

	"github.com/alexanderramin/focusday/internal/domain"
)

// CircularDependencyError aborts a whole planning run: a cyclic graph has no
// well-defined ready set, so failing loudly beats silently dropping tasks.
type CircularDependencyError struct {
	TaskID string
}

func (e *CircularDependencyError) Error() string {
	return fmt.Sprintf("circular dependency involving task %s", e.TaskID)
}

// depGraph indexes a task snapshot for readiness and cycle checks.
type depGraph struct {
	byID       map[string]*domain.Task
	prereqs    map[string][]string // task -> prerequisite ids
	dependents map[string][]string // prerequisite -> dependent ids
}

func buildGraph(tasks []*domain.Task, edges []domain.Dependency) depGraph {
	g := depGraph{
		byID:       make(map[string]*domain.Task, len(tasks)),
		prereqs:    make(map[string][]string),
		dependents: make(map[string][]string),
	}
	for _, t := range tasks {
		g.byID[t.ID] = t
	}
	for _, e := range edges {
		g.prereqs[e.TaskID] = append(g.prereqs[e.TaskID], e.DependsOnTaskID)
		// Only record traversable edges between tasks in the snapshot;
		// orphaned references still block readiness via prereqs.
		if _, ok := g.byID[e.TaskID]; !ok {
			continue
		}
		if _, ok := g.byID[e.DependsOnTaskID]; !ok {
			continue
		}
		g.dependents[e.DependsOnTaskID] = append(g.dependents[e.DependsOnTaskID], e.TaskID)
	}
	return g
}

// DFS colors for cycle detection.
const (
	colorWhite = iota // unvisited
	colorGrey         // on the recursion stack
	colorBlack        // fully explored
)

// detectCycle runs a depth-first traversal with an explicit recursion stack.
// Returns the id of a task on a cycle, or "" when the graph is acyclic.
func (g depGraph) detectCycle(tasks []*domain.Task) string {
	color := make(map[string]int, len(g.byID))

	type frame struct {
		id   string
		next int
	}

	for _, t := range tasks {
		if color[t.ID] != colorWhite {
			continue
		}
		stack := []frame{{id: t.ID}}
		color[t.ID] = colorGrey
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			deps := g.dependents[top.id]
			if top.next < len(deps) {
				child := deps[top.next]
				top.next++
				switch color[child] {
				case colorGrey:
					return child
				case colorWhite:
					color[child] = colorGrey
					stack = append(stack, frame{id: child})
				}
				continue
			}
			color[top.id] = colorBlack
			stack = stack[:len(stack)-1]
		}
	}
	return ""
}

// Resolve filters the snapshot down to ready tasks: open tasks whose
// prerequisites all exist in the snapshot and are done. The snapshot must
// include completed tasks so finished prerequisites are recognized.
// Ordering of the input is preserved.
func Resolve(tasks []*domain.Task, edges []domain.Dependency) ([]*domain.Task, error) {
	g := buildGraph(tasks, edges)

	if id := g.detectCycle(tasks); id != "" {
		return nil, &CircularDependencyError{TaskID: id}
	}

	var ready []*domain.Task
	for _, t := range tasks {
		if !t.Open() {
			continue
		}
		if g.satisfied(t.ID) {
			ready = append(ready, t)
		}
	}
	return ready, nil
}

// satisfied reports whether every prerequisite of the task exists and is done.
func (g depGraph) satisfied(taskID string) bool {
	for _, pid := range g.prereqs[taskID] {
		prereq, ok := g.byID[pid]
		if !ok {
			// Orphaned reference: the prerequisite was deleted or belongs
			// to another snapshot. Treat as unsatisfied.
			return false
		}
		if prereq.Status != domain.TaskDone {
			return false
		}
	}
	return true
}
