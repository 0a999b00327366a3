package bundle

import (
	"fmt"
	"strings"
)

// Issue is a problem with the requires graph of a skills tree.
type Issue struct {
	Skill  string // the skill the issue is reported against
	Detail string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Skill, i.Detail)
}

// Traversal states for cycle detection.
const (
	unvisited = iota
	visiting
	visited
)

// CheckRequires verifies the requires references across a set of skills:
// names must be unique, every reference must resolve to a discovered
// skill, and the reference graph must be acyclic. Skills whose manifest
// failed to parse contribute no edges; parse failures are reported
// elsewhere.
func CheckRequires(skills []Skill) []Issue {
	var issues []Issue

	byName := make(map[string]*Skill, len(skills))
	for i := range skills {
		s := &skills[i]
		if prev, ok := byName[s.Name]; ok {
			issues = append(issues, Issue{
				Skill:  s.Name,
				Detail: fmt.Sprintf("duplicate skill name (at %s and %s)", prev.RelPath, s.RelPath),
			})
			continue
		}
		byName[s.Name] = s
	}

	for _, s := range skills {
		if s.Manifest == nil {
			continue
		}
		for _, req := range s.Manifest.Requires {
			if _, ok := byName[req]; !ok {
				issues = append(issues, Issue{
					Skill:  s.Name,
					Detail: fmt.Sprintf("requires %q, which is not in the payload", req),
				})
			}
		}
	}

	issues = append(issues, findCycles(skills, byName)...)
	return issues
}

// findCycles runs a depth-first walk over the requires graph, reporting
// each cycle once at the point it closes.
func findCycles(skills []Skill, byName map[string]*Skill) []Issue {
	state := make(map[string]int, len(skills))
	var stack []string
	var issues []Issue

	var visit func(name string)
	visit = func(name string) {
		switch state[name] {
		case visiting:
			for i, n := range stack {
				if n == name {
					cycle := append(append([]string{}, stack[i:]...), name)
					issues = append(issues, Issue{
						Skill:  name,
						Detail: "requires cycle: " + strings.Join(cycle, " -> "),
					})
					break
				}
			}
			return
		case visited:
			return
		}

		state[name] = visiting
		stack = append(stack, name)

		if s := byName[name]; s != nil && s.Manifest != nil {
			for _, req := range s.Manifest.Requires {
				if _, ok := byName[req]; ok {
					visit(req)
				}
			}
		}

		stack = stack[:len(stack)-1]
		state[name] = visited
	}

	for _, s := range skills {
		visit(s.Name)
	}

	return issues
}
