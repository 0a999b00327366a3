// Package scaffold materializes a project workspace from the template
// payload: the AGENTS.md instruction file and, optionally, the skills/
// document tree. It powers the "loadout init" command. Path resolution is
// pure (resolve.go); all existence checks, overwrite policy, and copying
// live in the engine (engine.go).
package scaffold
