// Package bundle inspects a template payload: the skills tree with its
// SKILL.md documents and the bundle.yaml manifest at the payload root.
// It backs the list, validate, and doctor commands; the scaffolding engine
// itself never looks inside the payload.
package bundle
