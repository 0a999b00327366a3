// Package workspace inspects a working directory for installed Loadout
// artifacts: the AGENTS.md config file and the skills/ tree. It reports
// what is present without modifying anything; installation itself is the
// scaffold package's job.
package workspace
