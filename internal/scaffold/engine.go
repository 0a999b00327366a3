package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Outcome classifies the result of one copy operation.
type Outcome string

// Outcomes reported per target.
const (
	OutcomeCreated     Outcome = "created"
	OutcomeOverwritten Outcome = "overwritten"
	OutcomeSkipped     Outcome = "skipped"
	OutcomeFailed      Outcome = "failed"
)

// CopyOutcome reports what happened to a single target.
type CopyOutcome struct {
	Target CopyTarget
	Result Outcome
	Detail string
}

// Options control a scaffolding run.
type Options struct {
	Force      bool
	WithSkills bool
}

// Sentinel errors for the two policy failures. Everything else the engine
// returns is a plain I/O error wrapped with the offending path.
var (
	// ErrSourceMissing means an expected artifact is absent from the
	// template payload — the installation is broken, not the invocation.
	ErrSourceMissing = errors.New("source artifact missing from template payload")

	// ErrDestinationExists means the config destination is already present
	// and --force was not given.
	ErrDestinationExists = errors.New("destination already exists")
)

// Run executes a scaffolding run against resolved targets: the config file
// copy first, then — only when requested and the config step succeeded —
// the skills tree copy. One status line per completed target is written to
// w; failures abort the run and are reported by the returned error. The
// returned outcomes always cover every target that was attempted.
//
// The asymmetry between the two targets is deliberate: a blocked config
// destination fails the whole run (a half-configured workspace would be
// confusing), while a pre-existing skills tree is skipped as a success.
func Run(w io.Writer, targets Targets, opts Options) ([]CopyOutcome, error) {
	var outcomes []CopyOutcome

	out, err := installConfig(targets.Config, opts.Force)
	outcomes = append(outcomes, out)
	if err != nil {
		return outcomes, err
	}
	configName := filepath.Base(targets.Config.Destination)
	if out.Result == OutcomeOverwritten {
		fmt.Fprintf(w, "Overwrote %s\n", configName)
	} else {
		fmt.Fprintf(w, "Created %s\n", configName)
	}

	if !opts.WithSkills {
		return outcomes, nil
	}

	out, err = installSkills(targets.Skills, opts.Force)
	outcomes = append(outcomes, out)
	if err != nil {
		return outcomes, err
	}
	skillsName := filepath.Base(targets.Skills.Destination)
	if out.Result == OutcomeSkipped {
		fmt.Fprintf(w, "Skipped %s/ (already exists, use --force to replace)\n", skillsName)
	} else {
		fmt.Fprintf(w, "Created %s/\n", skillsName)
	}

	return outcomes, nil
}

// installConfig materializes the single config file. Rules, in order:
// missing source is fatal; an existing destination without force is fatal
// (the caller must not go on to the skills step); otherwise the file is
// copied byte-for-byte.
func installConfig(t CopyTarget, force bool) (CopyOutcome, error) {
	out := CopyOutcome{Target: t, Result: OutcomeFailed}

	if _, err := os.Stat(t.Source); err != nil {
		if os.IsNotExist(err) {
			out.Detail = "source missing"
			return out, fmt.Errorf("%s: %w", t.Source, ErrSourceMissing)
		}
		out.Detail = err.Error()
		return out, fmt.Errorf("checking template %s: %w", t.Source, err)
	}

	existed := false
	if _, err := os.Stat(t.Destination); err == nil {
		if !force {
			out.Detail = "destination exists"
			return out, fmt.Errorf("%s: %w (pass --force to overwrite)", t.Destination, ErrDestinationExists)
		}
		existed = true
	}

	if err := copyFile(t.Source, t.Destination); err != nil {
		out.Detail = err.Error()
		return out, err
	}

	if existed {
		out.Result = OutcomeOverwritten
	} else {
		out.Result = OutcomeCreated
	}
	out.Detail = ""
	return out, nil
}

// installSkills materializes the skills tree. A missing source is fatal;
// an existing destination without force is a soft skip (success); with
// force the destination is removed first so the result is an exact mirror
// with no stale files from earlier payload versions.
func installSkills(t CopyTarget, force bool) (CopyOutcome, error) {
	out := CopyOutcome{Target: t, Result: OutcomeFailed}

	info, err := os.Stat(t.Source)
	if err != nil {
		if os.IsNotExist(err) {
			out.Detail = "source missing"
			return out, fmt.Errorf("%s: %w", t.Source, ErrSourceMissing)
		}
		out.Detail = err.Error()
		return out, fmt.Errorf("checking skills tree %s: %w", t.Source, err)
	}
	if !info.IsDir() {
		out.Detail = "source not a directory"
		return out, fmt.Errorf("skills source %s is not a directory", t.Source)
	}

	if _, err := os.Stat(t.Destination); err == nil {
		if !force {
			out.Result = OutcomeSkipped
			out.Detail = "destination exists"
			return out, nil
		}
		if err := os.RemoveAll(t.Destination); err != nil {
			out.Detail = err.Error()
			return out, fmt.Errorf("removing existing %s: %w", t.Destination, err)
		}
	}

	if err := copyTree(t.Source, t.Destination); err != nil {
		out.Detail = err.Error()
		return out, err
	}

	out.Result = OutcomeCreated
	return out, nil
}

// dirPair is one pending directory copy on the worklist.
type dirPair struct {
	src, dst string
}

// copyTree mirrors the directory tree at src into dst. Traversal uses an
// explicit worklist rather than recursion so adversarially deep trees
// cannot exhaust the stack. Every entry must be a directory or a regular
// file; anything else — symlinks included — fails the copy with the
// offending path. Already-copied files are left in place on failure.
func copyTree(src, dst string) error {
	work := []dirPair{{src: src, dst: dst}}

	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		info, err := os.Stat(cur.src)
		if err != nil {
			return fmt.Errorf("reading directory %s: %w", cur.src, err)
		}
		if err := os.MkdirAll(cur.dst, info.Mode().Perm()); err != nil {
			return fmt.Errorf("creating directory %s: %w", cur.dst, err)
		}

		entries, err := os.ReadDir(cur.src)
		if err != nil {
			return fmt.Errorf("reading directory %s: %w", cur.src, err)
		}
		for _, entry := range entries {
			srcPath := filepath.Join(cur.src, entry.Name())
			dstPath := filepath.Join(cur.dst, entry.Name())
			switch {
			case entry.IsDir():
				work = append(work, dirPair{src: srcPath, dst: dstPath})
			case entry.Type().IsRegular():
				if err := copyFile(srcPath, dstPath); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported entry %s: not a regular file or directory", srcPath)
			}
		}
	}

	return nil
}

// copyFile copies a single file byte-for-byte, preserving the source mode.
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stating %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, srcInfo.Mode()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}
