package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/gobeaver/filemagic"
	"github.com/gobeaver/filemagic/internal/report"
)

const stdinPath = "-"

type detectOptions struct {
	recursive bool
	include   string
	checksum  bool
	strict    bool
	allow     string
}

func newDetectCmd(a *app) *cobra.Command {
	opts := &detectOptions{}
	cmd := &cobra.Command{
		Use:   "detect [paths...]",
		Short: "Detect the format of files (use - for stdin)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("include") {
				a.cfg.Include = opts.include
			}
			if cmd.Flags().Changed("checksum") {
				a.cfg.Checksum = opts.checksum
			}
			if cmd.Flags().Changed("strict") {
				a.cfg.Strict = opts.strict
			}
			if cmd.Flags().Changed("allow") {
				a.cfg.AllowedTypes = opts.allow
			}
			return a.runDetect(args, opts.recursive)
		},
	}

	cmd.Flags().BoolVarP(&opts.recursive, "recursive", "r", false, "walk directories")
	cmd.Flags().StringVar(&opts.include, "include", "", "only detect files matching this glob when walking (e.g. **/*.{png,jpg})")
	cmd.Flags().BoolVar(&opts.checksum, "checksum", false, "add an xxh64 digest of each file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit 1 when a file is unknown or not allowed")
	cmd.Flags().StringVar(&opts.allow, "allow", "", "comma-separated allowed types or extensions")
	return cmd
}

func (a *app) runDetect(args []string, recursive bool) error {
	allowed, err := a.cfg.Allowed()
	if err != nil {
		return err
	}
	if a.cfg.Include != "" && !doublestar.ValidatePattern(a.cfg.Include) {
		return fmt.Errorf("invalid include pattern %q", a.cfg.Include)
	}

	var entries []report.Entry
	for _, arg := range args {
		if arg == stdinPath {
			entries = append(entries, a.detectStdin())
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			a.logger.Warn("cannot stat input", "path", arg, "error", err)
			entries = append(entries, report.ErrorEntry(arg, err))
			continue
		}
		if !info.IsDir() {
			entries = append(entries, a.detectPath(arg))
			continue
		}
		if !recursive {
			entries = append(entries, report.ErrorEntry(arg, fmt.Errorf("%w (use -r to walk it)", filemagic.ErrIsDir)))
			continue
		}

		walked, err := a.walk(arg)
		if err != nil {
			return err
		}
		entries = append(entries, walked...)
	}

	failed := false
	for i := range entries {
		e := &entries[i]
		if e.Error != "" {
			continue
		}
		if len(allowed) > 0 && e.Matched && !slices.Contains(allowed, e.Type) {
			e.Rejected = true
			a.logger.Warn("file type not allowed", "path", e.Path, "type", e.Type)
		}
		if !e.Matched || e.Rejected {
			failed = true
		}
	}

	if err := report.Write(a.stdout, a.cfg.Format, entries); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if summary := report.Summarize(entries); summary.Errors > 0 {
		return &exitError{code: 2, err: fmt.Errorf("%d input(s) could not be read", summary.Errors)}
	}
	if a.cfg.Strict && failed {
		return &exitError{code: 1, err: errors.New("unrecognized or disallowed files found")}
	}
	return nil
}

func (a *app) walk(root string) ([]report.Entry, error) {
	var entries []report.Entry
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			a.logger.Warn("walk error", "path", path, "error", err)
			entries = append(entries, report.ErrorEntry(path, err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !a.included(root, path) {
			a.logger.Debug("skipping file", "path", path)
			return nil
		}
		entries = append(entries, a.detectPath(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return entries, nil
}

// included matches the include glob against the path relative to the walk
// root, then against the base name.
func (a *app) included(root, path string) bool {
	if a.cfg.Include == "" {
		return true
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	if ok, _ := doublestar.Match(a.cfg.Include, filepath.ToSlash(rel)); ok {
		return true
	}
	ok, _ := doublestar.Match(a.cfg.Include, filepath.Base(path))
	return ok
}

// detectPath opens path once; its size, type and checksum all come from the
// same handle.
func (a *app) detectPath(path string) report.Entry {
	f, err := os.Open(path)
	if err != nil {
		a.logger.Warn("cannot open input", "path", path, "error", err)
		return report.ErrorEntry(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		a.logger.Warn("cannot stat input", "path", path, "error", err)
		return report.ErrorEntry(path, err)
	}
	if info.IsDir() {
		return report.ErrorEntry(path, filemagic.ErrIsDir)
	}

	t, ok, err := filemagic.DetectReaderAt(f, info.Size())
	if err != nil {
		a.logger.Warn("detection failed", "path", path, "error", err)
		return report.ErrorEntry(path, err)
	}
	e := report.NewEntry(path, t, ok, info.Size())
	a.logger.Debug("detected", "path", path, "type", t, "matched", ok)

	if a.cfg.Checksum {
		if e.Checksum, err = report.Checksum(io.NewSectionReader(f, 0, info.Size())); err != nil {
			return report.ErrorEntry(path, err)
		}
	}
	return e
}

// detectStdin streams stdin through the detector, or buffers all of it when
// a checksum is requested.
func (a *app) detectStdin() report.Entry {
	var src io.Reader = a.stdin
	if !a.cfg.Checksum {
		t, ok, err := filemagic.DetectReader(src)
		if err != nil {
			return report.ErrorEntry(stdinPath, err)
		}
		return report.NewEntry(stdinPath, t, ok, 0)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return report.ErrorEntry(stdinPath, err)
	}
	t, ok := filemagic.Detect(data)
	e := report.NewEntry(stdinPath, t, ok, int64(len(data)))
	if e.Checksum, err = report.Checksum(bytes.NewReader(data)); err != nil {
		return report.ErrorEntry(stdinPath, err)
	}
	return e
}
