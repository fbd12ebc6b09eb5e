// Package pipeline orchestrates the full cleaning run: enumerate source
// files, filter and year-tag each one, concatenate, deduplicate, apply the
// value canonicalizers, and persist the dataset and statistics artifacts.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentstation/permclean/pkg/constants"
	"github.com/agentstation/permclean/pkg/dataset"
	"github.com/agentstation/permclean/pkg/errors"
	"github.com/agentstation/permclean/pkg/ingest"
	"github.com/agentstation/permclean/pkg/logging"
	"github.com/agentstation/permclean/pkg/normalize"
	"github.com/agentstation/permclean/pkg/schema"
)

// Options configures a pipeline run.
type Options struct {
	// InputDir holds the raw source files. Required.
	InputDir string

	// OutputDir receives the artifacts. Defaults to InputDir.
	OutputDir string

	// Cache enables the serialized raw-table cache in OutputDir.
	Cache bool
}

// Result summarizes a completed pipeline run.
type Result struct {
	FilesRead    int
	FilesSkipped int
	RowsKept     int
	Cases        int
	BadValues    normalize.Report
}

// Run executes the full pipeline. A missing input directory halts the run;
// individual files that cannot be processed (no fiscal year in the name,
// unreadable, no status column) are skipped with a logged warning.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logging.FromContext(ctx)
	reg := schema.Default()

	if opts.OutputDir == "" {
		opts.OutputDir = opts.InputDir
	}

	entries, err := os.ReadDir(opts.InputDir)
	if err != nil {
		return nil, errors.WrapIO("read", opts.InputDir, err)
	}
	if err := os.MkdirAll(opts.OutputDir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", opts.OutputDir, err)
	}

	cacheDir := ""
	if opts.Cache {
		cacheDir = opts.OutputDir
	}

	result := &Result{}
	combined := dataset.NewTable()
	statusCounts := make(dataset.StatusCounts)
	availability := make(dataset.AvailabilityTable)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, errors.ErrCanceled
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), constants.SourceExt) {
			continue
		}

		name := entry.Name()
		fiscalYear, ok := ingest.FiscalYearFromFilename(name)
		if !ok {
			log.Warn().Str("file", name).Msg("Skipping file without fiscal year in name")
			result.FilesSkipped++
			continue
		}

		fileCtx := logging.WithFiscalYear(logging.WithFile(ctx, name), fiscalYear)
		flog := logging.FromContext(fileCtx)
		flog.Info().Msg("Reading source file")

		raw, err := ingest.ReadSource(fileCtx, filepath.Join(opts.InputDir, name), cacheDir)
		if err != nil {
			flog.Warn().Err(err).Msg("Skipping unreadable source file")
			result.FilesSkipped++
			continue
		}

		subset, err := ingest.Select(raw, reg, fiscalYear)
		if err != nil {
			flog.Warn().Err(err).Msg("Skipping source file")
			result.FilesSkipped++
			continue
		}
		flog.Debug().Int("rows", subset.Table.Len()).Msg("Selected certified rows")

		combined.Concat(subset.Table)
		for status, n := range subset.StatusCounts {
			statusCounts.Add(fiscalYear, status, n)
		}
		availability.Set(fiscalYear, subset.Availability)
		result.FilesRead++
	}

	log.Info().
		Int("files", result.FilesRead).
		Int("skipped", result.FilesSkipped).
		Int("rows", combined.Len()).
		Msg("Normalizing data and writing artifacts")

	if err := SaveStatusCounts(opts.OutputDir, statusCounts, reg.AcceptedStatuses()); err != nil {
		return nil, err
	}
	if err := SaveAvailability(opts.OutputDir, constants.AvailabilityName, availability); err != nil {
		return nil, err
	}

	combined.SortByCaseYear()
	perm, err := combined.Deduplicate()
	if err != nil {
		return nil, err
	}
	result.RowsKept = combined.Len()
	result.Cases = perm.Len()

	result.BadValues = normalize.Canonicalize(perm)
	for field, freq := range result.BadValues {
		log.Debug().Str("column", field.String()).Int("values", len(freq)).
			Msg("Collected unnormalizable values")
	}

	if err := SaveTable(opts.OutputDir, perm); err != nil {
		return nil, err
	}
	if err := SaveAvailability(opts.OutputDir, constants.Availability1Name, perm.AvailabilityByYear()); err != nil {
		return nil, err
	}
	if err := SaveBadValues(opts.OutputDir, result.BadValues); err != nil {
		return nil, err
	}

	log.Info().Int("cases", result.Cases).Msg("Pipeline complete")
	return result, nil
}
