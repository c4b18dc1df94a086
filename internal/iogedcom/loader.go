// Package iogedcom implements the Loader interface for GEDCOM files.
// This is an impure I/O package: it reads a source file, decodes its
// bytes and assembles the line stream into a Tree.
package iogedcom

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gedtk/gedtree/internal/ioenc"
	"github.com/gedtk/gedtree/pkg/config"
	"github.com/gedtk/gedtree/pkg/gedline"
	"github.com/gedtk/gedtree/pkg/gedtree"
	"github.com/gedtk/gedtree/pkg/tree"
	"github.com/gnames/gnfmt"
)

// progressThreshold is the number of lines above which a progress bar
// is shown while assembling.
const progressThreshold = 50_000

type loader struct {
	cfg *config.Config
}

// New creates a new Loader.
func New(cfg *config.Config) gedtree.Loader {
	return &loader{cfg: cfg}
}

// Load reads, decodes and assembles one GEDCOM file.
//
// The pass is single-threaded and synchronous: one blocking read of
// the whole file, then one walk over its decoded lines. Lines failing
// the grammar are logged and skipped. The returned tree is complete
// and immutable; a repeated Load builds a new tree with a new LoadID.
func (l *loader) Load(ctx context.Context, path string) (*tree.Tree, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, FileReadError(path, err)
	}

	text := ioenc.DecodeFile(data, &l.cfg.Parser)
	slog.Info("Decoded GEDCOM file",
		"path", path,
		"encoding", ioenc.DetectEncoding(data, l.cfg.Parser.HeaderPreviewSize).String(),
		"bytes", len(data),
	)

	lines := strings.Split(text, "\n")

	var bar *pb.ProgressBar
	if len(lines) > progressThreshold {
		bar = pb.Full.Start(len(lines))
		bar.Set("prefix", "Assembling records: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	asm := newAssembler(tree.New(path))
	var skipped int

	for i, raw := range lines {
		if bar != nil {
			bar.Increment()
		}
		if i%10_000 == 0 {
			if err := ctx.Err(); err != nil {
				if bar != nil {
					bar.Finish()
				}
				return nil, CancelledError(err)
			}
		}

		raw = strings.TrimSuffix(raw, "\r")
		ln, err := gedline.ParseLine(raw)
		if err != nil {
			skipped++
			slog.Warn("Skipping malformed line",
				"path", path,
				"line_number", i+1,
				"error", err,
			)
			continue
		}
		if ln == nil {
			continue
		}

		asm.handle(ln)
		if asm.done {
			break
		}
	}
	asm.finish()

	if bar != nil {
		bar.Finish()
	}

	t := asm.t
	slog.Info("Parsed GEDCOM file",
		"path", path,
		"load_id", t.LoadID.String(),
		"individuals", humanize.Comma(int64(len(t.Individuals))),
		"families", humanize.Comma(int64(len(t.Families))),
		"notes", len(t.Notes),
		"submitters", len(t.Submitters),
		"skipped_lines", skipped,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)

	return t, nil
}
