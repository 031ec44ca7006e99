// Package display renders CLI-facing output: progress bars over the
// corpus stream, and post-run summary tables for the indexer and
// processor.
package display

import (
	"os"

	"github.com/schollz/progressbar/v3"
)

// NewCorpusProgressBar returns a progress bar tracking documents streamed
// from the corpus file. total is the document count if known ahead of
// time, or -1 to render a spinner-style indeterminate bar instead.
func NewCorpusProgressBar(total int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(total,
		progressbar.OptionSetDescription("[cyan]indexing...[reset]"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetWriter(os.Stdout),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]█[reset]",
			SaucerHead:    "[green]█[reset]",
			SaucerPadding: "░",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}
