package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"mneme-index/internal/display"
	"mneme-index/internal/errs"
	"mneme-index/internal/indexing"
	"mneme-index/internal/logger"
)

// NewIndexerCommand builds the indexer CLI's root command: stream a JSONL
// corpus through a memory-bounded worker pool and merge the result into a
// final inverted index, lexicon, document index, and statistics file.
func NewIndexerCommand() *cobra.Command {
	var (
		flags         persistentFlags
		memoryLimitMB int
		corpusPath    string
		indexDir      string
	)

	cmd := &cobra.Command{
		Use:   "indexer",
		Short: "Build a memory-bounded inverted index from a JSONL corpus",
		PreRun: func(cmd *cobra.Command, args []string) {
			flags.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasSuffix(corpusPath, ".jsonl") {
				return errs.NewConfigurationError("corpus_path", "must end in .jsonl")
			}
			if memoryLimitMB <= 0 {
				return errs.NewConfigurationError("memory_limit_mb", "must be > 0")
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}

			opts := indexing.Options{
				CorpusPath:    corpusPath,
				IndexDir:      indexDir,
				MemoryLimitMB: memoryLimitMB,
				WorkerCount:   cfg.WorkerCount,
				BatchSize:     cfg.BatchSize,
				QueueDepth:    cfg.QueueDepth,
				ShowProgress:  !flags.quiet,
			}

			orch := indexing.NewOrchestrator(opts)
			result, err := orch.Run(context.Background())
			if err != nil {
				return err
			}

			if !flags.quiet {
				display.PrintIndexingSummary(result.Stats)
			}
			logger.Infof("wrote %s, %s, %s, %s", result.IndexPath, result.LexiconPath, result.DocumentIndexPath, result.StatisticsPath)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&memoryLimitMB, "memory_limit_mb", "m", 0, "total memory budget in MB (>0)")
	cmd.Flags().StringVarP(&corpusPath, "corpus_path", "c", "", "corpus file, must end in .jsonl")
	cmd.Flags().StringVarP(&indexDir, "index_dir", "i", "", "output directory (created if missing)")
	_ = cmd.MarkFlagRequired("memory_limit_mb")
	_ = cmd.MarkFlagRequired("corpus_path")
	_ = cmd.MarkFlagRequired("index_dir")

	return cmd
}
