package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mneme-index/internal/core"
	"mneme-index/internal/display"
	"mneme-index/internal/errs"
	"mneme-index/internal/query"
)

// NewProcessorCommand builds the processor CLI's root command: load a
// final inverted index and lexicon filtered to a batch of queries' needed
// tokens, score matching documents with the chosen ranker, and print
// ranked results as JSON.
func NewProcessorCommand() *cobra.Command {
	var (
		flags           persistentFlags
		indexFilePath   string
		queriesFilePath string
		rankerName      string
		pretty          bool
	)

	cmd := &cobra.Command{
		Use:   "processor",
		Short: "Score and rank queries against a built inverted index",
		PreRun: func(cmd *cobra.Command, args []string) {
			flags.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasSuffix(indexFilePath, ".jsonl") {
				return errs.NewConfigurationError("index_file_path", "must end in .jsonl")
			}

			cfg, err := flags.loadConfig()
			if err != nil {
				return err
			}
			if rankerName == "" {
				rankerName = cfg.Ranker
			}
			ranker, err := query.ParseRanker(rankerName)
			if err != nil {
				return err
			}

			indexDir := filepath.Dir(indexFilePath)
			lexiconPath := filepath.Join(indexDir, "lexicon.jsonl")
			docIndexPath := filepath.Join(indexDir, "document_index.jsonl")
			statsPath := filepath.Join(indexDir, "indexing_statistics.json")

			stats, err := loadIndexingStatistics(statsPath)
			if err != nil {
				return err
			}

			rawQueries, err := query.LoadQueries(queriesFilePath)
			if err != nil {
				return err
			}
			queries := query.TokenizeQueries(rawQueries)
			needed := query.NeededTokens(queries)

			lexicon, err := query.LoadLexiconFiltered(lexiconPath, needed)
			if err != nil {
				return err
			}
			postings, err := query.LoadPostingsFiltered(indexFilePath, needed)
			if err != nil {
				return err
			}

			candidates := query.AllCandidateDocIDs(queries, postings)
			candidateKeys := make(map[core.DocID]bool, len(candidates))
			for id := range candidates {
				candidateKeys[id] = true
			}
			docIndex, err := query.LoadDocumentIndexFiltered(docIndexPath, candidateKeys)
			if err != nil {
				return err
			}

			processor := query.NewProcessor(ranker, cfg.K1, cfg.B, cfg.TopK, stats.NumberOfDocuments, stats.AverageTokensPerDocument, lexicon, postings)
			processor.SetDocumentTokenCounts(docIndex)

			for _, q := range queries {
				result := processor.Process(q)
				if pretty {
					display.PrintQueryResults(result)
				} else {
					if err := display.PrintQueryResultJSON(result); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&indexFilePath, "index_file_path", "i", "", "final index file, must end in .jsonl")
	cmd.Flags().StringVarP(&queriesFilePath, "queries_file_path", "q", "", "queries file")
	cmd.Flags().StringVarP(&rankerName, "ranker", "r", "", "scoring function (bm25|tfidf)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render results as a table instead of JSON")
	_ = cmd.MarkFlagRequired("index_file_path")
	_ = cmd.MarkFlagRequired("queries_file_path")

	return cmd
}
