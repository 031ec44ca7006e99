package display

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"mneme-index/internal/core"
)

// PrintIndexingSummary renders the post-run table an indexer invocation
// prints when not run with --quiet: documents indexed, distinct tokens,
// index size on disk, and wall-clock elapsed time.
func PrintIndexingSummary(stats core.IndexingStatistics) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Documents", "Distinct Tokens", "Avg Tokens/Doc", "Avg List Size", "Index Size", "Elapsed")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(os.Stdout)

	tbl.AddRow(
		stats.NumberOfDocuments,
		stats.NumberOfLists,
		fmt.Sprintf("%.1f", stats.AverageTokensPerDocument),
		fmt.Sprintf("%.1f", stats.AverageListSize),
		fmt.Sprintf("%.2f MB", stats.IndexSizeMB),
		time.Duration(stats.ElapsedSeconds*float64(time.Second)).Round(time.Millisecond),
	)

	fmt.Println()
	tbl.Print()
}

// PrintQueryResults renders one query's ranked hits as a table, used by
// the processor's --pretty output mode in place of the raw JSON line.
func PrintQueryResults(result core.QueryResult) {
	headerFmt := color.New(color.FgGreen, color.Underline).SprintfFunc()
	columnFmt := color.New(color.FgYellow).SprintfFunc()

	tbl := table.New("Rank", "DocID", "Score")
	tbl.WithHeaderFormatter(headerFmt).WithFirstColumnFormatter(columnFmt).WithWriter(os.Stdout)

	for i, r := range result.Results {
		tbl.AddRow(i+1, string(r.ID), fmt.Sprintf("%.4f", r.Score))
	}

	fmt.Printf("\nQuery: %q\n", result.Query)
	tbl.Print()
}

// PrintQueryResultJSON writes one query result as a single compact JSON
// line, matching spec.md's `{"Query":..., "Results":[...]}` wire shape.
func PrintQueryResultJSON(result core.QueryResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
