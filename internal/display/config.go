package display

import (
	"strconv"

	"github.com/fatih/color"

	"mneme-index/internal/config"
	"mneme-index/internal/logger"
)

// PrintConfig renders the effective configuration (defaults merged with
// any TOML file) in the same bracket/color style as the teacher's config
// printer, but walking cfg's known fields directly rather than via
// reflection — this struct has one shape, not six config sections.
func PrintConfig(cfg config.Config) {
	sectionColor := color.New(color.FgCyan, color.Bold)
	keyColor := color.New(color.FgWhite)
	valueColor := color.New(color.FgGreen)

	kv := func(key string, value string) {
		logger.PrintRaw("%s", "  "+keyColor.Sprint(key)+": "+valueColor.Sprint(value))
	}

	logger.PrintRaw("")
	logger.PrintRaw("%s", sectionColor.Sprint("[CONFIG]"))
	kv("batch_size", strconv.Itoa(cfg.BatchSize))
	kv("worker_count", workerCountLabel(cfg.WorkerCount))
	kv("queue_depth", strconv.Itoa(cfg.QueueDepth))
	kv("ranker", cfg.Ranker)
	kv("k1", strconv.FormatFloat(cfg.K1, 'g', -1, 64))
	kv("b", strconv.FormatFloat(cfg.B, 'g', -1, 64))
	kv("top_k", strconv.Itoa(cfg.TopK))
	logger.PrintRaw("")
}

func workerCountLabel(n int) string {
	if n == 0 {
		return "auto (NumCPU, capped)"
	}
	return strconv.Itoa(n)
}
