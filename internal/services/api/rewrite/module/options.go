package module

import (
	"strings"

	"writer/internal/core/rewrite"
	"writer/internal/platform/config"
)

// PipelineOptions reads the pipeline knobs from cfg
// MAX_SENTENCE sets the splitter threshold; HEADER, when set even to "", replaces the header
// and may spell newlines as \n
func PipelineOptions(cfg config.Conf) []rewrite.Option {
	opts := []rewrite.Option{
		rewrite.WithMaxSentence(cfg.MayInt("MAX_SENTENCE", rewrite.DefaultMaxSentence)),
	}
	if h, ok := cfg.Lookup("HEADER"); ok {
		opts = append(opts, rewrite.WithHeader(strings.ReplaceAll(h, `\n`, "\n")))
	}
	return opts
}
