package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"writer/internal/core/phrasebook"
	"writer/internal/core/rewrite"
	perr "writer/internal/platform/errors"
	"writer/internal/platform/logger"
	pnet "writer/internal/platform/net"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// cliOptions holds the parsed flags
type cliOptions struct {
	Tone         string
	Contractions bool
	BreakLong    bool
	MaxSentence  int
	NoHeader     bool
	File         string
}

func newRootCmd() *cobra.Command {
	var o cliOptions

	cmd := &cobra.Command{
		Use:   "writer-humanize [text...]",
		Short: "Rewrite stiff text into plainer text",
		Long: `Runs the rewrite pipeline locally, no server needed.

Text comes from the arguments, from --file, or from stdin when neither is given.

Example:
  echo "In conclusion, we must utilize it." | writer-humanize --tone casual`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.Tone, "tone", "t", string(phrasebook.Neutral), "tone: neutral, casual or formal")
	f.BoolVar(&o.Contractions, "contractions", true, "fold phrases like \"do not\" into contractions")
	f.BoolVar(&o.BreakLong, "break-long", true, "split long sentences at a middle comma")
	f.IntVar(&o.MaxSentence, "max-sentence", rewrite.DefaultMaxSentence, "sentence length that triggers a split")
	f.BoolVar(&o.NoHeader, "no-header", false, "print only the rewritten text")
	f.StringVarP(&o.File, "file", "f", "", "read text from this file")

	return cmd
}

func run(cmd *cobra.Command, o cliOptions, args []string) error {
	tone, ok := phrasebook.ParseTone(o.Tone)
	if !ok {
		return perr.WithField(perr.Validationf("unknown tone %q, want neutral, casual or formal", o.Tone), "tone")
	}
	if o.MaxSentence < 1 {
		return perr.InvalidArgf("--max-sentence must be at least 1, got %d", o.MaxSentence)
	}

	text, err := readInput(cmd.InOrStdin(), o.File, args)
	if err != nil {
		return err
	}

	opts := []rewrite.Option{rewrite.WithMaxSentence(o.MaxSentence)}
	if o.NoHeader {
		opts = append(opts, rewrite.WithHeader(""))
	}
	p := rewrite.New(opts...)

	ctx := pnet.WithRequest(cmd.Context(), uuid.NewString(), pnet.OriginCLI)
	res, err := p.Rewrite(ctx, rewrite.Request{
		Text:               text,
		Tone:               tone,
		Contractions:       o.Contractions,
		BreakLongSentences: o.BreakLong,
	})
	if err != nil {
		return err
	}
	logger.C(ctx).Debug().Str("tone", string(tone)).Int("bytes", len(res.Result)).Msg("rewrite printed")

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Result)
	return err
}

// readInput prefers args, then --file, then stdin
func readInput(stdin io.Reader, file string, args []string) (string, error) {
	switch {
	case len(args) > 0 && file != "":
		return "", perr.InvalidArgf("pass text as arguments or --file, not both")
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeNotFound, "read %s", file)
		}
		return string(b), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "read stdin")
	}
	return string(b), nil
}
