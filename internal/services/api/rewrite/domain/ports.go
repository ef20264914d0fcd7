package domain

import "context"

// Humanizer is the port other modules use to rewrite text
type Humanizer interface {
	Humanize(ctx context.Context, in HumanizeInput) (HumanizeResult, error)
	Tones() TonesResp
	Phrasebook() PhrasebookInfo
}
