package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bft-labs/tenpin/internal/domain"
	"github.com/bft-labs/tenpin/internal/oracle"
	"github.com/bft-labs/tenpin/pkg/bowling"
	"github.com/bft-labs/tenpin/pkg/log"
)

// Result is the outcome of scoring one game.
type Result struct {
	Game domain.Game
	Card domain.Card[int]
	Err  error
}

// Option configures optional behavior of a Runner.
type Option func(*Runner)

// WithLogger sets the logger. If not provided, a no-op logger is used.
func WithLogger(logger log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithVerify enables the recursive cross-check of every segmentation.
func WithVerify(verify bool) Option {
	return func(r *Runner) {
		r.verify = verify
	}
}

// segmentFunc splits rolls into frames.
type segmentFunc func([]int) ([]domain.Frame[int], error)

// Runner scores games for the command line.
type Runner struct {
	logger log.Logger
	verify bool

	segment segmentFunc
	oracle  segmentFunc
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger:  log.NewNoopLogger(),
		segment: bowling.Segment[int],
		oracle:  oracle.Segment[int],
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run segments and scores a single game.
func (r *Runner) Run(ctx context.Context, game domain.Game) (domain.Card[int], error) {
	if err := ctx.Err(); err != nil {
		return domain.Card[int]{}, err
	}
	logger := r.logger.With(log.String("game", game.Name))
	logger.Debug("scoring game", log.Any("rolls", game.Rolls), log.Bool("verify", r.verify))
	start := time.Now()

	var (
		frames []domain.Frame[int]
		err    error
	)
	if r.verify {
		frames, err = r.crossCheck(ctx, game.Rolls)
	} else {
		frames, err = r.segment(game.Rolls)
	}
	if err != nil {
		logger.Warn("game rejected", log.Err(err))
		return domain.Card[int]{}, err
	}

	scores := bowling.Score(frames)
	card := domain.Card[int]{
		Frames: frames,
		Scores: scores,
		Total:  bowling.Total(scores),
	}
	logger.Info("game scored",
		log.Int("frames", card.Size()),
		log.Int("total", card.Total),
		log.Duration("took", time.Since(start)),
	)
	return card, nil
}

// RunAll scores games in order. A failing game does not stop the others.
func (r *Runner) RunAll(ctx context.Context, games []domain.Game) []Result {
	results := make([]Result, 0, len(games))
	for _, g := range games {
		card, err := r.Run(ctx, g)
		results = append(results, Result{Game: g, Card: card, Err: err})
	}
	return results
}

// crossCheck runs the canonical and recursive segmenters concurrently and
// returns the canonical frames if both agree.
func (r *Runner) crossCheck(ctx context.Context, rolls []int) ([]domain.Frame[int], error) {
	var (
		canonical, recursive       []domain.Frame[int]
		canonicalErr, recursiveErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		canonical, canonicalErr = r.segment(rolls)
		return gctx.Err()
	})
	g.Go(func() error {
		recursive, recursiveErr = r.oracle(rolls)
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch {
	case (canonicalErr == nil) != (recursiveErr == nil):
		return nil, fmt.Errorf("%w: canonical error %v, recursive error %v",
			domain.ErrStrategyMismatch, canonicalErr, recursiveErr)
	case canonicalErr != nil:
		return nil, canonicalErr
	case !slices.Equal(canonical, recursive):
		return nil, fmt.Errorf("%w: canonical %v, recursive %v",
			domain.ErrStrategyMismatch, canonical, recursive)
	}
	r.logger.Debug("strategies agree", log.Int("frames", len(canonical)))
	return canonical, nil
}
