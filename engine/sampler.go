package engine

import (
	"context"
	"fmt"
	"time"

	"signaling/game"
	"signaling/meta"
	"signaling/metrics"
	"signaling/strategy"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

type Option func(o *options)

type options struct {
	goroutines int
	episodes   int
	duration   time.Duration
	seed       uint64
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(o *options) {
		if goroutines > 0 {
			o.goroutines = goroutines
		}
	}
}

// WithEpisodes fixes the number of sampled rounds. With a fixed seed the
// estimate is then reproducible bit for bit.
func WithEpisodes(episodes int) Option {
	return func(o *options) {
		if episodes > 0 {
			o.episodes = episodes
			o.duration = 0
		}
	}
}

// WithDuration samples until the duration elapses instead of for a fixed
// number of episodes. Results depend on scheduling.
func WithDuration(duration time.Duration) Option {
	return func(o *options) {
		if duration > 0 {
			o.duration = duration
			o.episodes = 0
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

func WithMetrics() Option {
	return func(o *options) {
		o.metrics = metrics.NewCollector()
	}
}

// WithConfig replaces goroutines, episodes, duration and seed with the fields
// of cfg, zero values included. It does not merge with options applied before
// it; options after it still override. An invalid cfg makes NewSampler fail.
func WithConfig(cfg meta.Config) Option {
	return func(o *options) {
		o.goroutines = cfg.Goroutines
		o.episodes = cfg.Episodes
		o.duration = cfg.Duration
		o.seed = cfg.Seed
	}
}

// Estimate is a Monte-Carlo estimate of expected payoffs.
type Estimate struct {
	Payoff   game.Payoff
	Episodes int
	Metric   metrics.SampleMetric
}

// Sampler estimates expected payoffs by playing rounds. Unlike Calculator it
// accepts any strategy, including ones that only know how to Play.
//
// A Sampler built WithMetrics shares one collector between runs, so its runs
// should not overlap.
type Sampler[S, M, A comparable] struct {
	game game.Game[S, M, A]
	options
}

func NewSampler[S, M, A comparable](g game.Game[S, M, A], opts ...Option) (*Sampler[S, M, A], error) {
	if g == nil {
		return nil, fmt.Errorf("%w: game cannot be nil", game.ErrInvalidArgument)
	}
	s := &Sampler[S, M, A]{ // Default values
		game: g,
		options: options{
			goroutines: meta.DEFAULT_GOROUTINES,
			episodes:   meta.DEFAULT_EPISODES,
			seed:       meta.DEFAULT_SEED,
			metrics:    metrics.NewDummyCollector(),
		},
	}
	for _, opt := range opts {
		opt(&s.options)
	}
	cfg := meta.Config{Goroutines: s.goroutines, Episodes: s.episodes, Duration: s.duration, Seed: s.seed}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidArgument, err)
	}
	return s, nil
}

// tally is one worker's share of the estimate.
type tally struct {
	sender   float64
	receiver float64
	episodes int
}

// Run plays rounds on independent workers. Worker i draws from its own source
// seeded with seed+i; tallies are combined in worker order.
func (s *Sampler[S, M, A]) Run(ctx context.Context, sender strategy.Strategy[S, M], receiver strategy.Strategy[M, A]) (Estimate, error) {
	if sender == nil || receiver == nil {
		return Estimate{}, fmt.Errorf("%w: sender and receiver strategies are required", game.ErrInvalidArgument)
	}

	log.Info().Msgf("starting sampled estimate with %d goroutines...", s.goroutines)
	s.metrics.Start(s.goroutines)

	tallies := make([]tally, s.goroutines)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.goroutines)
	start := time.Now()
	for i := 0; i < s.goroutines; i++ {
		i := i
		src := rand.NewSource(s.seed + uint64(i))
		quota := s.quota(i)
		group.Go(func() error {
			return s.work(groupCtx, start, quota, src, sender, receiver, &tallies[i])
		})
	}
	if err := group.Wait(); err != nil {
		return Estimate{}, err
	}

	var total tally
	for _, t := range tallies {
		total.sender += t.sender
		total.receiver += t.receiver
		total.episodes += t.episodes
	}
	if total.episodes == 0 {
		return Estimate{}, fmt.Errorf("no episodes completed within %s", s.duration)
	}

	estimate := Estimate{
		Payoff: game.Payoff{
			Sender:   total.sender / float64(total.episodes),
			Receiver: total.receiver / float64(total.episodes),
		},
		Episodes: total.episodes,
		Metric:   s.metrics.Complete(),
	}
	log.Info().Msgf("completed sampled estimate over %d episodes: %s", estimate.Episodes, estimate.Payoff)
	return estimate, nil
}

// quota splits episodes across workers. It is unused in duration mode.
func (s *Sampler[S, M, A]) quota(worker int) int {
	if s.episodes == 0 {
		return 0
	}
	n := s.episodes / s.goroutines
	if worker < s.episodes%s.goroutines {
		n++
	}
	return n
}

func (s *Sampler[S, M, A]) work(ctx context.Context, start time.Time, quota int, src rand.Source,
	sender strategy.Strategy[S, M], receiver strategy.Strategy[M, A], out *tally) error {
	for {
		if s.episodes > 0 && out.episodes >= quota {
			return nil
		}
		if s.episodes == 0 && time.Since(start) >= s.duration {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		round, err := Play(s.game, sender, receiver, src)
		if err != nil {
			s.metrics.AddFailure()
			return err
		}
		out.sender += round.Payoff.Sender
		out.receiver += round.Payoff.Receiver
		out.episodes++
		s.metrics.AddEpisode()
	}
}
