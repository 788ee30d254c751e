package riichi

import (
	"github.com/rs/zerolog"
)

// Reason explains a non-winning result.
type Reason string

const (
	ReasonNone Reason = ""
	NotAgari   Reason = "NotAgari" // The tiles do not form a winning shape
	NoYaku     Reason = "NoYaku"   // Winning shape, but nothing scores (dora alone never does)
)

// Result is the official reading of a hand: the highest-scoring decomposition and wait.
type Result struct {
	IsWinning         bool           `json:"is_winning"`
	Reason            Reason         `json:"reason,omitempty"`
	Yaku              []YakuEntry    `json:"yaku"`
	TotalHan          int            `json:"total_han"`
	Fu                int            `json:"fu"`
	Score             int            `json:"score"` // Hand value collected by the winner, before honba and sticks
	Band              Band           `json:"band"`
	YakumanMultiplier int            `json:"yakuman_multiplier,omitempty"`
	Payment           Payment        `json:"payment"`
	Wait              WaitType       `json:"wait"`
	Decomposition     *Decomposition `json:"decomposition,omitempty"`
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithDecomposer shares a decomposition cache between evaluators.
func WithDecomposer(dc *Decomposer) Option {
	return func(e *Evaluator) {
		e.decomposer = dc
	}
}

// WithLogger sends the evaluator's debug and warning events to l.
// Without it the evaluator is silent.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Evaluator) {
		e.log = l
	}
}

// Evaluator scores winning hands under one rule set. It holds no per-call state
// and is safe for concurrent use.
type Evaluator struct {
	rules      Rules
	decomposer *Decomposer
	log        zerolog.Logger
}

// NewEvaluator creates an Evaluator. Invalid rules fall back to the defaults.
func NewEvaluator(rules Rules, opts ...Option) *Evaluator {
	e := &Evaluator{rules: rules, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	if err := rules.Validate(); err != nil {
		e.log.Warn().Err(err).Msg("invalid rules, using defaults")
		e.rules = DefaultRules()
	}
	if e.decomposer == nil {
		e.decomposer = NewDecomposer(e.rules.CacheSize)
		e.decomposer.SetLogger(e.log)
	}
	return e
}

// Rules returns the rule set the evaluator scores with.
func (e *Evaluator) Rules() Rules { return e.rules }

// Decomposer returns the evaluator's decomposition cache.
func (e *Evaluator) Decomposer() *Decomposer { return e.decomposer }

var defaultEvaluator = NewEvaluator(DefaultRules())

// EvaluateWinningHand scores a 14-tile hand with the default rules.
func EvaluateWinningHand(h Hand, ctx Context) (Result, error) {
	return defaultEvaluator.Evaluate(h, ctx)
}

// Evaluate validates the input, reads every decomposition and winning-tile placement,
// and returns the most valuable one. Malformed input is an error; a hand that does not
// win is a Result with IsWinning false.
func (e *Evaluator) Evaluate(h Hand, ctx Context) (Result, error) {
	if err := ValidateHand(h); err != nil {
		return Result{}, err
	}
	if err := ValidateContext(ctx, h); err != nil {
		return Result{}, err
	}

	decomps := e.decomposer.Decompose(h)
	if len(decomps) == 0 {
		e.log.Debug().Str("hand", Notation(sortedCopy(h.Concealed))).Msg("not a winning shape")
		return Result{Yaku: []YakuEntry{}, Reason: NotAgari}, nil
	}

	var best *Result
	for i := range decomps {
		for _, p := range Placements(decomps[i], h) {
			v := newHandView(h, ctx, e.rules, decomps[i], p)
			yaku := identifyYaku(v)
			if len(yaku) == 0 {
				continue
			}
			cand := e.price(v, yaku)
			if best == nil || better(cand, *best) {
				best = &cand
			}
		}
	}

	if best == nil {
		e.log.Debug().Int("readings", len(decomps)).Msg("winning shape without yaku")
		return Result{Yaku: []YakuEntry{}, Reason: NoYaku}, nil
	}
	e.log.Debug().
		Int("readings", len(decomps)).
		Int("han", best.TotalHan).
		Int("fu", best.Fu).
		Int("score", best.Score).
		Str("band", best.Band.String()).
		Msg("hand evaluated")
	return *best, nil
}

// price turns one reading with its yaku into a scored result.
func (e *Evaluator) price(v *handView, yaku []YakuEntry) Result {
	fu := calculateFu(v, yaku)
	d := v.d

	var s Score
	if yaku[0].Yakuman {
		units := 0
		for _, y := range yaku {
			units += y.Han / 13
		}
		s = CalculateYakumanScore(units, fu, v.ctx.IsDealer, v.ctx.WinMethod, e.rules)
	} else {
		yaku = append(yaku, doraEntries(v)...)
		han := 0
		for _, y := range yaku {
			han += y.Han
		}
		s = CalculateScore(han, fu, v.ctx.IsDealer, v.ctx.WinMethod, e.rules)
	}
	s.Payment = CalculatePointPayment(s, v.ctx.IsDealer, v.ctx.WinMethod, v.ctx.Honba, v.ctx.RiichiSticks)

	return Result{
		IsWinning:         true,
		Yaku:              yaku,
		TotalHan:          s.Han,
		Fu:                s.Fu,
		Score:             s.Points,
		Band:              s.Band,
		YakumanMultiplier: s.YakumanMultiplier,
		Payment:           s.Payment,
		Wait:              v.p.Wait,
		Decomposition:     &d,
	}
}

// better orders candidates by points, then han, then fu. Ties keep the earlier one.
func better(a, b Result) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.TotalHan != b.TotalHan {
		return a.TotalHan > b.TotalHan
	}
	return a.Fu > b.Fu
}
