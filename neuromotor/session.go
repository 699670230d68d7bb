package neuromotor

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// watchdogMultiple is how far past the planned duration a Session will wait
// on the Driver before giving up with KindDriverStalled (spec.md §5: "2x the
// planned duration").
const watchdogMultiple = 2

// Session drives one human-like pointer actor against a Driver. It owns a
// single PRNG and the actor's current on-screen position, protected by mu so
// a Session is safe to share across goroutines even though the cooperative
// scheduling model (spec.md §5) dispatches one move at a time — callers that
// issue Move/Click/Scroll concurrently on the same Session simply queue on
// mu rather than interleaving dispatched samples.
type Session struct {
	mu          sync.Mutex
	id          uuid.UUID
	driver      Driver
	cfg         Config
	rng         *RNG
	logger      *zap.Logger
	pos         Point
	jitterNoise *perlin.Perlin
}

// SessionOption configures a Session at construction.
type SessionOption func(*Session)

// WithLogger attaches a structured logger, matching the teacher's
// Humanoid.logger field (internal/browser/humanoid/humanoid.go). Move logs
// its plan (distance, duration, leg and sample counts) at Debug before
// dispatching; Click logs only through the Move it performs, and Scroll does
// not log. Defaults to a no-op logger so the package is silent unless a
// caller wires one in.
func WithLogger(logger *zap.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// WithStartPosition seeds the actor's initial on-screen position; defaults
// to the origin.
func WithStartPosition(p Point) SessionOption {
	return func(s *Session) { s.pos = p }
}

// NewSession constructs a Session bound to driver with the given validated
// config. cfg must already come from NewConfig (or DefaultConfig); NewSession
// does not re-validate it.
func NewSession(driver Driver, cfg Config, opts ...SessionOption) *Session {
	seed := cfg.Seed
	if !cfg.seedSet {
		seed = int64(uuid.New().ID())
	}

	s := &Session{
		id:          uuid.New(),
		driver:      driver,
		cfg:         cfg,
		rng:         NewRNG(seed),
		logger:      zap.NewNop(),
		jitterNoise: perlin.NewPerlin(2, 2, 3, seed),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session's correlation identifier, included in every log
// line this Session emits.
func (s *Session) ID() uuid.UUID { return s.id }

// Position returns the actor's current on-screen position.
func (s *Session) Position() Point {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Move drives the pointer from its current position to target, returning
// the composed Trace for diagnostics (spec.md §6). Cancellation via ctx is
// observed at each dispatched sample; on cancellation the pointer is left at
// its last successfully dispatched position and KindCancelled is returned.
func (s *Session) Move(ctx context.Context, target Target) (Trace, error) {
	const op = "Session.Move"
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.pos
	distance := start.Dist(target.Center)
	width := target.EffectiveWidth()
	if width <= 0 {
		return Trace{}, newError(KindInvalidGeometry, op, errInvalid("target width/height must be positive"))
	}

	duration, err := FittsDuration(s.rng, s.cfg.Fitts, distance, width)
	if err != nil {
		return Trace{}, err
	}

	legs := PlanSubmovements(s.rng, s.cfg.Submovement, start, target, s.cfg.Fitts.ErrorRate)
	trace := ComposeTrajectory(s.rng, s.cfg, start, target, legs, duration, s.jitterNoise)

	s.logger.Debug("move planned",
		zap.String("session", s.id.String()),
		zap.Float64("distance_px", distance),
		zap.Duration("duration", duration),
		zap.Int("legs", len(legs)),
		zap.Int("samples", len(trace.Samples)),
	)

	if err := s.dispatch(ctx, op, trace); err != nil {
		return trace, err
	}

	if len(trace.Samples) > 0 {
		s.pos = trace.Samples[len(trace.Samples)-1].Pos
	} else {
		s.pos = target.Center
	}
	return trace, nil
}

// dispatch walks trace's samples in order, calling driver.MoveTo for each
// and pacing wall-clock time to match each sample's relative timestamp. It
// enforces both cooperative cancellation (ctx.Done()) and the watchdog
// deadline (spec.md §5, §7).
func (s *Session) dispatch(ctx context.Context, op string, trace Trace) error {
	if len(trace.Samples) == 0 {
		return nil
	}

	deadline := time.Now().Add(watchdogMultiple * trace.Duration)
	moveStart := time.Now()

	for _, sample := range trace.Samples {
		select {
		case <-ctx.Done():
			return newError(KindCancelled, op, ctx.Err())
		default:
		}

		if time.Now().After(deadline) {
			return newError(KindDriverStalled, op, nil)
		}

		if wait := moveStart.Add(sample.T).Sub(time.Now()); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return newError(KindCancelled, op, ctx.Err())
			case <-timer.C:
			}
		}

		callCtx, cancel := context.WithDeadline(ctx, deadline)
		err := s.driver.MoveTo(callCtx, sample.Pos)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return newError(KindCancelled, op, ctx.Err())
			}
			if !time.Now().Before(deadline) {
				return newError(KindDriverStalled, op, err)
			}
			return newError(KindDriverError, op, err)
		}
		s.pos = sample.Pos
	}

	return nil
}

// Click moves to target, then performs a press/hold/release sequence with
// log-normally distributed press duration and dwell time (spec.md §4.7,
// §6). ButtonUp is always attempted once ButtonDown succeeds, even when ctx
// is cancelled mid-hold, so the Driver never sees a stuck button (spec.md
// §5's release-on-cancel guarantee).
func (s *Session) Click(ctx context.Context, target Target, button int) (Trace, error) {
	const op = "Session.Click"

	trace, err := s.Move(ctx, target)
	if err != nil {
		return trace, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dwellMs := s.rng.LogNormal(s.cfg.Click.DwellMu, s.cfg.Click.DwellSigma)
	dwellMs = clampFloat(dwellMs, s.cfg.Click.DwellMinMs, s.cfg.Click.DwellMaxMs)
	dwell := time.Duration(dwellMs * float64(time.Millisecond))

	dwellTimer := time.NewTimer(dwell)
	select {
	case <-ctx.Done():
		dwellTimer.Stop()
		return trace, newError(KindCancelled, op, ctx.Err())
	case <-dwellTimer.C:
	}

	holdMs := s.rng.LogNormal(s.cfg.Click.DurationMu, s.cfg.Click.DurationSigma)
	holdMs = clampFloat(holdMs, s.cfg.Click.DurationMinMs, s.cfg.Click.DurationMaxMs)
	hold := time.Duration(holdMs * float64(time.Millisecond))

	if err := s.driver.ButtonDown(ctx, button); err != nil {
		if ctx.Err() != nil {
			return trace, newError(KindCancelled, op, ctx.Err())
		}
		return trace, newError(KindDriverError, op, err)
	}

	var holdErr error
	timer := time.NewTimer(hold)
	select {
	case <-ctx.Done():
		holdErr = newError(KindCancelled, op, ctx.Err())
		timer.Stop()
	case <-timer.C:
	}

	releaseCtx := ctx
	if holdErr != nil {
		// The hold was cancelled; still release the button, but against a
		// fresh background context since ctx is already done.
		releaseCtx = context.Background()
	}
	if upErr := s.driver.ButtonUp(releaseCtx, button); upErr != nil && holdErr == nil {
		holdErr = newError(KindDriverError, op, upErr)
	}

	return trace, holdErr
}

// scrollSpeedPxPerSec is the nominal wheel speed used to turn a scroll delta
// into a duration, the same role distance/width plays for Move (spec.md §6:
// "reuses §4.3 profile for magnitude over time").
const scrollSpeedPxPerSec = 800.0

// Scroll paces a scroll delta over wall-clock time using the same minimum-jerk
// magnitude profile Move uses for position (spec.md §6), dispatching
// incremental driver.Scroll calls rather than one instantaneous jump.
func (s *Session) Scroll(ctx context.Context, dx, dy float64) error {
	const op = "Session.Scroll"
	s.mu.Lock()
	defer s.mu.Unlock()

	mag := math.Hypot(dx, dy)
	if mag <= 1e-9 {
		return nil
	}

	seconds := mag / scrollSpeedPxPerSec
	duration := time.Duration(seconds * float64(time.Second))
	if duration < minMovementDuration {
		duration = minMovementDuration
	}
	if duration > maxMovementDuration {
		duration = maxMovementDuration
	}

	profile := GenerateProfile(duration.Seconds(), s.cfg.SampleRateHz, s.cfg.VelocityAsymmetry)

	deadline := time.Now().Add(watchdogMultiple * duration)
	scrollStart := time.Now()

	prevS := 0.0
	for i, sFrac := range profile.S {
		select {
		case <-ctx.Done():
			return newError(KindCancelled, op, ctx.Err())
		default:
		}

		if time.Now().After(deadline) {
			return newError(KindDriverStalled, op, nil)
		}

		if i > 0 {
			if wait := scrollStart.Add(time.Duration(profile.T[i] * float64(time.Second))).Sub(time.Now()); wait > 0 {
				timer := time.NewTimer(wait)
				select {
				case <-ctx.Done():
					timer.Stop()
					return newError(KindCancelled, op, ctx.Err())
				case <-timer.C:
				}
			}
		}

		step := sFrac - prevS
		prevS = sFrac
		if step <= 0 {
			continue
		}

		callCtx, cancel := context.WithDeadline(ctx, deadline)
		err := s.driver.Scroll(callCtx, dx*step, dy*step)
		cancel()
		if err != nil {
			if ctx.Err() != nil {
				return newError(KindCancelled, op, ctx.Err())
			}
			if !time.Now().Before(deadline) {
				return newError(KindDriverStalled, op, err)
			}
			return newError(KindDriverError, op, err)
		}
	}

	return nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
