package sgd

import "math"

// Scheduler yields a non-increasing learning-rate sequence η_0 … η_{tMax−1}
// running from ηmax down to (approximately) ηmin. Step hands the current
// rate to the callback and advances; Run steps until finished.
type Scheduler interface {
	Run(callback func(eta float64))
	Step(callback func(eta float64))
	IsFinished() bool
}

// countdown tracks progress through a fixed number of ticks.
type countdown struct {
	t, tMax int
}

// IsFinished reports whether every tick has been consumed.
func (c *countdown) IsFinished() bool { return c.t >= c.tMax }

// frac returns t/(tMax−1) in [0, 1]; 0 when the run has a single tick.
func (c *countdown) frac() float64 {
	if c.tMax <= 1 {
		return 0
	}

	return float64(c.t) / float64(c.tMax-1)
}

// ConstantScheduler holds the learning rate flat at ηmin.
type ConstantScheduler struct {
	countdown
	eta float64
}

// NewConstantScheduler returns a scheduler yielding etaMin on every tick.
func NewConstantScheduler(tMax int, etaMin, _ float64) *ConstantScheduler {
	return &ConstantScheduler{countdown: countdown{tMax: tMax}, eta: etaMin}
}

func (s *ConstantScheduler) Step(callback func(float64)) {
	callback(s.eta)
	s.t++
}

func (s *ConstantScheduler) Run(callback func(float64)) { runScheduler(s, callback) }

// LinearScheduler decays the learning rate on a straight line from
// etaMax to etaMin.
type LinearScheduler struct {
	countdown
	etaMin, etaMax float64
}

func NewLinearScheduler(tMax int, etaMin, etaMax float64) *LinearScheduler {
	return &LinearScheduler{countdown: countdown{tMax: tMax}, etaMin: etaMin, etaMax: etaMax}
}

func (s *LinearScheduler) Step(callback func(float64)) {
	callback(s.etaMax - (s.etaMax-s.etaMin)*s.frac())
	s.t++
}

func (s *LinearScheduler) Run(callback func(float64)) { runScheduler(s, callback) }

// QuadraticScheduler decays slowly at first and steeply at the end:
// η_t = etaMax − (etaMax − etaMin)·(t/(tMax−1))².
type QuadraticScheduler struct {
	countdown
	etaMin, etaMax float64
}

func NewQuadraticScheduler(tMax int, etaMin, etaMax float64) *QuadraticScheduler {
	return &QuadraticScheduler{countdown: countdown{tMax: tMax}, etaMin: etaMin, etaMax: etaMax}
}

func (s *QuadraticScheduler) Step(callback func(float64)) {
	f := s.frac()
	callback(s.etaMax - (s.etaMax-s.etaMin)*f*f)
	s.t++
}

func (s *QuadraticScheduler) Run(callback func(float64)) { runScheduler(s, callback) }

// ExponentialScheduler decays geometrically, fast first and gently at
// the end: η_t = etaMax·exp(ln(etaMin/etaMax)·t/(tMax−1)). This is the
// shape the optimizer factory hands out.
type ExponentialScheduler struct {
	countdown
	a, b float64
}

func NewExponentialScheduler(tMax int, etaMin, etaMax float64) *ExponentialScheduler {
	s := &ExponentialScheduler{countdown: countdown{tMax: tMax}, a: etaMax}
	if tMax > 1 {
		s.b = math.Log(etaMin/etaMax) / float64(tMax-1)
	}

	return s
}

func (s *ExponentialScheduler) Step(callback func(float64)) {
	callback(s.a * math.Exp(s.b*float64(s.t)))
	s.t++
}

func (s *ExponentialScheduler) Run(callback func(float64)) { runScheduler(s, callback) }

// ReciprocalScheduler decays harmonically:
// η_t = etaMax / (1 + (etaMax/etaMin − 1)·t/(tMax−1)).
type ReciprocalScheduler struct {
	countdown
	etaMin, etaMax float64
}

func NewReciprocalScheduler(tMax int, etaMin, etaMax float64) *ReciprocalScheduler {
	return &ReciprocalScheduler{countdown: countdown{tMax: tMax}, etaMin: etaMin, etaMax: etaMax}
}

func (s *ReciprocalScheduler) Step(callback func(float64)) {
	callback(s.etaMax / (1 + (s.etaMax/s.etaMin-1)*s.frac()))
	s.t++
}

func (s *ReciprocalScheduler) Run(callback func(float64)) { runScheduler(s, callback) }

// runScheduler drains the scheduler, handing every tick's rate to the
// callback.
func runScheduler(s Scheduler, callback func(float64)) {
	for !s.IsFinished() {
		s.Step(callback)
	}
}
