package controller

import "time"

// Step is one action of a timed sequence. Delay is measured from the moment
// the previous step was due, or from Start for the first step.
type Step struct {
	Delay time.Duration
	Do    func()
}

type sequence struct {
	steps []Step
	next  int
	at    time.Duration
}

// run executes every step due at or before now and reports whether steps
// remain.
func (s *sequence) run(now time.Duration) bool {
	for s.next < len(s.steps) {
		step := s.steps[s.next]
		due := s.at + step.Delay
		if due > now {
			return true
		}
		s.at = due
		s.next++
		if step.Do != nil {
			step.Do()
		}
	}
	return false
}

// Timeline advances timed step sequences on the caller's clock. Sequences
// run until their last step; there is no way to stop one early.
type Timeline struct {
	now  time.Duration
	seqs []*sequence
}

// Now is the total time advanced so far.
func (t *Timeline) Now() time.Duration {
	return t.now
}

// Pending is the number of sequences with steps still to run.
func (t *Timeline) Pending() int {
	return len(t.seqs)
}

// Start begins a sequence. Leading steps without a delay run before Start
// returns.
func (t *Timeline) Start(steps ...Step) {
	seq := &sequence{steps: steps, at: t.now}
	if seq.run(t.now) {
		t.seqs = append(t.seqs, seq)
	}
}

// Advance moves the clock forward by dt and runs every step that came due,
// oldest sequence first.
func (t *Timeline) Advance(dt time.Duration) {
	t.now += dt

	// Steps may start new sequences, so the length is re-read each pass.
	for i := 0; i < len(t.seqs); i++ {
		if !t.seqs[i].run(t.now) {
			t.seqs[i] = nil
		}
	}

	live := t.seqs[:0]
	for _, s := range t.seqs {
		if s != nil {
			live = append(live, s)
		}
	}
	for i := len(live); i < len(t.seqs); i++ {
		t.seqs[i] = nil
	}
	t.seqs = live
}
