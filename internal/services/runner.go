package services

import (
	"sync"
	"time"
)

// Runner drives a Simulator on a fixed wall-clock period. It is the only tick
// source for its simulator: the loop exits on the terminal update or on Stop,
// whichever comes first, so a stopped runner never produces further updates.
type Runner struct {
	sim      *Simulator
	interval time.Duration
	onTick   func(TickUpdate)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// StartRunner begins ticking the simulator every interval, invoking onTick
// with each snapshot. onTick is always called from the runner goroutine.
func StartRunner(sim *Simulator, interval time.Duration, onTick func(TickUpdate)) *Runner {
	r := &Runner{
		sim:      sim,
		interval: interval,
		onTick:   onTick,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Runner) loop() {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			r.sim.Cancel()
			r.onTick(r.sim.Snapshot())
			return
		case <-ticker.C:
			u := r.sim.Advance(r.interval)
			r.onTick(u)
			if u.State != TripRunning {
				return
			}
		}
	}
}

// Stop cancels the simulation and blocks until the tick loop has exited.
// Idempotent; safe to call after the run already completed.
func (r *Runner) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
	<-r.done
}

// Done is closed when the tick loop has exited.
func (r *Runner) Done() <-chan struct{} {
	return r.done
}
