// Package deferred holds the recurring-or-one-shot task contract shared by
// the reminder scheduler and the lease manager.
package deferred

import (
	"context"
	"time"

	"github.com/mkovridov/schedcore/internal/timer"
)

// NextAction tells the runner what to do after a task ran. The zero value
// terminates the task.
type NextAction struct {
	after      time.Duration
	reschedule bool
}

// Terminate ends the task: no further timer is armed.
func Terminate() NextAction {
	return NextAction{}
}

// RescheduleAfter re-arms the task after d.
func RescheduleAfter(d time.Duration) NextAction {
	return NextAction{after: d, reschedule: true}
}

// Task is a unit of deferred work keyed in the timer registry.
type Task interface {
	Key() timer.Key
	OnDue(ctx context.Context) NextAction
}

// Runner arms tasks in the timer registry and keeps re-arming them for as
// long as OnDue asks for a reschedule. A task's next timer is only armed
// after the current OnDue call returned, so each task's fires are serialized
// relative to themselves.
type Runner struct {
	reg *timer.Registry
}

func NewRunner(reg *timer.Registry) *Runner {
	return &Runner{reg: reg}
}

// Arm schedules the task to run after delay.
func (r *Runner) Arm(task Task, delay time.Duration) {
	r.reg.Schedule(task.Key(), delay, func() {
		r.run(task)
	})
}

// FireNow runs the task on the calling goroutine, bypassing the registry.
// Reconciliation uses this for tasks that are already overdue instead of
// arming a zero-delay timer.
func (r *Runner) FireNow(task Task) {
	r.run(task)
}

// Disarm cancels the task's pending timer, if any.
func (r *Runner) Disarm(key timer.Key) bool {
	return r.reg.Cancel(key)
}

// Armed reports whether the task currently has a pending timer.
func (r *Runner) Armed(key timer.Key) bool {
	return r.reg.IsScheduled(key)
}

func (r *Runner) run(task Task) {
	next := task.OnDue(context.Background())
	if next.reschedule {
		r.Arm(task, next.after)
	}
}
