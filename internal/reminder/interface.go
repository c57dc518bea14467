package reminder

import "context"

// Notifier is the delivery port for a single reminder. Implementations own
// their own timeout and retry policy; the scheduler never imposes one.
type Notifier interface {
	// Schedule registers one notification and returns an opaque handle that
	// can later be passed to Cancel.
	Schedule(ctx context.Context, req Request) (string, error)
	// Cancel revokes a previously issued handle. Cancelling an unknown or
	// already-fired handle is not an error.
	Cancel(ctx context.Context, handle string) error
}

// Scheduler expands a recurrence rule into concrete notification instants
// and registers each one with the Notifier.
type Scheduler interface {
	// Schedule issues one Notifier call per occurrence, sequentially and in
	// generation order, and returns the handles in the same order. On a
	// Notifier failure it stops and returns the handles issued so far
	// together with the error; it never cancels them implicitly.
	Schedule(ctx context.Context, input ScheduleInput) ([]string, error)
	// CancelAll revokes the given handles. Cancellations run concurrently
	// and a failing handle never blocks its siblings; failures are logged,
	// not returned.
	CancelAll(ctx context.Context, handles []string)
}
