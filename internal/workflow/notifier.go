package workflow

import "context"

type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Notice is a user-facing message produced by an operation.
type Notice struct {
	Level Level
	Text  string
}

// Notifier shows notices to the user. Implementations may block until the
// user acknowledges the notice.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) {
	f(ctx, n)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notice) {}
