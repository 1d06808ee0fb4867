// Package async implements the single-worker background task engine from
// spec §4.10: a long-lived goroutine draining an in-queue of tasks and
// posting results to an out-queue, so the editor's UI loop never blocks
// on network-bound work.
package async

// InMessage is the closed sum type of everything the worker accepts.
type InMessage interface{ isIn() }

// AiChat requests one AI provider round trip. ID correlates the eventual
// AiReply or TaskError back to the request; Submit assigns one if empty.
type AiChat struct {
	ID        string
	Provider  string
	Prompt    string
	SystemMsg string
}

func (AiChat) isIn() {}

// Shutdown asks the worker to cancel all outstanding tasks, drain, and
// exit.
type Shutdown struct{}

func (Shutdown) isIn() {}

// OutMessage is the closed sum type of everything the worker posts back.
type OutMessage interface{ isOut() }

// AiReply carries a completed AI provider response.
type AiReply struct {
	ID       string
	Provider string
	Text     string
}

func (AiReply) isOut() {}

// TaskErrorKind classifies why a task failed, per spec §4.10/§6.
type TaskErrorKind string

const (
	ErrTimeout   TaskErrorKind = "timeout"
	ErrAuth      TaskErrorKind = "auth"
	ErrQuota     TaskErrorKind = "quota"
	ErrRateLimit TaskErrorKind = "rate_limit"
	ErrBadInput  TaskErrorKind = "bad_request"
	ErrServer    TaskErrorKind = "server"
	ErrNetwork   TaskErrorKind = "network"
	ErrUnknown   TaskErrorKind = "unknown"
)

// TaskError reports a failed task with a bounded, user-facing message.
type TaskError struct {
	ID      string
	Kind    TaskErrorKind
	Message string
}

func (TaskError) isOut() {}

// KindedError lets an AskFunc report one of the fine-grained
// TaskErrorKinds directly (e.g. quota or rate_limit, which have no
// corresponding errs.Kind) instead of relying on classify's coarser
// errs.Kind mapping.
type KindedError struct {
	Kind TaskErrorKind
	Err  error
}

func (e *KindedError) Error() string { return e.Err.Error() }
func (e *KindedError) Unwrap() error { return e.Err }
