package handler

// Result is the dispatcher's verdict on one event, surfaced to the transport
// layer which maps it onto an HTTP status.
type Result int

const (
	// ResultSuccess means the event was handled, or failed in a way
	// redelivery cannot fix (undeliverable recipient).
	ResultSuccess Result = iota + 1

	// ResultRetryNeeded means a transient fault interrupted handling and
	// the sender should redeliver the same event.
	ResultRetryNeeded

	// ResultError means a non-retryable fault; redelivering would fail the
	// same way.
	ResultError
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultRetryNeeded:
		return "retry_needed"
	case ResultError:
		return "error"
	default:
		return "unknown"
	}
}
