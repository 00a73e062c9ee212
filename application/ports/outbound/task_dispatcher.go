package outbound

// TaskDispatcher submits work to the shared worker pool. *ants.Pool
// satisfies it directly.
type TaskDispatcher interface {
	Submit(task func()) error
}
