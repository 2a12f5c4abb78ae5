package events

// EventType represents the type of store event
type EventType string

// Event is the base interface for all store events
type Event interface {
	GetType() EventType
	GetStore() string
	IsCancelled() bool
	Cancel()
}

// StoreEvent describes one step of a store mutation
type StoreEvent struct {
	Type      EventType
	Store     string
	Operation string
	EntityID  string
	Err       error
	Cancelled bool
}

func (e *StoreEvent) GetType() EventType { return e.Type }
func (e *StoreEvent) GetStore() string   { return e.Store }
func (e *StoreEvent) IsCancelled() bool  { return e.Cancelled }
func (e *StoreEvent) Cancel()            { e.Cancelled = true }

// ListenerFunc adapts a plain function into an EventListener
type ListenerFunc struct {
	id       string
	priority int
	fn       func(Event) error
}

// NewListener wraps fn as a listener with the given id and priority
func NewListener(id string, priority int, fn func(Event) error) *ListenerFunc {
	return &ListenerFunc{id: id, priority: priority, fn: fn}
}

func (l *ListenerFunc) HandleEvent(event Event) error { return l.fn(event) }
func (l *ListenerFunc) Priority() int                 { return l.priority }
func (l *ListenerFunc) ID() string                    { return l.id }
