package event

// EventType identifies an environment notification
type EventType uint8

const (
	EventResize EventType = iota
	EventPointerMove
	eventTypeCount
)

var typeNames = [eventTypeCount]string{
	EventResize:      "Resize",
	EventPointerMove: "PointerMove",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return typeNames[t]
	}
	return "Unknown"
}

// ResizeFunc receives new surface dimensions in surface units
type ResizeFunc func(width, height float64)

// PointerFunc receives a pointer position in surface units
type PointerFunc func(x, y float64)

type listener struct {
	id       uint64
	resize   ResizeFunc
	pointer  PointerFunc
	eventTyp EventType
}

// Bus dispatches host environment events to registered listeners
//
// Architecture:
//   - Single-threaded dispatch on the host loop goroutine
//   - Listeners run in registration order
//   - Registration returns a remove func, removal is idempotent
//   - Listeners removed during dispatch are not called afterwards
type Bus struct {
	nextID    uint64
	listeners [eventTypeCount][]listener
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{}
}

// OnResize registers fn for resize events
func (b *Bus) OnResize(fn ResizeFunc) (remove func()) {
	return b.add(listener{resize: fn, eventTyp: EventResize})
}

// OnPointerMove registers fn for pointer-move events
func (b *Bus) OnPointerMove(fn PointerFunc) (remove func()) {
	return b.add(listener{pointer: fn, eventTyp: EventPointerMove})
}

func (b *Bus) add(l listener) func() {
	b.nextID++
	l.id = b.nextID
	b.listeners[l.eventTyp] = append(b.listeners[l.eventTyp], l)

	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		b.remove(l.eventTyp, l.id)
	}
}

func (b *Bus) remove(t EventType, id uint64) {
	list := b.listeners[t]
	for i := range list {
		if list[i].id == id {
			// Copy-on-remove so an in-flight dispatch keeps iterating its own snapshot
			next := make([]listener, 0, len(list)-1)
			next = append(next, list[:i]...)
			next = append(next, list[i+1:]...)
			b.listeners[t] = next
			return
		}
	}
}

// EmitResize notifies resize listeners
func (b *Bus) EmitResize(width, height float64) {
	for _, l := range b.listeners[EventResize] {
		if !b.alive(EventResize, l.id) {
			continue
		}
		l.resize(width, height)
	}
}

// EmitPointerMove notifies pointer-move listeners
func (b *Bus) EmitPointerMove(x, y float64) {
	for _, l := range b.listeners[EventPointerMove] {
		if !b.alive(EventPointerMove, l.id) {
			continue
		}
		l.pointer(x, y)
	}
}

func (b *Bus) alive(t EventType, id uint64) bool {
	for _, l := range b.listeners[t] {
		if l.id == id {
			return true
		}
	}
	return false
}

// HandlerCount returns the number of listeners registered for t
func (b *Bus) HandlerCount(t EventType) int {
	if t >= eventTypeCount {
		return 0
	}
	return len(b.listeners[t])
}

// Total returns the number of listeners across all event types
func (b *Bus) Total() int {
	n := 0
	for _, l := range b.listeners {
		n += len(l)
	}
	return n
}
