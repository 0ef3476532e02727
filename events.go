package chartcore

// --- Handler registry ---

const eventTypeCount = int(EventChartRotated) + 1

type eventHandler struct {
	id uint32
	fn func(ChartEvent)
}

type handlerRegistry struct {
	handlers [eventTypeCount][]eventHandler
	sink     EventSink
	nextID   uint32
}

// CallbackHandle allows removing a registered chart callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil || int(h.event) >= eventTypeCount {
		return
	}
	s := h.reg.handlers[h.event]
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = eventHandler{}
			h.reg.handlers[h.event] = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(evt EventType, fn func(ChartEvent)) CallbackHandle {
	r.nextID++
	r.handlers[evt] = append(r.handlers[evt], eventHandler{id: r.nextID, fn: fn})
	return CallbackHandle{id: r.nextID, reg: r, event: evt}
}

func (r *handlerRegistry) fire(e ChartEvent) {
	for _, h := range r.handlers[e.Type] {
		h.fn(e)
	}
	if r.sink != nil {
		r.sink.EmitEvent(e)
	}
}
