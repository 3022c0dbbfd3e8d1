package core

import "sync"

type EventContext struct {
	Data struct {
		I64 [2]int64
		U64 [2]uint64
		F32 [4]float32

		C [4]string
	}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Stops a running watch loop.
	EVENT_CODE_APPLICATION_QUIT SystemEventCode = 0x01

	// A scene finished loading.
	/* Context usage:
	 * string path = data.C[0];
	 * u64 collider_count = data.U64[0];
	 */
	EVENT_CODE_SCENE_LOADED SystemEventCode = 0x02

	// A watched scene file changed on disk and was loaded again.
	/* Context usage:
	 * string path = data.C[0];
	 * u64 collider_count = data.U64[0];
	 */
	EVENT_CODE_SCENE_RELOADED SystemEventCode = 0x03

	// Reloading a watched scene failed; the previous scene stays active.
	/* Context usage:
	 * string path = data.C[0];
	 * string error = data.C[1];
	 */
	EVENT_CODE_SCENE_RELOAD_FAILED SystemEventCode = 0x04

	// A ray cast hit a collider.
	/* Context usage:
	 * string collider = data.C[0];
	 * string ray = data.C[1];
	 * f32 distance = data.F32[0];
	 * f32 x, y, z = data.F32[1], data.F32[2], data.F32[3];
	 */
	EVENT_CODE_RAY_HIT SystemEventCode = 0x05

	// A ray cast hit nothing.
	/* Context usage:
	 * string ray = data.C[0];
	 */
	EVENT_CODE_RAY_MISS SystemEventCode = 0x06

	MAX_EVENT_CODE SystemEventCode = 0xFF
)

// This should be more than enough codes...
const MAX_MESSAGE_CODES = 16384

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, listenerInst interface{}, data EventContext) bool

type registeredEvent struct {
	listener interface{}
	callback FnOnEvent
}

// EventBus dispatches events to listeners registered per code. It is safe
// for concurrent use; callbacks run on the goroutine that fires the event.
type EventBus struct {
	mu         sync.RWMutex
	registered map[SystemEventCode][]*registeredEvent
}

func NewEventBus() *EventBus {
	return &EventBus{registered: make(map[SystemEventCode][]*registeredEvent)}
}

/**
 * Register to listen for when events are sent with the provided code. A listener
 * can only be registered once per code; a duplicate returns false.
 * @param code The event code to listen for.
 * @param listener The listener instance. Can be nil.
 * @param onEvent The callback invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func (b *EventBus) Register(code SystemEventCode, listener interface{}, onEvent FnOnEvent) bool {
	if code < 0 || code >= MAX_MESSAGE_CODES || onEvent == nil {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, e := range b.registered[code] {
		if e.listener == listener {
			LogWarn("event code %d already has this listener registered", code)
			return false
		}
	}
	b.registered[code] = append(b.registered[code], &registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister a listener from the provided code.
 * @returns true if the listener was found and removed; otherwise false.
 */
func (b *EventBus) Unregister(code SystemEventCode, listener interface{}) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	events := b.registered[code]
	for i, e := range events {
		if e.listener == listener {
			b.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func (b *EventBus) Fire(code SystemEventCode, sender interface{}, context EventContext) bool {
	b.mu.RLock()
	events := make([]*registeredEvent, len(b.registered[code]))
	copy(events, b.registered[code])
	b.mu.RUnlock()

	for _, e := range events {
		if e.callback(code, sender, e.listener, context) {
			return true
		}
	}
	return false
}

// Reset drops every registration.
func (b *EventBus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.registered = make(map[SystemEventCode][]*registeredEvent)
}
