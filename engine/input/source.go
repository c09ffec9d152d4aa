package input

// Subscription identifies one registered handler. The zero value is never issued
// and is safe to pass to Unsubscribe.
type Subscription uint64

// KeyHandler receives key-down or key-up events.
type KeyHandler func(evt *Event)

// BlurHandler is called when the source loses input focus.
type BlurHandler func()

// Source provides keyboard and focus notifications.
// Handlers are invoked synchronously on the thread that delivers input, one at a time.
type Source interface {
	// OnKeyDown registers a handler for key presses (including auto-repeat).
	//
	// Parameters:
	//   - handler: function receiving each key-down event
	//
	// Returns:
	//   - Subscription: token used to remove the handler
	OnKeyDown(handler KeyHandler) Subscription

	// OnKeyUp registers a handler for key releases.
	//
	// Parameters:
	//   - handler: function receiving each key-up event
	//
	// Returns:
	//   - Subscription: token used to remove the handler
	OnKeyUp(handler KeyHandler) Subscription

	// OnBlur registers a handler for focus loss.
	//
	// Parameters:
	//   - handler: function called when focus is lost
	//
	// Returns:
	//   - Subscription: token used to remove the handler
	OnBlur(handler BlurHandler) Subscription

	// Unsubscribe removes the handler registered under sub.
	// Unknown or already removed tokens are ignored.
	//
	// Parameters:
	//   - sub: the token returned at registration
	Unsubscribe(sub Subscription)
}

type keyEntry struct {
	sub     Subscription
	handler KeyHandler
}

type blurEntry struct {
	sub     Subscription
	handler BlurHandler
}

// Dispatcher is an in-memory Source. Windows feed it platform events and tests
// use it to synthesize input deterministically. It is not safe for concurrent use;
// all calls must come from the input thread.
type Dispatcher struct {
	next Subscription
	down []keyEntry
	up   []keyEntry
	blur []blurEntry
}

var _ Source = &Dispatcher{}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher: a dispatcher with no handlers
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) OnKeyDown(handler KeyHandler) Subscription {
	sub := d.issue()
	d.down = append(d.down, keyEntry{sub: sub, handler: handler})
	return sub
}

func (d *Dispatcher) OnKeyUp(handler KeyHandler) Subscription {
	sub := d.issue()
	d.up = append(d.up, keyEntry{sub: sub, handler: handler})
	return sub
}

func (d *Dispatcher) OnBlur(handler BlurHandler) Subscription {
	sub := d.issue()
	d.blur = append(d.blur, blurEntry{sub: sub, handler: handler})
	return sub
}

func (d *Dispatcher) Unsubscribe(sub Subscription) {
	if sub == 0 {
		return
	}
	d.down = removeKey(d.down, sub)
	d.up = removeKey(d.up, sub)
	for i, e := range d.blur {
		if e.sub == sub {
			d.blur = append(d.blur[:i:i], d.blur[i+1:]...)
			return
		}
	}
}

// DispatchKeyDown delivers evt to every key-down handler in registration order.
//
// Parameters:
//   - evt: the key-down event
//
// Returns:
//   - bool: true if a handler prevented the default action
func (d *Dispatcher) DispatchKeyDown(evt *Event) bool {
	return dispatchKey(d.down, evt)
}

// DispatchKeyUp delivers evt to every key-up handler in registration order.
//
// Parameters:
//   - evt: the key-up event
//
// Returns:
//   - bool: true if a handler prevented the default action
func (d *Dispatcher) DispatchKeyUp(evt *Event) bool {
	return dispatchKey(d.up, evt)
}

// DispatchBlur notifies every blur handler in registration order.
func (d *Dispatcher) DispatchBlur() {
	for _, e := range append([]blurEntry(nil), d.blur...) {
		e.handler()
	}
}

// Len returns the total number of registered handlers across all event types.
func (d *Dispatcher) Len() int {
	return len(d.down) + len(d.up) + len(d.blur)
}

func (d *Dispatcher) issue() Subscription {
	d.next++
	return d.next
}

// dispatchKey iterates over a snapshot so handlers may unsubscribe during delivery.
func dispatchKey(entries []keyEntry, evt *Event) bool {
	if evt == nil {
		return false
	}
	for _, e := range append([]keyEntry(nil), entries...) {
		e.handler(evt)
	}
	return evt.DefaultPrevented()
}

func removeKey(entries []keyEntry, sub Subscription) []keyEntry {
	for i, e := range entries {
		if e.sub == sub {
			return append(entries[:i:i], entries[i+1:]...)
		}
	}
	return entries
}
