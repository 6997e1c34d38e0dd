// Package notify is the editor's change-notification bus.
//
// Publishing is synchronous: handlers run on the caller's goroutine, in
// subscription order, before Publish returns. The bus is owned by the UI
// loop and is not safe for concurrent use.
package notify

// Topic names a notification stream.
type Topic string

const (
	// TopicBufferChanged carries an editor.ChangeEvent whose text changed.
	TopicBufferChanged Topic = "buffer.changed"
	// TopicCaretMoved carries an editor.ChangeEvent whose caret moved.
	TopicCaretMoved Topic = "caret.moved"
	// TopicViewportChanged carries an editor.ViewportState.
	TopicViewportChanged Topic = "viewport.changed"
	// TopicDocumentReplaced carries the new document path ("" when untitled).
	TopicDocumentReplaced Topic = "document.replaced"
	// TopicFileSaved carries the path that was written.
	TopicFileSaved Topic = "file.saved"
	// TopicFileExternal carries the path modified outside the editor.
	TopicFileExternal Topic = "file.external"
)

// Event is delivered to handlers.
type Event struct {
	Topic   Topic
	Payload any
}

// Handler receives events for a topic.
type Handler func(Event)

type subscription struct {
	id      uint64
	handler Handler
}

// Bus fans events out to subscribers.
type Bus struct {
	nextID uint64
	subs   map[Topic][]subscription
}

func New() *Bus {
	return &Bus{subs: make(map[Topic][]subscription)}
}

// Subscribe registers h for topic and returns a function that removes it.
// Calling the returned function more than once is a no-op.
func (b *Bus) Subscribe(topic Topic, h Handler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	b.nextID++
	id := b.nextID
	b.subs[topic] = append(b.subs[topic], subscription{id: id, handler: h})

	return func() {
		subs := b.subs[topic]
		for i, s := range subs {
			if s.id != id {
				continue
			}
			next := make([]subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			if len(next) == 0 {
				delete(b.subs, topic)
			} else {
				b.subs[topic] = next
			}
			return
		}
	}
}

// Publish delivers payload to every handler subscribed to topic and returns
// the number of handlers called. Handlers subscribed during delivery receive
// only later events.
func (b *Bus) Publish(topic Topic, payload any) int {
	subs := b.subs[topic]
	if len(subs) == 0 {
		return 0
	}
	ev := Event{Topic: topic, Payload: payload}
	for _, s := range subs {
		s.handler(ev)
	}
	return len(subs)
}

// Subscribers returns the number of handlers registered for topic.
func (b *Bus) Subscribers(topic Topic) int {
	return len(b.subs[topic])
}
