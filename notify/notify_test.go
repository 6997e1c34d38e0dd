package notify

import "testing"

func TestPublish_DeliversInSubscriptionOrder(t *testing.T) {
	b := New()
	var got []string
	b.Subscribe(TopicCaretMoved, func(ev Event) { got = append(got, "first:"+ev.Payload.(string)) })
	b.Subscribe(TopicCaretMoved, func(ev Event) { got = append(got, "second:"+ev.Payload.(string)) })
	b.Subscribe(TopicBufferChanged, func(Event) { got = append(got, "other") })

	if n := b.Publish(TopicCaretMoved, "x"); n != 2 {
		t.Fatalf("delivered=%d, want 2", n)
	}
	want := []string{"first:x", "second:x"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	calls := 0
	unsub := b.Subscribe(TopicViewportChanged, func(Event) { calls++ })
	b.Publish(TopicViewportChanged, nil)
	unsub()
	unsub()
	b.Publish(TopicViewportChanged, nil)
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
	if n := b.Subscribers(TopicViewportChanged); n != 0 {
		t.Fatalf("subscribers=%d, want 0", n)
	}
}

func TestPublish_SubscribeDuringDelivery(t *testing.T) {
	b := New()
	late := 0
	b.Subscribe(TopicFileSaved, func(Event) {
		b.Subscribe(TopicFileSaved, func(Event) { late++ })
	})
	b.Publish(TopicFileSaved, "a.txt")
	if late != 0 {
		t.Fatalf("handler added during delivery ran for the same event")
	}
	b.Publish(TopicFileSaved, "a.txt")
	if late != 1 {
		t.Fatalf("late handler calls=%d, want 1", late)
	}
}

func TestSubscribe_NilHandler(t *testing.T) {
	b := New()
	b.Subscribe(TopicCaretMoved, nil)()
	if n := b.Publish(TopicCaretMoved, nil); n != 0 {
		t.Fatalf("nil handler registered")
	}
}
