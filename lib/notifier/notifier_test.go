package notifier

import "testing"

func Test_Topic_Broadcast(t *testing.T) {
	topic := NewTopic[string](2)

	a := topic.Subscribe()
	b := topic.Subscribe()
	defer a.Close()
	defer b.Close()

	topic.Broadcast("hello")

	for name, sub := range map[string]*Subscription[string]{"a": a, "b": b} {
		select {
		case got := <-sub.Listen():
			if got != "hello" {
				t.Errorf("%v received %q", name, got)
			}
		default:
			t.Errorf("%v received nothing", name)
		}
	}
}

func Test_Topic_SlowSubscriberDoesNotBlock(t *testing.T) {
	topic := NewTopic[int](1)

	s := topic.Subscribe()
	defer s.Close()

	// second message overflows the buffer and is dropped, not deadlocked
	topic.Broadcast(1)
	topic.Broadcast(2)

	if got := <-s.Listen(); got != 1 {
		t.Errorf("received %d, want 1", got)
	}
	select {
	case got := <-s.Listen():
		t.Errorf("unexpected extra message %d", got)
	default:
	}
}

func Test_Topic_CloseStopsListen(t *testing.T) {
	topic := NewTopic[int](1)
	s := topic.Subscribe()
	s.Close()

	if _, ok := <-s.Listen(); ok {
		t.Error("channel still open after Close")
	}

	// double close and broadcast after close are harmless
	s.Close()
	topic.Broadcast(9)
}
