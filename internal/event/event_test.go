package event

import "testing"

type counter struct {
	got []EventType
}

func (c *counter) OnEvent(e Event) { c.got = append(c.got, e.Type) }

func TestDispatchReachesEverySubscriber(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.Subscribe(Pop, a)
	d.Subscribe(Pop, b)
	d.Subscribe(Die, a)

	d.Dispatch(Event{Type: Pop})
	d.Dispatch(Event{Type: Die})
	d.Dispatch(Event{Type: Shoot})

	if len(a.got) != 2 || a.got[0] != Pop || a.got[1] != Die {
		t.Fatalf("a got %v, want [pop die]", a.got)
	}
	if len(b.got) != 1 || b.got[0] != Pop {
		t.Fatalf("b got %v, want [pop]", b.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &counter{}, &counter{}
	d.SubscribeAll(a, Cues...)
	d.Subscribe(Shoot, b)

	d.Unsubscribe(Shoot, a)
	d.DispatchAll([]Event{{Type: Shoot}, {Type: WaveStart}})

	if len(a.got) != 1 || a.got[0] != WaveStart {
		t.Fatalf("a got %v, want [wave-start]", a.got)
	}
	if len(b.got) != 1 {
		t.Fatalf("b got %v, want one shoot", b.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	var score int
	d.Subscribe(Pop, ListenerFunc(func(e Event) { score = e.Data.(int) }))

	d.Dispatch(Event{Type: Pop, Data: 15})

	if score != 15 {
		t.Fatalf("score = %d, want 15", score)
	}
}
