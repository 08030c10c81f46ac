package event

import "testing"

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(MapGenerated, ListenerFunc(func(e Event) { got = append(got, "a") }))
	d.Subscribe(MapGenerated, ListenerFunc(func(e Event) { got = append(got, "b") }))
	d.Subscribe(CursorChanged, ListenerFunc(func(e Event) { got = append(got, "cursor") }))

	d.Dispatch(Event{Type: MapGenerated, Data: MapInfo{Seed: 1}})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected deliveries %v", got)
	}
}

func TestDispatchNil(t *testing.T) {
	var d *Dispatcher
	d.Dispatch(Event{Type: MapGenerated})
}
