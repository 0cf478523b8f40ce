package projectflow

import (
	"context"
	"testing"
)

// drain collects all events currently buffered on the channel.
func drain(ch chan Event) []Event {
	var got []Event
	for {
		select {
		case e := <-ch:
			got = append(got, e)
		default:
			return got
		}
	}
}

func TestBusFanOut(t *testing.T) {
	b := NewBus()
	a := b.Subscribe()
	c := b.Subscribe()
	defer b.Unsubscribe(a)
	defer b.Unsubscribe(c)

	e := Event{Kind: EventCreate, Collection: ColProjects, ID: "p1"}
	b.Publish(e)

	for i, ch := range []chan Event{a, c} {
		got := drain(ch)
		if len(got) != 1 || got[0] != e {
			t.Errorf("subscriber %d received %+v, want [%+v]", i, got, e)
		}
	}
}

// A subscriber that stops draining must not block mutations: events beyond
// its buffer are dropped.
func TestBusDropsWhenBehind(t *testing.T) {
	b := NewBus()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	for i := 0; i < 2*cap(ch); i++ {
		b.Publish(Event{Kind: EventUpdate, Collection: ColTasks, ID: "t1"})
	}
	if got := len(drain(ch)); got != cap(ch) {
		t.Errorf("buffered %d events, want %d", got, cap(ch))
	}
}

func TestStorePublishesCascadedEvents(t *testing.T) {
	s := newTestStore(t)
	p := addTestProject(t, s)
	task := addTestTask(t, s, p.ID, H(0))

	ch := s.Bus().Subscribe()
	defer s.Bus().Unsubscribe(ch)

	if err := s.LogWork(context.Background(), task.ID, day("2025-04-09"), H(2)); err != nil {
		t.Fatalf("LogWork() unexpected error = %v", err)
	}

	got := drain(ch)
	want := []Event{
		{Kind: EventUpdate, Collection: ColTasks, ID: task.ID},
		{Kind: EventUpdate, Collection: ColProjects, ID: p.ID},
	}
	if len(got) != len(want) {
		t.Fatalf("received %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDeleteProjectPublishesTaskDeletes(t *testing.T) {
	s := newTestStore(t)
	p := addTestProject(t, s)
	task := addTestTask(t, s, p.ID, H(0))

	ch := s.Bus().Subscribe()
	defer s.Bus().Unsubscribe(ch)

	if err := s.DeleteProject(context.Background(), p.ID); err != nil {
		t.Fatalf("DeleteProject() unexpected error = %v", err)
	}

	got := drain(ch)
	want := []Event{
		{Kind: EventDelete, Collection: ColTasks, ID: task.ID},
		{Kind: EventDelete, Collection: ColProjects, ID: p.ID},
	}
	if len(got) != len(want) {
		t.Fatalf("received %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
