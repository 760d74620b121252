package notify

import "testing"

func TestNotifyCallsEachListenerOnce(t *testing.T) {
	var r Registry

	var a, b int

	r.Subscribe(func() { a++ })
	r.Subscribe(func() { b++ })

	r.Notify()

	if a != 1 || b != 1 {
		t.Fatalf("expected both listeners to run once, got a=%d b=%d", a, b)
	}
}

func TestUnsubscribe(t *testing.T) {
	var r Registry

	var calls int

	unsubscribe := r.Subscribe(func() { calls++ })
	unsubscribe()
	unsubscribe()

	r.Notify()

	if calls != 0 {
		t.Errorf("expected removed listener not to run, got %d calls", calls)
	}

	if r.Len() != 0 {
		t.Errorf("expected empty registry, got %d", r.Len())
	}
}

func TestListenerAddedDuringNotify(t *testing.T) {
	var r Registry

	var (
		late  int
		added bool
	)

	r.Subscribe(func() {
		if !added {
			added = true
			r.Subscribe(func() { late++ })
		}
	})

	r.Notify()

	if late != 0 {
		t.Fatalf("expected late listener to be excluded from the current pass, got %d", late)
	}

	r.Notify()

	if late != 1 {
		t.Errorf("expected late listener to run on the next pass, got %d", late)
	}
}

func TestListenerRemovedDuringNotify(t *testing.T) {
	var r Registry

	var second int

	var unsubscribeSecond func()

	r.Subscribe(func() { unsubscribeSecond() })
	unsubscribeSecond = r.Subscribe(func() { second++ })

	r.Notify()

	if second != 0 {
		t.Errorf("expected listener removed mid-pass to be skipped, got %d", second)
	}
}
