package syncx

import (
	"sync"
	"testing"
)

func TestMapLoadOrStore(t *testing.T) {
	var m Map[string, int]

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.LoadOrStore("key", i)
		}(i)
	}

	wg.Wait()

	first, ok := m.Load("key")
	if !ok {
		t.Fatalf("m.Load: expected key to be stored")
	}

	actual, loaded := m.LoadOrStore("key", 42)
	if !loaded {
		t.Errorf("m.LoadOrStore: expected value to be loaded")
	}

	if e, g := first, actual; e != g {
		t.Errorf("actual: expected %d, got %d", e, g)
	}

	m.Delete("key")

	if _, ok := m.Load("key"); ok {
		t.Errorf("m.Load: expected key to be deleted")
	}
}
