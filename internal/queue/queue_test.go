package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := New[int]()

	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	require.Equal(t, 100, q.Len())

	for i := 0; i < 100; i++ {
		item, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, i, item)
	}

	_, ok := q.Dequeue()
	require.False(t, ok)
	require.Equal(t, 0, q.Len())
}

func TestQueueEmptyDequeue(t *testing.T) {
	q := New[string]()

	item, ok := q.Dequeue()
	require.False(t, ok)
	require.Equal(t, "", item)
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := New[int]()

	const producers = 8
	const perProducer = 250

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Enqueue(p*perProducer + i)
			}
		}(p)
	}
	wg.Wait()

	require.Equal(t, producers*perProducer, q.Len())

	seen := make(map[int]bool)
	for {
		item, ok := q.Dequeue()
		if !ok {
			break
		}
		require.False(t, seen[item], "item %d dequeued twice", item)
		seen[item] = true
	}
	require.Len(t, seen, producers*perProducer)
}

func TestQueueWake(t *testing.T) {
	q := New[int]()

	select {
	case <-q.Wake():
		t.Fatal("wake fired before any enqueue")
	default:
	}

	q.Enqueue(1)

	select {
	case <-q.Wake():
	case <-time.After(time.Second):
		t.Fatal("wake did not fire after enqueue")
	}

	// The signal is coalesced: many enqueues, at most one pending signal.
	q.Enqueue(2)
	q.Enqueue(3)
	q.Enqueue(4)

	select {
	case <-q.Wake():
	case <-time.After(time.Second):
		t.Fatal("wake did not fire after enqueue")
	}
	select {
	case <-q.Wake():
		t.Fatal("wake signal was not coalesced")
	default:
	}
}
