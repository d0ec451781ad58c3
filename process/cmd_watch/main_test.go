package main

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	var mu sync.Mutex
	fired := map[string]int{}
	deb := newDebouncer(20*time.Millisecond, func(path string) {
		mu.Lock()
		fired[path]++
		mu.Unlock()
	})

	for i := 0; i < 5; i++ {
		deb.touch("a.png")
	}
	deb.touch("b.png")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if fired["a.png"] != 1 {
		t.Errorf("a.png fired %d times, want 1", fired["a.png"])
	}
	if fired["b.png"] != 1 {
		t.Errorf("b.png fired %d times, want 1", fired["b.png"])
	}
}

func TestDebouncerDrainsPendingEntries(t *testing.T) {
	deb := newDebouncer(10*time.Millisecond, func(string) {})

	for _, p := range []string{"a.png", "b.png", "c.png"} {
		deb.touch(p)
	}
	if n := deb.size(); n != 3 {
		t.Fatalf("pending size = %d, want 3 before timers fire", n)
	}

	deadline := time.Now().Add(2 * time.Second)
	for deb.size() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("pending size = %d, want 0 after timers fire", deb.size())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestIsImage(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"shot.PNG", true},
		{"pay.jpeg", true},
		{"notes.txt", false},
		{"archive.png.zip", false},
	}
	for _, c := range cases {
		if got := isImage(c.name); got != c.want {
			t.Errorf("isImage(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
