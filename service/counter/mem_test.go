package counter

import "testing"

func TestMemStoreLoadMissing(t *testing.T) {
	s := MemStore()

	_, err := s.Load("missing")
	if !IsKeyNotFound(err) {
		t.Errorf("have %v, want %v", err, ErrKeyNotFound)
	}
}

func TestMemStorePut(t *testing.T) {
	s := MemStore()

	if err := s.Put("put", 11); err != nil {
		t.Fatal(err)
	}

	count, err := s.Load("put")
	if err != nil {
		t.Fatal(err)
	}

	if have, want := count, uint64(11); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestMemStorePutMonotonic(t *testing.T) {
	s := MemStore()

	if err := s.Put("monotonic", 7); err != nil {
		t.Fatal(err)
	}

	if err := s.Put("monotonic", 3); err != nil {
		t.Fatal(err)
	}

	count, err := s.Load("monotonic")
	if err != nil {
		t.Fatal(err)
	}

	if have, want := count, uint64(7); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestMemStoreTeardown(t *testing.T) {
	s := MemStore()

	if err := s.Put("teardown", 1); err != nil {
		t.Fatal(err)
	}

	if err := s.Teardown(); err != nil {
		t.Fatal(err)
	}

	_, err := s.Load("teardown")
	if !IsKeyNotFound(err) {
		t.Errorf("have %v, want %v", err, ErrKeyNotFound)
	}
}
