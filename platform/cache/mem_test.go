package cache

import (
	"bytes"
	"testing"
)

func TestMemByteServiceGetMissing(t *testing.T) {
	s := MemByteService()

	_, err := s.Get("render", "missing")
	if !IsKeyNotFound(err) {
		t.Errorf("have %v, want %v", err, ErrKeyNotFound)
	}
}

func TestMemByteServiceSet(t *testing.T) {
	var (
		s = MemByteService()

		want = []byte("payload")
	)

	if err := s.Set("render", "set", want); err != nil {
		t.Fatal(err)
	}

	have, err := s.Get("render", "set")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(have, want) {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestMemByteServiceSetCopies(t *testing.T) {
	var (
		s = MemByteService()

		data = []byte("original")
	)

	if err := s.Set("render", "copied", data); err != nil {
		t.Fatal(err)
	}

	data[0] = 'X'

	have, err := s.Get("render", "copied")
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(have, []byte("original")) {
		t.Errorf("have %v, want %v", have, []byte("original"))
	}
}

func TestNopByteService(t *testing.T) {
	s := NopByteService()

	if err := s.Set("render", "nop", []byte("payload")); err != nil {
		t.Fatal(err)
	}

	_, err := s.Get("render", "nop")
	if !IsKeyNotFound(err) {
		t.Errorf("have %v, want %v", err, ErrKeyNotFound)
	}
}
