package inplace

import "testing"

func TestFind(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	if i := s.Find("World", 0); i != 7 {
		t.Fatalf("got %d", i)
	}
	if i := s.Find("o", 0); i != 4 {
		t.Fatalf("got %d", i)
	}
	if i := s.Find("o", 5); i != 8 {
		t.Fatalf("got %d", i)
	}
	if i := s.Find("Hello", -5); i != 0 {
		t.Fatalf("negative pos must clamp to 0, got %d", i)
	}
	if i := s.Find("xyz", 0); i != NotFound {
		t.Fatalf("got %d", i)
	}
	if i := s.Find("", 13); i != 13 {
		t.Fatalf("empty needle at Len, got %d", i)
	}
	if i := s.Find("", 14); i != NotFound {
		t.Fatalf("pos past Len, got %d", i)
	}
	if i := s.FindByte('o', 5); i != 8 {
		t.Fatalf("got %d", i)
	}
	if i := s.FindByte('H', 13); i != NotFound {
		t.Fatalf("got %d", i)
	}
}

func TestRFind(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	if i := s.RFind("o", s.Len()); i != 8 {
		t.Fatalf("got %d", i)
	}
	if i := s.RFind("o", 7); i != 4 {
		t.Fatalf("got %d", i)
	}
	if i := s.RFind("o", 3); i != NotFound {
		t.Fatalf("got %d", i)
	}
	if i := s.RFind("World", 100); i != 7 {
		t.Fatalf("pos past Len searches everything, got %d", i)
	}
	if i := s.RFind("World", 7); i != 7 {
		t.Fatalf("match starting exactly at pos, got %d", i)
	}
	if i := s.RFind("World", 6); i != NotFound {
		t.Fatalf("got %d", i)
	}
	if i := s.RFind("x", -1); i != NotFound {
		t.Fatalf("got %d", i)
	}
	if i := s.RFind("", 5); i != 5 {
		t.Fatalf("got %d", i)
	}
	if i := s.RFind("", 100); i != s.Len() {
		t.Fatalf("got %d", i)
	}
	if i := s.RFindByte('l', s.Len()); i != 10 {
		t.Fatalf("got %d", i)
	}
	if i := s.RFindByte('l', 9); i != 3 {
		t.Fatalf("got %d", i)
	}
	if i := s.RFindByte('H', 0); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := s.RFindByte('z', s.Len()); i != NotFound {
		t.Fatalf("got %d", i)
	}
}

func TestFindAny(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	if i := s.FindAny("aeiou", 0); i != 1 {
		t.Fatalf("got %d", i)
	}
	if i := s.FindAny("aeiou", 2); i != 4 {
		t.Fatalf("got %d", i)
	}
	if i := s.FindAny("xyz", 0); i != NotFound {
		t.Fatalf("got %d", i)
	}
	if i := s.FindAny("", 0); i != NotFound {
		t.Fatalf("empty set, got %d", i)
	}
}

func TestFindFixedNeedle(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	needle := MustNew[[6]byte]("World")
	if i := Find(&s, &needle, 0); i != 7 {
		t.Fatalf("got %d", i)
	}
	o := MustNew[[2]byte]("o")
	if i := RFind(&s, &o, 7); i != 4 {
		t.Fatalf("got %d", i)
	}
	vowels := MustNew[[6]byte]("aeiou")
	if i := FindAny(&s, &vowels, 2); i != 4 {
		t.Fatalf("got %d", i)
	}
}

func TestMatch(t *testing.T) {
	s := MustNew[[14]byte]("Hello, World!")
	for _, pattern := range []string{"Hello*", "*World!", "Hell?, W*d!", "*o*o*", "Hello, World!"} {
		if !s.Match(pattern) {
			t.Fatalf("expected %q to match", pattern)
		}
	}
	for _, pattern := range []string{"hello*", "*planet*", "Hello"} {
		if s.Match(pattern) {
			t.Fatalf("expected %q to not match", pattern)
		}
	}
}
