package span

import "testing"

func TestSpanEmpty(t *testing.T) {
	tests := []struct {
		name string
		sp   Span
		want bool
	}{
		{"empty at eof", New(1, 5, 5), true},
		{"nonempty", New(1, 0, 3), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sp.Empty(); got != tt.want {
				t.Errorf("Empty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	sp := New(1, 3, 10)
	if got := sp.Len(); got != 7 {
		t.Errorf("Len() = %d, want 7", got)
	}
}

func TestSpanContains(t *testing.T) {
	sp := New(1, 3, 10)
	for _, b := range []int{3, 5, 9} {
		if !sp.Contains(b) {
			t.Errorf("Contains(%d) = false, want true", b)
		}
	}
	for _, b := range []int{2, 10, 11} {
		if sp.Contains(b) {
			t.Errorf("Contains(%d) = true, want false", b)
		}
	}
}

func TestNewPanicsOnInvalidRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for end < start")
		}
	}()
	New(1, 5, 2)
}

func TestSpanString(t *testing.T) {
	sp := New(2, 4, 9)
	if got, want := sp.String(), "2:4..9"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
