package patch

import "testing"

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name    string
		content string
		search  string
		want    int
	}{
		{"no match", "hello world", "xyz", 0},
		{"single match", "hello world", "world", 1},
		{"multiple matches", "foo bar foo", "foo", 2},
		{"adjacent matches", "aaaa", "aa", 2},
		{"overlapping not double-counted", "aaa", "aa", 1},
		{"multiline search", "a=1\nb=2\na=1\n", "a=1\n", 2},
		{"match at start and end", "xx middle xx", "xx", 2},
		{"search longer than content", "ab", "abc", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountOccurrences(tt.content, tt.search); got != tt.want {
				t.Errorf("CountOccurrences(%q, %q) = %d, want %d", tt.content, tt.search, got, tt.want)
			}
		})
	}
}

func TestCountOccurrencesLiteral(t *testing.T) {
	// Pattern metacharacters must match literally, never as wildcards.
	if got := CountOccurrences("abc", "a.c"); got != 0 {
		t.Errorf("'a.c' should not match 'abc' as a pattern, got %d matches", got)
	}
	if got := CountOccurrences("a.c a.c", "a.c"); got != 2 {
		t.Errorf("literal 'a.c' should match twice, got %d", got)
	}
	if got := CountOccurrences("x[0]+y[1]", "[0]+"); got != 1 {
		t.Errorf("literal '[0]+' should match once, got %d", got)
	}
	if got := CountOccurrences(`path\to\file`, `\t`); got != 1 {
		t.Errorf(`literal '\t' (backslash t) should match once, got %d`, got)
	}
}

func TestLocateUnique(t *testing.T) {
	t.Run("exactly one match", func(t *testing.T) {
		span, ok := LocateUnique("hello world", "world")
		if !ok {
			t.Fatal("expected a unique match")
		}
		if span.Start != 6 || span.End != 11 {
			t.Errorf("span = [%d, %d), want [6, 11)", span.Start, span.End)
		}
	})

	t.Run("zero matches", func(t *testing.T) {
		if _, ok := LocateUnique("hello world", "xyz"); ok {
			t.Error("expected no unique match for absent text")
		}
	})

	t.Run("multiple matches", func(t *testing.T) {
		if _, ok := LocateUnique("foo bar foo", "foo"); ok {
			t.Error("expected no unique match for ambiguous text")
		}
	})
}
