package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLinesDropsBlanks(t *testing.T) {
	got := SplitLines("first\n\n  \nsecond\r\nthird\n")
	assert.Equal(t, []string{"first", "second", "third"}, got)
}

func TestSplitLinesTrims(t *testing.T) {
	got := SplitLines("  padded  \n\ttabbed\t")
	assert.Equal(t, []string{"padded", "tabbed"}, got)
}

func TestSplitLinesEmpty(t *testing.T) {
	assert.Empty(t, SplitLines(""))
	assert.Empty(t, SplitLines("\n \n\t\n"))
}

func TestLinesRestartable(t *testing.T) {
	seq := Lines("a\nb\nc")
	var first, second []string
	for l := range seq {
		first = append(first, l)
	}
	for l := range seq {
		second = append(second, l)
	}
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b", "c"}, first)
}

func TestLinesEarlyStop(t *testing.T) {
	var got []string
	for l := range Lines("a\nb\nc") {
		got = append(got, l)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}
