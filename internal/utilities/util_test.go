package utilities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntQuery(t *testing.T) {
	assert.Equal(t, 20, IntQuery("", 20))
	assert.Equal(t, 7, IntQuery("7", 20))
	assert.Equal(t, -3, IntQuery("-3", 20))
	assert.Equal(t, 20, IntQuery("seven", 20))
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Equal(t, []string{"Go", "Rust"}, SplitList("Go,Rust"))
	assert.Equal(t, []string{"Go", "Rust"}, SplitList(" Go , Rust "))
	assert.Equal(t, []string{"Go"}, SplitList("Go,,"))
}
