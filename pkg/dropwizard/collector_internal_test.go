package dropwizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "my_timer", sanitizeName("my_timer"))
	assert.Equal(t, "jvm_memory_heap", sanitizeName("jvm.memory.heap"))
	assert.Equal(t, "_5xx", sanitizeName("5xx"))
	assert.Equal(t, "a:b", sanitizeName("a:b"))
	assert.Equal(t, "_", sanitizeName(""))
}

func TestToFloat(t *testing.T) {
	f, ok := toFloat(int64(3))
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	f, ok = toFloat(true)
	assert.True(t, ok)
	assert.Equal(t, 1.0, f)

	_, ok = toFloat("3")
	assert.False(t, ok)
}
