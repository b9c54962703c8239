package health

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.IsAvailable("text-generation"), "unregistered services report unavailable")

	registry.Set("text-generation", true)
	assert.True(t, registry.IsAvailable("text-generation"))

	registry.Set("text-generation", false)
	assert.False(t, registry.IsAvailable("text-generation"))
}

func TestStatic(t *testing.T) {
	assert.True(t, Static(true).IsAvailable("anything"))
	assert.False(t, Static(false).IsAvailable("anything"))
}
