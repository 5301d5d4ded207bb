package model_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMapPreservesInsertionOrder(t *testing.T) {
	m := model.NewOrderedMap()
	m.Set("z", model.Int(1))
	m.Set("a", model.Int(2))
	m.Set("m", model.Int(3))

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	m.Set("a", model.Int(20))
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys(), "overwrite must not move position")

	v, ok := m.Get("a")
	require.True(t, ok)
	i, _ := v.AsInt()
	assert.Equal(t, int64(20), i)
}

func TestOrderedMapDelete(t *testing.T) {
	m := model.NewOrderedMap()
	m.Set("a", model.Int(1))
	m.Set("b", model.Int(2))
	m.Delete("a")

	assert.Equal(t, []string{"b"}, m.Keys())
	assert.False(t, m.Has("a"))
}

func TestOrderedMapClone(t *testing.T) {
	m := model.NewOrderedMap()
	m.Set("a", model.Int(1))
	clone := m.Clone()
	clone.Set("b", model.Int(2))

	assert.Equal(t, []string{"a"}, m.Keys())
	assert.Equal(t, []string{"a", "b"}, clone.Keys())
}
