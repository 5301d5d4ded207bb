package model_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueAccessors(t *testing.T) {
	id := model.NewElementID()

	cases := []struct {
		name string
		v    model.Value
		kind model.ValueKind
	}{
		{"bool", model.Bool(true), model.KindBool},
		{"int", model.Int(42), model.KindInt},
		{"float", model.Float(3.5), model.KindFloat},
		{"string", model.String("hi"), model.KindString},
		{"enum", model.Enum("public"), model.KindEnum},
		{"ref", model.Ref(id), model.KindRef},
		{"list", model.List([]model.Value{model.Int(1)}), model.KindList},
		{"map", model.Map(model.NewOrderedMap()), model.KindMap},
		{"null", model.Null(), model.KindNull},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.kind, c.v.Kind())
		})
	}

	b, ok := cases[0].v.AsBool()
	require.True(t, ok)
	assert.True(t, b)

	r, ok := model.Ref(id).AsRef()
	require.True(t, ok)
	assert.Equal(t, id, r)

	_, ok = model.Int(1).AsString()
	assert.False(t, ok)
}

func TestNumericCompare(t *testing.T) {
	cmp, ok := model.NumericCompare(model.Int(3), model.Float(3.0))
	require.True(t, ok)
	assert.Equal(t, 0, cmp)

	cmp, ok = model.NumericCompare(model.Int(2), model.Float(3.5))
	require.True(t, ok)
	assert.Equal(t, -1, cmp)

	_, ok = model.NumericCompare(model.String("x"), model.Int(1))
	assert.False(t, ok)
}
