package metamodel_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/metamodel"
	"github.com/stretchr/testify/assert"
)

func TestLowerIdentifier(t *testing.T) {
	cases := map[string]string{
		"XMLLiteral": "xml_literal",
		"elementId":  "element_id",
		"Name":       "name",
		"ID":         "id",
		"type":       "type_",
		"PartUsage":  "part_usage",
	}
	for in, want := range cases {
		assert.Equal(t, want, metamodel.LowerIdentifier(in), in)
	}
}
