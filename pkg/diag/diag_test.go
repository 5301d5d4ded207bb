package diag_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/diag"
	"github.com/pthm/sysmllink/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsFiltering(t *testing.T) {
	var ds diag.Diagnostics
	ds.Push(diag.Infof("info-code", "informational"))
	ds.Push(diag.Warningf("warn-code", "a warning about %s", "X"))
	ds.Push(diag.Errorf("unresolved-reference", "could not resolve %q", "P::A"))

	require.True(t, ds.HasErrors())
	assert.Len(t, ds.Errors(), 1)
	assert.Len(t, ds.Warnings(), 1)
	assert.Equal(t, "unresolved-reference", ds.Errors()[0].Code)
}

func TestDiagnosticStringIncludesSpan(t *testing.T) {
	d := diag.Errorf("bad-kind", "wrong source kind").WithSpan(model.Span{File: "a.sysml", StartLine: 3, StartCol: 5})
	s := d.String()
	assert.Contains(t, s, "a.sysml:3:5")
	assert.Contains(t, s, "bad-kind")
}

func TestRelatedLocations(t *testing.T) {
	d := diag.Errorf("shadow", "name shadowed").WithRelated(model.Span{File: "b.sysml", StartLine: 1}, "previous declaration here")
	require.Len(t, d.Related, 1)
	assert.Equal(t, "previous declaration here", d.Related[0].Message)
}
