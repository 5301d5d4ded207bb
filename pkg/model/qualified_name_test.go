package model_test

import (
	"testing"

	"github.com/pthm/sysmllink/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestQualifiedNameStringQuotesSpecialSegments(t *testing.T) {
	qn := model.QualifiedName{"A", "B", "/"}
	assert.Equal(t, "A::B::'/'", qn.String())
}

func TestQualifiedNameStringLeavesPlainIdentifiersBare(t *testing.T) {
	qn := model.QualifiedName{"Base", "Anything"}
	assert.Equal(t, "Base::Anything", qn.String())
}

func TestStripAndAddQuotes(t *testing.T) {
	assert.Equal(t, "/", model.StripQuotes("'/'"))
	assert.Equal(t, "abc", model.StripQuotes("abc"))
	assert.Equal(t, "'abc'", model.AddQuotes("abc"))
}

func TestParseQualifiedNameSplitsOnDoubleColon(t *testing.T) {
	assert.Equal(t, model.QualifiedName{"Package", "Element"}, model.ParseQualifiedName("Package::Element"))
}

func TestParseQualifiedNameRespectsQuotedSegment(t *testing.T) {
	assert.Equal(t, model.QualifiedName{"DataFunctions", "'/'"}, model.ParseQualifiedName("DataFunctions::'/'"))
}

func TestParseQualifiedNameSingleSegment(t *testing.T) {
	assert.Equal(t, model.QualifiedName{"Simple"}, model.ParseQualifiedName("Simple"))
}

func TestParseQualifiedNameEmptyString(t *testing.T) {
	assert.Equal(t, model.QualifiedName(nil), model.ParseQualifiedName(""))
}
