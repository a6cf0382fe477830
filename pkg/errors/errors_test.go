package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesChain(t *testing.T) {
	base := fmt.Errorf("disk full")
	err := Wrap(CodeDependency, base, "insert order")

	require.ErrorIs(t, err, base)
	assert.Equal(t, CodeDependency, err.Code())
	assert.Equal(t, "DEPENDENCY_ERROR: insert order", err.Error())
}

func TestAsFindsNestedTypedError(t *testing.T) {
	inner := New(CodeNotFound, "order not found")
	outer := fmt.Errorf("loading: %w", inner)

	typed := As(outer)
	require.NotNil(t, typed)
	assert.Equal(t, CodeNotFound, typed.Code())
	assert.True(t, IsCode(outer, CodeNotFound))
	assert.False(t, IsCode(outer, CodeValidation))
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	assert.Equal(t, http.StatusInternalServerError, meta.HTTPStatus)
}

func TestDumpCollectsChainAndCode(t *testing.T) {
	err := Wrap(CodeRender, fmt.Errorf("font missing"), "render box group")
	d := Dump(err)

	assert.Equal(t, CodeRender, d.Code)
	require.Len(t, d.Chain, 2)
	assert.Contains(t, d.TopMessage, "render box group")
}
