package local

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/angelmondragon/printshop-backend/pkg/errors"
)

func TestPutFetchRoundTrip(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Put(ctx, "order_abc12345_box_ravi.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	data, err := store.Fetch(ctx, "order_abc12345_box_ravi.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)

	ok, err := store.Exists(ctx, "order_abc12345_box_ravi.pdf")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPutOverwrites(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, err = store.Put(ctx, "doc.pdf", []byte("first"))
	require.NoError(t, err)
	_, err = store.Put(ctx, "doc.pdf", []byte("second"))
	require.NoError(t, err)

	data, err := store.Fetch(ctx, "doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}

func TestFetchMissingIsNotFound(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	_, err = store.Fetch(context.Background(), "missing.pdf")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	ok, err := store.Exists(context.Background(), "missing.pdf")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"", "../escape.pdf", "a/b.pdf", "..%2fescape.pdf"} {
		_, err := store.Put(context.Background(), name, []byte("x"))
		require.Error(t, err, name)
		assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), name)
	}
}
