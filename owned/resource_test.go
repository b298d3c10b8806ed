package owned_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/movable-go/movable/errors"
	"github.com/movable-go/movable/log"
	"github.com/movable-go/movable/owned"
)

func newDemoResource(t *testing.T) *owned.Resource[string] {
	t.Helper()

	seq := []string{"ada", "turing"}
	r := owned.NewWith(15445, &seq)

	require.Nil(t, seq, "constructor must annex the caller's handle")

	return r
}

func TestNewWithAnnexes(t *testing.T) {
	t.Parallel()

	r := newDemoResource(t)

	assert.True(t, r.IsValid())
	assert.Equal(t, uint32(15445), r.Scalar())
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "ada", *r.At(0))
	assert.Equal(t, "turing", *r.At(1))
}

func TestMoveConstruct(t *testing.T) {
	t.Parallel()

	a := newDemoResource(t)
	b := owned.MoveFrom(a)

	assert.True(t, b.IsValid())
	assert.Equal(t, uint32(15445), b.Scalar())
	require.Equal(t, 2, b.Len())
	assert.Equal(t, "ada", *b.At(0))
	assert.Equal(t, "turing", *b.At(1))

	assert.False(t, a.IsValid())
	assert.Equal(t, 0, a.Len())
}

func TestMoveAssign(t *testing.T) {
	t.Parallel()

	t.Run("into fresh target", func(t *testing.T) {
		t.Parallel()

		a := newDemoResource(t)
		c := owned.New[string]()

		c.MoveAssign(a)

		assert.True(t, c.IsValid())
		assert.Equal(t, uint32(15445), c.Scalar())
		assert.Equal(t, 2, c.Len())
		assert.False(t, a.IsValid())
	})

	t.Run("into moved-from shell", func(t *testing.T) {
		t.Parallel()

		a := newDemoResource(t)
		shell := owned.MoveFrom(a)
		_ = owned.MoveFrom(shell) // shell is invalid now

		require.False(t, shell.IsValid())

		b := newDemoResource(t)
		shell.MoveAssign(b)

		assert.True(t, shell.IsValid())
		assert.Equal(t, uint32(15445), shell.Scalar())
		assert.Equal(t, 2, shell.Len())
		assert.False(t, b.IsValid())
	})
}

func TestSelfMoveAssign(t *testing.T) {
	t.Parallel()

	r := newDemoResource(t)
	r.MoveAssign(r)

	assert.True(t, r.IsValid())
	assert.Equal(t, uint32(15445), r.Scalar())
	require.Equal(t, 2, r.Len())
	assert.Equal(t, "ada", *r.At(0))
}

func TestCloneDisallowed(t *testing.T) {
	t.Parallel()

	r := newDemoResource(t)

	dup, err := r.Clone()
	assert.Nil(t, dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, owned.ErrCopyDisallowed))
}

func TestAtReference(t *testing.T) {
	t.Parallel()

	r := newDemoResource(t)

	*r.At(0) = "lovelace"
	assert.Equal(t, "lovelace", *r.At(0))

	assert.Panics(t, func() { r.At(2) })
	assert.Panics(t, func() { r.At(-1) })
}

func TestAnnex(t *testing.T) {
	t.Parallel()

	seq := []int{1, 2, 3, 4}
	taken := owned.Annex(&seq)

	assert.Nil(t, seq)
	assert.Equal(t, []int{1, 2, 3, 4}, taken)
}

func TestTransferTrace(t *testing.T) {
	var buf bytes.Buffer

	zl := zerolog.New(&buf)
	log.SetBaseLogger(&zl)

	defer func() {
		nop := zerolog.Nop()
		log.SetBaseLogger(&nop)
	}()

	a := newDemoResource(t)
	b := owned.MoveFrom(a)
	owned.New[string]().MoveAssign(b)

	out := buf.String()
	assert.Contains(t, out, "move-construct")
	assert.Contains(t, out, "move-assign")
	assert.Contains(t, out, "Move constructor called")
	assert.Contains(t, out, "Move assignment operator called")
}
