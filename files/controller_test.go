package files

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_ReadsAndBinds(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/docs/a.txt", []byte("abc\r\ndef\n"), 0o644))

	c := NewController(mem, nil)
	text, err := c.Open("/docs/a.txt")
	require.NoError(t, err)

	assert.Equal(t, "abc\r\ndef\n", text, "content is returned verbatim")
	assert.Equal(t, "/docs/a.txt", c.Path())
	assert.True(t, c.Bound())
}

func TestOpen_CanceledIsNoOp(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/a.txt", []byte("x"), 0o644))
	c := NewController(mem, nil)
	_, err := c.Open("/a.txt")
	require.NoError(t, err)

	_, err = c.Open("")
	assert.ErrorIs(t, err, ErrCanceled)
	assert.Equal(t, "/a.txt", c.Path(), "cancel keeps the bound path")
}

func TestOpen_MissingFileIsIOFailure(t *testing.T) {
	c := NewController(afero.NewMemMapFs(), nil)

	_, err := c.Open("/nope.txt")
	var ioErr *IOFailure
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "open", ioErr.Op)
	assert.Equal(t, "/nope.txt", ioErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, c.Bound())
}

func TestOpen_InvalidUTF8IsDecodeFailure(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/bin.dat", []byte{'o', 'k', 0xff, 'x'}, 0o644))
	c := NewController(mem, nil)

	_, err := c.Open("/bin.dat")
	var dec *DecodeFailure
	require.ErrorAs(t, err, &dec)
	assert.Equal(t, 2, dec.Offset)
	assert.False(t, c.Bound(), "failed open does not bind")
}

func TestSave_PromptsOnlyUntilBound(t *testing.T) {
	mem := afero.NewMemMapFs()
	c := NewController(mem, nil)

	err := c.Save("first")
	require.ErrorIs(t, err, ErrNoPath)

	require.NoError(t, c.SaveAs("/out.txt", "first"))
	assert.Equal(t, "/out.txt", c.Path())

	require.NoError(t, c.Save("second"))
	data, err := afero.ReadFile(mem, "/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data), "save overwrites the bound file")
}

func TestSaveAs_CanceledAndFailedDoNotBind(t *testing.T) {
	c := NewController(afero.NewReadOnlyFs(afero.NewMemMapFs()), nil)

	assert.ErrorIs(t, c.SaveAs("", "x"), ErrCanceled)

	err := c.SaveAs("/out.txt", "x")
	var ioErr *IOFailure
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "save", ioErr.Op)
	assert.False(t, c.Bound())
}

func TestNew_KeepsBoundPath(t *testing.T) {
	mem := afero.NewMemMapFs()
	c := NewController(mem, nil)
	require.NoError(t, c.SaveAs("/a.txt", "x"))

	c.New()
	assert.True(t, c.Bound())
	assert.Equal(t, "/a.txt", c.Path())

	require.NoError(t, c.Save("y"))
	data, err := afero.ReadFile(mem, "/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "y", string(data))
}

func TestNew_UntitledStaysUnbound(t *testing.T) {
	c := NewController(afero.NewMemMapFs(), nil)
	c.New()
	assert.False(t, c.Bound())
	assert.ErrorIs(t, c.Save("y"), ErrNoPath)
}

func TestBind_NonexistentPathSavesThere(t *testing.T) {
	mem := afero.NewMemMapFs()
	c := NewController(mem, nil)
	c.Bind("/new.txt")

	require.NoError(t, c.Save("hello"))
	ok, err := afero.Exists(mem, "/new.txt")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestChanged_DetectsExternalWrites(t *testing.T) {
	mem := afero.NewMemMapFs()
	c := NewController(mem, nil)
	require.NoError(t, c.SaveAs("/a.txt", "mine"))

	changed, err := c.Changed()
	require.NoError(t, err)
	assert.False(t, changed, "own write is not a change")

	require.NoError(t, afero.WriteFile(mem, "/a.txt", []byte("someone else's"), 0o644))
	changed, err = c.Changed()
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, mem.Remove("/a.txt"))
	changed, err = c.Changed()
	require.NoError(t, err)
	assert.True(t, changed, "removal is a change")
}

func TestErrors_Messages(t *testing.T) {
	err := &IOFailure{Op: "save", Path: "/x", Err: fs.ErrPermission}
	assert.Equal(t, "save /x: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	dec := &DecodeFailure{Path: "/y", Offset: 7}
	assert.Equal(t, "decode /y: invalid UTF-8 at byte 7", dec.Error())
}
