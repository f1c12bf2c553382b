package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"todo/internal/cli"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/testutil"
)

// runSession is a helper to run a session over input with a FakeStore.
func runSession(t *testing.T, store *testutil.FakeStore, in io.Reader) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	session := cli.NewSession(store, nil, output.ColorNever)
	code = session.Run(context.Background(), in, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestSession_AddToEmptyList(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, stderr, code := runSession(t, store, strings.NewReader("add buy milk\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"buy milk"}, store.Saved())
}

func TestSession_RemoveMiddle(t *testing.T) {
	store := testutil.NewFakeStore("a", "b", "c")

	_, stderr, code := runSession(t, store, strings.NewReader("remove 1\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, []string{"a", "c"}, store.Saved())
}

func TestSession_List(t *testing.T) {
	store := testutil.NewFakeStore("x")

	stdout, stderr, code := runSession(t, store, strings.NewReader("list\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "0 | x\n", stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, 0, store.Saves())
}

func TestSession_EmptyLineContinues(t *testing.T) {
	store := testutil.NewFakeStore("a")

	stdout, stderr, code := runSession(t, store, strings.NewReader("\nlist\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "invalid arg: \"\" is not a defined action\n", stderr)
	assert.Equal(t, "0 | a\n", stdout)
	assert.Equal(t, 0, store.Saves())
}

func TestSession_UnknownAction(t *testing.T) {
	store := testutil.NewFakeStore("a")

	stdout, stderr, code := runSession(t, store, strings.NewReader("frobnicate\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "frobnicate")
	assert.Equal(t, []string{"a"}, store.Saved())
	assert.Equal(t, 0, store.Saves())
}

func TestSession_RemoveOutOfRangeIsFatal(t *testing.T) {
	store := testutil.NewFakeStore("a")

	stdout, stderr, code := runSession(t, store, strings.NewReader("remove 1\nadd never\n"))

	assert.Equal(t, exitcode.IndexError, code)
	assert.Empty(t, stdout)
	assert.Equal(t, "error: removal index (is 1) should be < len (is 1)\n", stderr)
	assert.Equal(t, []string{"a"}, store.Saved())
	assert.Equal(t, 1, store.Saves(), "save runs before the session stops")
}

func TestSession_LoadUnavailable(t *testing.T) {
	store := testutil.NewFakeStore()
	store.LoadErr = testutil.Unavailable()

	_, stderr, code := runSession(t, store, strings.NewReader("add a\n"))

	assert.Equal(t, exitcode.StorageError, code)
	assert.True(t, strings.HasPrefix(stderr, "error: load tasks: "), stderr)
	assert.Equal(t, 0, store.Saves())
}

func TestSession_LoadMalformedStartsEmpty(t *testing.T) {
	store := testutil.NewFakeStore()
	store.LoadErr = testutil.Malformed()

	stdout, _, code := runSession(t, store, strings.NewReader("list\nadd fresh\nlist\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "0 | fresh\n", stdout)
	assert.Equal(t, []string{"fresh"}, store.Saved())
}

func TestSession_SaveUnavailable(t *testing.T) {
	store := testutil.NewFakeStore()
	store.SaveErr = testutil.Unavailable()

	_, stderr, code := runSession(t, store, strings.NewReader("add a\nadd b\n"))

	assert.Equal(t, exitcode.StorageError, code)
	assert.True(t, strings.HasPrefix(stderr, "error: save tasks: "), stderr)
	assert.Equal(t, 1, store.Saves())
}

func TestSession_SaveWriteFailureContinues(t *testing.T) {
	store := testutil.NewFakeStore()
	store.SaveErr = testutil.WriteFailure()

	stdout, _, code := runSession(t, store, strings.NewReader("add a\nadd b\nlist\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "0 | a\n1 | b\n", stdout)
	assert.Equal(t, 2, store.Saves())
}

func TestSession_UnterminatedLastLine(t *testing.T) {
	store := testutil.NewFakeStore()

	_, _, code := runSession(t, store, strings.NewReader("add one\nadd two"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, []string{"one", "two"}, store.Saved())
}

func TestSession_CRLF(t *testing.T) {
	store := testutil.NewFakeStore()

	stdout, stderr, code := runSession(t, store, strings.NewReader("add one\r\nlist\r\n"))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "0 | one\n", stdout)
}

func TestSession_EmptyInput(t *testing.T) {
	store := testutil.NewFakeStore("a")

	stdout, stderr, code := runSession(t, store, strings.NewReader(""))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
	assert.Equal(t, 0, store.Saves())
}

func TestSession_ReadError(t *testing.T) {
	store := testutil.NewFakeStore()
	in := io.MultiReader(strings.NewReader("add a\n"), iotest.ErrReader(errors.New("bad descriptor")))

	_, stderr, code := runSession(t, store, in)

	assert.Equal(t, exitcode.InputError, code)
	assert.Equal(t, "error: read input: bad descriptor\n", stderr)
	assert.Equal(t, []string{"a"}, store.Saved())
}

func TestSession_InvalidUTF8IsFatal(t *testing.T) {
	store := testutil.NewFakeStore()

	_, stderr, code := runSession(t, store, strings.NewReader("add ok\nadd a\xffb\nadd never\n"))

	assert.Equal(t, exitcode.InputError, code)
	assert.Equal(t, "error: read input: stream did not contain valid UTF-8\n", stderr)
	assert.Equal(t, []string{"ok"}, store.Saved())
	assert.Equal(t, 1, store.Saves())
}

func TestSession_Cancelled(t *testing.T) {
	store := testutil.NewFakeStore()
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var outBuf, errBuf bytes.Buffer
	code := cli.NewSession(store, nil, output.ColorNever).Run(ctx, pr, &outBuf, &errBuf)

	assert.Equal(t, exitcode.Interrupted, code)
	assert.Empty(t, errBuf.String())
}

func TestSession_Transcript(t *testing.T) {
	store := testutil.NewFakeStore()
	input := strings.Join([]string{
		"add buy milk",
		"add call mom",
		"add  walk   the dog",
		"list",
		"remove 1",
		"LIST",
		"frobnicate",
		"",
		"remove x",
		"remove",
		"add",
		"list",
	}, "\n") + "\n"

	stdout, stderr, code := runSession(t, store, strings.NewReader(input))

	assert.Equal(t, exitcode.Success, code)
	testutil.GoldenString(t, "transcript.stdout", stdout)
	testutil.GoldenString(t, "transcript.stderr", stderr)
	assert.Equal(t, []string{"buy milk", " walk   the dog", ""}, store.Saved())
}
