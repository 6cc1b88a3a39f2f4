package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
	. "github.com/npillmayer/adt/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultTry(t *testing.T) {
	r := Try(func() (int, error) { return strconv.Atoi("42") })
	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	r = Try(func() (int, error) { return strconv.Atoi("x") })
	assert.True(t, r.IsError())

	r = Try(func() (int, error) {
		var m map[string]int
		m["boom"] = 1 // assignment to nil map panics
		return 0, nil
	})
	_, err = r.Get()
	assert.ErrorIs(t, err, ErrPanic)
}

func TestResultMapAndChain(t *testing.T) {
	half := func(n int) Result[int] {
		if n%2 != 0 {
			return Err[int](errors.New("odd"))
		}
		return Ok(n / 2)
	}
	assert.Equal(t, 5, Chain(half, Ok(10)).GetOrElse(0))
	assert.True(t, Chain(half, Ok(5)).IsError())
	assert.Equal(t, "7", Map(strconv.Itoa, Ok(7)).GetOrElse(""))

	called := false
	e := Err[int](errors.New("no")).Map(func(n int) int { called = true; return n })
	assert.False(t, called)
	assert.True(t, e.IsError())
}

func TestResultMapError(t *testing.T) {
	sentinel := errors.New("sentinel")
	r := Err[int](errors.New("low level")).MapError(func(err error) error {
		return sentinel
	})
	_, err := r.Get()
	assert.ErrorIs(t, err, sentinel)
	ok := Ok(1).MapError(func(error) error { return sentinel })
	assert.True(t, ok.IsOk())
}

func TestResultEquality(t *testing.T) {
	assert.True(t, Ok(1).Equals(Ok(1)))
	assert.False(t, Ok(1).Equals(Ok(2)))
	err := errors.New("x")
	assert.True(t, Err[int](err).Equals(Err[int](err)))
	assert.False(t, Ok(1).Equals(Err[int](err)))
}

func TestResultAp(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	assert.True(t, Ap(Ok(inc), Ok(1)).Equals(Ok(2)))
	failed := errors.New("failed")
	_, err := Ap(Ok(inc), Err[int](failed)).Get()
	assert.ErrorIs(t, err, failed)
	_, err = Ap(Err[func(int) int](failed), Ok(1)).Get()
	assert.ErrorIs(t, err, failed)
}

func TestResultSequence(t *testing.T) {
	rs := MapM(func(s string) Result[int] { return Try(func() (int, error) { return strconv.Atoi(s) }) },
		[]string{"1", "2", "3"})
	vs, err := rs.Get()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, vs)
	first := errors.New("first")
	_, err = Sequence([]Result[int]{Ok(1), Err[int](first), Err[int](errors.New("second"))}).Get()
	assert.ErrorIs(t, err, first)
}

func TestResultRejectsInvalidArguments(t *testing.T) {
	_, err := Ok(1).Instance().Call("Map", 5)
	assert.ErrorIs(t, err, adt.ErrInvalidArgument)
	_, err = Err[int](errors.New("x")).Instance().Call("Chain")
	assert.ErrorIs(t, err, adt.ErrInvalidArgument)
	_, err = Ok(1).Instance().Call("Ap", "not a result")
	assert.ErrorIs(t, err, adt.ErrInvalidArgument)
}

func TestResultNumericRoundTrip(t *testing.T) {
	data, err := derive.Marshal(Ok(5).Instance())
	require.NoError(t, err)
	i, err := derive.Unmarshal(data, Type)
	require.NoError(t, err)
	r, err := FromInstance[int](i)
	require.NoError(t, err)
	v, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.True(t, r.Equals(Ok(5)))

	data, err = derive.Marshal(Err[int](errors.New("bad")).Instance())
	require.NoError(t, err)
	i, err = derive.Unmarshal(data, Type)
	require.NoError(t, err)
	r, err = FromInstance[int](i)
	require.NoError(t, err)
	_, err = r.Get()
	assert.EqualError(t, err, "bad")
}
