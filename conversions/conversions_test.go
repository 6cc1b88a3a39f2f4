package conversions

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/adt/either"
	"github.com/npillmayer/adt/maybe"
	"github.com/npillmayer/adt/result"
	"github.com/npillmayer/adt/validation"
)

func TestEitherConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.conversions")
	defer teardown()
	//
	r := either.Right[string](5)
	l := either.Left[string, int]("bad")
	assert.True(t, EitherToMaybe(r).Equals(maybe.Just(5)))
	assert.True(t, EitherToMaybe(l).IsNothing())
	assert.True(t, EitherToValidation(r).Equals(validation.Success[string](5)))
	assert.Equal(t, []string{"bad"}, EitherToValidation(l).Failures())

	boom := errors.New("boom")
	res := EitherToResult(either.Left[error, int](boom))
	_, err := res.Get()
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 5, EitherToResult(either.Right[error](5)).GetOrElse(0))
}

func TestMaybeConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.conversions")
	defer teardown()
	//
	j, n := maybe.Just("x"), maybe.Nothing[string]()
	assert.True(t, MaybeToEither(j, 0).Equals(either.Right[int]("x")))
	assert.True(t, MaybeToEither(n, 7).Equals(either.Left[int, string](7)))
	assert.True(t, MaybeToValidation(j, "missing").IsSuccess())
	assert.Equal(t, []string{"missing"}, MaybeToValidation(n, "missing").Failures())
	none := errors.New("none")
	_, err := MaybeToResult(n, none).Get()
	assert.ErrorIs(t, err, none)
	assert.Equal(t, "x", MaybeToResult(j, none).GetOrElse(""))
}

func TestResultConversions(t *testing.T) {
	ok, bad := result.Ok(1), result.Err[int](errors.New("e"))
	assert.True(t, ResultToMaybe(ok).Equals(maybe.Just(1)))
	assert.True(t, ResultToMaybe(bad).IsNothing())
	assert.True(t, ResultToEither(ok).IsRight())
	assert.True(t, ResultToEither(bad).IsLeft())
	assert.True(t, ResultToValidation(ok).IsSuccess())
	assert.Len(t, ResultToValidation(bad).Failures(), 1)
}

func TestValidationConversions(t *testing.T) {
	s := validation.Success[string](3)
	f := validation.Failure[string, int]("a", "b")
	assert.Equal(t, 3, ValidationToEither(s).GetOrElse(0))
	var fs []string
	var x int
	switch m := ValidationToEither(f).Match(); m {
	case m.Left(&fs):
	case m.Right(&x):
		t.Error("expected Failure to convert to Left")
	}
	assert.Equal(t, []string{"a", "b"}, fs)
	assert.True(t, ValidationToMaybe(s).IsJust())
	assert.True(t, ValidationToMaybe(f).IsNothing())
	_, err := ValidationToResult(f).Get()
	assert.ErrorIs(t, err, validation.ErrFailure)
	assert.Contains(t, err.Error(), "a; b")
}

func TestNullableConversions(t *testing.T) {
	n := 42
	var null *int
	assert.True(t, NullableToMaybe(&n).Equals(maybe.Just(42)))
	assert.True(t, NullableToMaybe(null).IsNothing())
	assert.True(t, NullableToEither(null, "nil").IsLeft())
	assert.Equal(t, 42, NullableToEither(&n, "nil").GetOrElse(0))
	assert.True(t, NullableToValidation(null, "nil").IsFailure())
	assert.True(t, NullableToValidation(&n, "nil").IsSuccess())
	_, err := NullableToResult(null).Get()
	assert.ErrorIs(t, err, ErrNull)
	assert.Equal(t, 42, NullableToResult(&n).GetOrElse(0))
}
