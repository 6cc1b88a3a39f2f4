package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
	"github.com/npillmayer/adt/validation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func checkName(name string) validation.Validation[string, string] {
	if strings.TrimSpace(name) == "" {
		return validation.Failure[string, string]("name is empty")
	}
	return validation.Success[string](name)
}

func checkAge(age int) validation.Validation[string, string] {
	if age < 0 {
		return validation.Failure[string, string]("age is negative")
	}
	return validation.Success[string]("ok")
}

func TestValidationCollectsFailures(t *testing.T) {
	v := validation.Collect(checkName(""), checkAge(-1))
	assert.True(t, v.IsFailure())
	assert.Equal(t, []string{"name is empty", "age is negative"}, v.Failures())
	_, err := v.Get()
	assert.ErrorIs(t, err, validation.ErrFailure)
}

func TestValidationAllSuccessful(t *testing.T) {
	v := validation.Collect(checkName("Kim"), checkAge(30))
	assert.True(t, v.IsSuccess())
	assert.Equal(t, "ok", v.GetOrElse("?"))
	assert.Nil(t, v.Failures())
}

func TestValidationConcat(t *testing.T) {
	f1 := validation.Failure[string, int]("a")
	f2 := validation.Failure[string, int]("b", "c")
	s := validation.Success[string](1)
	assert.Equal(t, []string{"a", "b", "c"}, f1.Concat(f2).Failures())
	assert.Equal(t, []string{"a"}, f1.Concat(s).Failures())
	assert.Equal(t, []string{"b", "c"}, s.Concat(f2).Failures())
	assert.True(t, s.Concat(validation.Success[string](2)).Equals(validation.Success[string](2)))
}

func TestValidationMap(t *testing.T) {
	double := func(n int) int { return 2 * n }
	assert.Equal(t, 4, validation.Success[string](2).Map(double).GetOrElse(0))
	f := validation.Failure[string, int]("x").Map(double)
	assert.True(t, f.IsFailure())
	up := f.MapFailure(strings.ToUpper)
	assert.Equal(t, []string{"X"}, up.Failures())
}

func TestValidationMatch(t *testing.T) {
	var fs []string
	var x int
	v := validation.Failure[string, int]("bad")
	switch m := v.Match(); m {
	case m.Success(&x):
		t.Error("expected Failure not to match Success")
	case m.Failure(&fs):
		t.Logf("failures = %v", fs)
	}
	assert.Equal(t, []string{"bad"}, fs)
}

func TestValidationSerialization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.derive")
	defer teardown()
	//
	v := validation.Failure[string, int]("a", "b")
	data, err := derive.Marshal(v.Instance())
	assert.NoError(t, err)
	i, err := derive.Unmarshal(data, validation.Type)
	assert.NoError(t, err)
	w, err := validation.FromInstance[string, int](i)
	assert.NoError(t, err)
	assert.True(t, w.Equals(v), "expected %s to equal %s", w, v)
	_, err = derive.Unmarshal(data)
	assert.True(t, errors.Is(err, derive.ErrUnknownType))
}

func TestValidationAp(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	x := validation.Ap(validation.Success[string](inc), validation.Success[string](1))
	assert.True(t, x.Equals(validation.Success[string](2)), "expected Success(2), got %s", x)
	y := validation.Ap(validation.Failure[string, func(int) int]("a"), validation.Failure[string, int]("b"))
	assert.Equal(t, []string{"a", "b"}, y.Failures())
	z := validation.Ap(validation.Failure[string, func(int) int]("a"), validation.Success[string](1))
	assert.Equal(t, []string{"a"}, z.Failures())
	w := validation.Ap(validation.Success[string](inc), validation.Failure[string, int]("b"))
	assert.Equal(t, []string{"b"}, w.Failures())
}

func TestValidationSequence(t *testing.T) {
	v := validation.Sequence([]validation.Validation[string, string]{
		checkName(""), checkName("Bob"), checkAge(-1),
	})
	assert.Equal(t, []string{"name is empty", "age is negative"}, v.Failures())
	ok := validation.MapM(checkName, []string{"Alice", "Bob"})
	names, err := ok.Get()
	assert.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)
}

func TestValidationRejectsInvalidArguments(t *testing.T) {
	_, err := validation.Success[string](1).Instance().Call("Concat", 2)
	assert.ErrorIs(t, err, adt.ErrInvalidArgument)
	_, err = validation.Failure[string, int]("a").Instance().Call("MapFailure", "f")
	assert.ErrorIs(t, err, adt.ErrInvalidArgument)
}
