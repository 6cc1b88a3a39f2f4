package either_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/npillmayer/adt"
	"github.com/npillmayer/adt/derive"
	"github.com/npillmayer/adt/either"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestEitherMatchType(t *testing.T) {
	one := either.Left[int, string](1)
	t.Logf("one = %v", one)
	var n int
	var s string
	count := -1
	// Matching on constructor
	switch m := one.Match(); m {
	case m.Left(&n):
		count = n
	case m.Right(&s):
		count = Atoi(s)
	}
	if count != 1 {
		t.Errorf("expected count to be 1, is %d", count)
	}
}

func TestEitherMatchWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt")
	defer teardown()
	//
	two := either.Right[int]("2")
	count, err := two.Instance().MatchWith(adt.Pattern{
		"Left":  func(l *adt.Instance) any { return l.Get("value") },
		"Right": func(r *adt.Instance) any { return Atoi(r.Get("value").(string)) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("expected count to be 2, is %v", count)
	}
}

func TestEitherMap(t *testing.T) {
	r := either.Map(Atoi, either.Right[error]("41")).Map(func(n int) int { return n + 1 })
	if v, err := r.Get(); err != nil || v != 42 {
		t.Errorf("expected Right(41) mapped to be 42, is %d (%v)", v, err)
	}
	called := false
	l := either.Left[error, string](errors.New("boom")).Map(func(s string) string {
		called = true
		return s
	})
	if called || !l.IsLeft() {
		t.Error("expected Left.Map(f) to leave Left untouched and f not to be called")
	}
}

func TestEitherGet(t *testing.T) {
	_, err := either.Left[string, int]("no").Get()
	if !errors.Is(err, either.ErrLeft) {
		t.Errorf("expected Left.Get() to fail with ErrLeft, got %v", err)
	}
	if either.Left[string, int]("no").GetOrElse(7) != 7 {
		t.Error("expected Left.GetOrElse(7) to be 7")
	}
	if either.Right[string](3).GetOrElse(7) != 3 {
		t.Error("expected Right(3).GetOrElse(7) to be 3")
	}
}

func TestEitherChainAndOrElse(t *testing.T) {
	parse := func(s string) either.Either[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return either.Left[string, int]("not a number: " + s)
		}
		return either.Right[string](n)
	}
	if v := either.Chain(parse, either.Right[string]("12")).GetOrElse(0); v != 12 {
		t.Errorf("expected chain to parse 12, got %d", v)
	}
	bad := either.Chain(parse, either.Right[string]("x"))
	if !bad.IsLeft() {
		t.Fatalf("expected chain to fail for x, is %v", bad)
	}
	rec := bad.OrElse(func(string) either.Either[string, int] { return either.Right[string](0) })
	if !rec.Equals(either.Right[string](0)) {
		t.Errorf("expected OrElse to recover to Right(0), is %v", rec)
	}
}

func TestEitherFoldSwapBimap(t *testing.T) {
	length := func(s string) int { return len(s) }
	twice := func(n int) int { return 2 * n }
	if either.Fold(length, twice, either.Left[string, int]("abc")) != 3 {
		t.Error("expected Fold on Left(abc) to be 3")
	}
	if either.Fold(length, twice, either.Right[string](4)) != 8 {
		t.Error("expected Fold on Right(4) to be 8")
	}
	sw := either.Right[string](4).Swap()
	if !sw.IsLeft() || sw.Merge() != 4 {
		t.Errorf("expected Swap of Right(4) to be Left(4), is %v", sw)
	}
	b := either.Bimap(length, strconv.Itoa, either.Right[string](5))
	if v, _ := b.Get(); v != "5" {
		t.Errorf("expected Bimap on Right(5) to be Right(\"5\"), is %v", b)
	}
}

func TestEitherString(t *testing.T) {
	if s := either.Right[int]("ok").String(); s != `adt:Either.Right({ value: "ok" })` {
		t.Errorf("unexpected rendering: %s", s)
	}
}

func TestEitherAp(t *testing.T) {
	inc := func(n int) int { return n + 1 }
	if x := either.Ap(either.Right[string](inc), either.Right[string](1)); !x.Equals(either.Right[string](2)) {
		t.Errorf("expected Right(inc).Ap(Right(1)) to be Right(2), is %s", x)
	}
	if x := either.Ap(either.Right[string](inc), either.Left[string, int]("no")); !x.IsLeft() {
		t.Errorf("expected Right(inc).Ap(Left) to be Left, is %s", x)
	}
	x := either.Ap(either.Left[string, func(int) int]("first"), either.Left[string, int]("second"))
	if x.Merge() != "first" {
		t.Errorf("expected Left(first).Ap(Left(second)) to be Left(first), is %s", x)
	}
}

func TestEitherSequence(t *testing.T) {
	es := either.Sequence([]either.Either[string, int]{either.Right[string](1), either.Right[string](2)})
	if vs, err := es.Get(); err != nil || len(vs) != 2 || vs[1] != 2 {
		t.Errorf("expected Right([1 2]), got %s", es)
	}
	es = either.Sequence([]either.Either[string, int]{
		either.Right[string](1), either.Left[string, int]("a"), either.Left[string, int]("b"),
	})
	if !es.IsLeft() || es.Merge() != "a" {
		t.Errorf("expected first Left to win, got %s", es)
	}
	parse := func(s string) either.Either[error, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return either.Left[error, int](err)
		}
		return either.Right[error](n)
	}
	if ns := either.MapM(parse, []string{"1", "2"}); !ns.IsRight() {
		t.Errorf("expected MapM to parse numbers, got %s", ns)
	}
	if ns := either.MapM(parse, []string{"1", "x"}); !ns.IsLeft() {
		t.Errorf("expected MapM to fail on x, got %s", ns)
	}
}

func TestEitherRejectsInvalidArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt")
	defer teardown()
	//
	r := either.Right[string](1).Instance()
	if _, err := r.Call("Map", 5); !errors.Is(err, adt.ErrInvalidArgument) {
		t.Errorf("expected Map(5) to fail with invalid argument, got %v", err)
	}
	if _, err := r.Call("Fold", adt.Lift(Atoi)); !errors.Is(err, adt.ErrInvalidArgument) {
		t.Errorf("expected Fold with one function to fail, got %v", err)
	}
	if _, err := r.Call("Ap", r); !errors.Is(err, adt.ErrInvalidArgument) {
		t.Errorf("expected Right(1).Ap to fail, got %v", err)
	}
}

func TestEitherNumericRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "adt.derive")
	defer teardown()
	//
	orig := either.Right[string](uint16(42))
	data, err := derive.Marshal(orig.Instance())
	if err != nil {
		t.Fatal(err)
	}
	i, err := derive.Unmarshal(data, either.Type)
	if err != nil {
		t.Fatal(err)
	}
	e, err := either.FromInstance[string, uint16](i)
	if err != nil {
		t.Fatal(err)
	}
	if !e.Equals(orig) {
		t.Errorf("expected %s to equal %s", e, orig)
	}
	if _, err := either.FromInstance[string, int8](either.Right[string](300).Instance()); !errors.Is(err, adt.ErrInvalidArgument) {
		t.Errorf("expected 300 not to fit into int8, got %v", err)
	}
}

// ---------------------------------------------------------------------------

func Atoi(s string) int {
	i, _ := strconv.Atoi(s)
	return i
}
