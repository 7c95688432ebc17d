package functional_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/logistics-platform/libs/go/measures/functional"
)

func TestOkAndErr(t *testing.T) {
	ok := functional.Ok(10)
	if !ok.IsOk() || ok.IsErr() {
		t.Fatal("Ok should report success")
	}
	if ok.Unwrap() != 10 {
		t.Fatalf("expected 10, got %v", ok.Unwrap())
	}

	boom := errors.New("boom")
	failed := functional.Err[int](boom)
	if failed.IsOk() || !failed.IsErr() {
		t.Fatal("Err should report failure")
	}
	if !errors.Is(failed.UnwrapErr(), boom) {
		t.Fatal("UnwrapErr should return the original error")
	}
	if failed.UnwrapOr(-1) != -1 {
		t.Fatal("UnwrapOr should yield the default on Err")
	}
}

func TestUnwrapErrPanicsOnOk(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("UnwrapErr on Ok should panic")
		}
	}()
	functional.Ok(1).UnwrapErr()
}

func TestUnwrapPanicsOnErr(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Unwrap on Err should panic")
		}
	}()
	functional.Err[int](errors.New("boom")).Unwrap()
}

func TestResultGet(t *testing.T) {
	v, err := functional.Ok("x").Get()
	if err != nil || v != "x" {
		t.Fatalf("expected (x, nil), got (%v, %v)", v, err)
	}
	_, err = functional.Err[string](errors.New("boom")).Get()
	if err == nil {
		t.Fatal("Get on Err should surface the error")
	}
}

func TestResultMatch(t *testing.T) {
	var got int
	functional.Ok(3).Match(
		func(v int) { got = v },
		func(error) { t.Fatal("onErr must not run for Ok") },
	)
	if got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}

	var seen error
	functional.Err[int](errors.New("boom")).Match(
		func(int) { t.Fatal("onOk must not run for Err") },
		func(err error) { seen = err },
	)
	if seen == nil {
		t.Fatal("onErr should receive the error")
	}
}

func TestToOption(t *testing.T) {
	if got := functional.Ok(5).ToOption().Unwrap(); got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
	if functional.Err[int](errors.New("boom")).ToOption().IsSome() {
		t.Fatal("Err should convert to None")
	}
}

func TestMapResult(t *testing.T) {
	mapped := functional.MapResult(functional.Ok(21), func(v int) string {
		return strconv.Itoa(v * 2)
	})
	if mapped.Unwrap() != "42" {
		t.Fatalf("expected 42, got %v", mapped.Unwrap())
	}

	boom := errors.New("boom")
	failed := functional.MapResult(functional.Err[int](boom), strconv.Itoa)
	if !errors.Is(failed.UnwrapErr(), boom) {
		t.Fatal("mapping Err should carry the error through")
	}
}

func TestTry(t *testing.T) {
	if got := functional.Try(strconv.Atoi("42")); !got.IsOk() || got.Unwrap() != 42 {
		t.Fatalf("expected Ok(42), got %v", got)
	}
	if functional.Try(strconv.Atoi("nope")).IsOk() {
		t.Fatal("Try should capture the conversion error")
	}
}
