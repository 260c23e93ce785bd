package config

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for i, tc := range []struct {
		args []string
		year int
		want Config
	}{
		{nil, 2023, Config{Year: 2023, Day: 1, Month: 1}},
		{[]string{}, 2024, Config{Year: 2024, Day: 1, Month: 1}},
		{[]string{"15", "3"}, 2023, Config{Year: 2023, Day: 15, Month: 3, Ordinal: true}},
		{[]string{"29", "2"}, 2024, Config{Year: 2024, Day: 29, Month: 2, Ordinal: true}},
		{[]string{"31", "12"}, 2023, Config{Year: 2023, Day: 31, Month: 12, Ordinal: true}},
		{[]string{" 7 ", "8"}, 2023, Config{Year: 2023, Day: 7, Month: 8, Ordinal: true}},
	} {
		got, err := Parse(tc.args, tc.year)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %+v, want %+v", i, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for i, tc := range []struct {
		args []string
		year int
		want error
	}{
		{[]string{"1"}, 2023, ErrUsage},
		{[]string{"1", "2", "3"}, 2023, ErrUsage},
		{[]string{"x", "2"}, 2023, ErrNotInteger},
		{[]string{"1", "feb"}, 2023, ErrNotInteger},
		{[]string{"30", "2"}, 2023, ErrInvalidDate},
		{[]string{"29", "2"}, 2023, ErrInvalidDate},
		{[]string{"1", "13"}, 2023, ErrInvalidDate},
		{[]string{"0", "1"}, 2023, ErrInvalidDate},
		{[]string{"31", "4"}, 2023, ErrInvalidDate},
	} {
		_, err := Parse(tc.args, tc.year)
		if !errors.Is(err, tc.want) {
			t.Errorf("%v: %v: got %v, want %v", i, tc.args, err, tc.want)
		}
	}
}

func TestParseReportsAllProblems(t *testing.T) {
	_, err := Parse([]string{"first", "second"}, 2023)
	if err == nil {
		t.Fatal("expected an error")
	}
	var m interface{ Unwrap() []error }
	if !errors.As(err, &m) {
		t.Fatalf("expected a multi-error, got %T", err)
	}
	if got, want := len(m.Unwrap()), 2; got != want {
		t.Errorf("got %v errors, want %v: %v", got, want, err)
	}
}

func TestYear(t *testing.T) {
	now := time.Date(2031, time.June, 5, 0, 0, 0, 0, time.UTC)

	t.Setenv(YearEnv, "")
	if y, err := Year(now); err != nil || y != 2031 {
		t.Errorf("got %v, %v, want 2031", y, err)
	}

	t.Setenv(YearEnv, "2024")
	if y, err := Year(now); err != nil || y != 2024 {
		t.Errorf("got %v, %v, want 2024", y, err)
	}

	for _, bad := range []string{"soon", "0", "-5"} {
		t.Setenv(YearEnv, bad)
		if _, err := Year(now); err == nil {
			t.Errorf("%q: expected an error", bad)
		}
	}
}
