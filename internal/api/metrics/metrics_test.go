package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/eduplay/platform-api/internal/core/domain"
)

func TestResult(t *testing.T) {
	cases := map[string]error{
		"success":           nil,
		"conflict":          domain.ErrUserExists,
		"auth":              domain.ErrInvalidCredentials,
		"too_many_requests": domain.ErrTooManyLoginAttempts,
		"internal":          errors.New("boom"),
	}
	for want, err := range cases {
		if got := Result(err); got != want {
			t.Fatalf("Result(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestLoginsTotal_CountsByResult(t *testing.T) {
	before := testutil.ToFloat64(LoginsTotal.WithLabelValues("auth"))
	LoginsTotal.WithLabelValues(Result(domain.ErrInvalidCredentials)).Inc()
	if got := testutil.ToFloat64(LoginsTotal.WithLabelValues("auth")); got != before+1 {
		t.Fatalf("expected counter %v, got %v", before+1, got)
	}
}
