package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name string
	err  error
}

func (c stubChecker) Name() string                    { return c.name }
func (c stubChecker) Check(ctx context.Context) error { return c.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(stubChecker{name: "postgres"}, stubChecker{name: "smtp"})
	require.NoError(t, svc.Ready(context.Background()))
}

func TestReadyReportsFailingChecker(t *testing.T) {
	svc := NewService(
		stubChecker{name: "postgres"},
		stubChecker{name: "smtp", err: errors.New("connection refused")},
	)
	err := svc.Ready(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp")
}
