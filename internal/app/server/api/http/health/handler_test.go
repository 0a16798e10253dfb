package health

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestHealthCheck(t *testing.T) {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	h := NewHandler(log, nil)

	out, err := h.healthCheck(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.Equal(t, "OK", out.Body.Status)
}
