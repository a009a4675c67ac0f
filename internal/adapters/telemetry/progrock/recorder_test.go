package progrock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prosa/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_Lifecycle(t *testing.T) {
	recorder := progrock.New()
	ctx := context.Background()

	_, written := recorder.Record(ctx, "app")
	written.Log("wrote build.xml")
	written.Complete(nil)

	_, unchanged := recorder.Record(ctx, "app/core")
	unchanged.Cached()
	unchanged.Complete(nil)

	_, failed := recorder.Record(ctx, "app/web")
	failed.Complete(errors.New("output was modified since it was generated"))

	require.NoError(t, recorder.Close())
}
