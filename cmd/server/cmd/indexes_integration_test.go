//go:build integration

package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"academic-events/config"
)

func TestEnsureIndexes(t *testing.T) {
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	var logs, out bytes.Buffer
	cfg := config.Config{MongoURI: uri, MongoDB: "sistema_academico_cmd"}
	require.NoError(t, ensureIndexes(ctx, cfg, zerolog.New(&logs), &out))

	names := strings.Fields(out.String())
	assert.NotEmpty(t, names)
	assert.Contains(t, logs.String(), `"message":"indexes ensured"`)
	assert.Contains(t, logs.String(), `"db":"sistema_academico_cmd"`)
	assert.NotContains(t, logs.String(), `"level":"error"`)
}
