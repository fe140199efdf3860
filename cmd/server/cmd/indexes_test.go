package cmd

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academic-events/config"
)

func TestEnsureIndexesUnreachableServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	var logs, out bytes.Buffer
	cfg := config.Config{MongoURI: "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=500", MongoDB: "unused"}
	err := ensureIndexes(ctx, cfg, zerolog.New(&logs), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
	assert.Empty(t, out.String())
	assert.NotContains(t, logs.String(), "indexes ensured")
}
