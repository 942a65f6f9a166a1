package bootstrap_test

import (
	"testing"

	"github.com/jt828/dropwizard-fixture/internal/bootstrap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodNodeID(t *testing.T) {
	t.Run("different hostnames produce different node IDs", func(t *testing.T) {
		t.Setenv("HOSTNAME", "dropwizard-fixture-7f8b9c6d4-x2k9p")
		id1, err := bootstrap.PodNodeID()
		require.NoError(t, err)

		t.Setenv("HOSTNAME", "dropwizard-fixture-7f8b9c6d4-a3m7n")
		id2, err := bootstrap.PodNodeID()
		require.NoError(t, err)

		assert.NotEqual(t, id1, id2)
	})

	t.Run("same hostname produces same node ID", func(t *testing.T) {
		t.Setenv("HOSTNAME", "dropwizard-fixture-7f8b9c6d4-x2k9p")
		id1, err := bootstrap.PodNodeID()
		require.NoError(t, err)

		id2, err := bootstrap.PodNodeID()
		require.NoError(t, err)

		assert.Equal(t, id1, id2)
	})

	t.Run("node ID is within valid range 0-1023", func(t *testing.T) {
		for _, hostname := range []string{"a", "fixture-abc123-def456", "my-app-pod-zzzzz"} {
			t.Setenv("HOSTNAME", hostname)
			id, err := bootstrap.PodNodeID()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, id, int64(0))
			assert.LessOrEqual(t, id, int64(1023))
		}
	})

	t.Run("empty HOSTNAME falls back to the OS hostname", func(t *testing.T) {
		t.Setenv("HOSTNAME", "")
		_, err := bootstrap.PodNodeID()
		assert.NoError(t, err)
	})

	t.Run("generator produces distinct ids", func(t *testing.T) {
		t.Setenv("HOSTNAME", "fixture-0")
		ids, err := bootstrap.InitializeSnowflake()
		require.NoError(t, err)

		assert.NotEqual(t, ids.GenerateString(), ids.GenerateString())
	})
}
