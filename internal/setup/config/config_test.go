package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigVersion(t *testing.T) {
	t.Run("matching version", func(t *testing.T) {
		assert.NoError(t, checkConfigVersion("common", CurrentCommonVersion, CurrentCommonVersion))
	})

	t.Run("missing version", func(t *testing.T) {
		err := checkConfigVersion("common", 0, CurrentCommonVersion)
		require.ErrorIs(t, err, ErrConfigVersionMissing)
	})

	t.Run("version mismatch points at shipped config", func(t *testing.T) {
		err := checkConfigVersion("worker", CurrentWorkerVersion+1, CurrentWorkerVersion)
		require.ErrorIs(t, err, ErrConfigVersionMismatch)

		// The update URL must reference a tag the repository carries.
		assert.Contains(t, err.Error(), "/tree/"+RepositoryVersion+"/config/worker.toml")
	})
}
