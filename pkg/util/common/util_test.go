package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	logger, sugared := SetupLogger("DEBUG")
	require.NotNil(t, logger)
	require.NotNil(t, sugared)
}
