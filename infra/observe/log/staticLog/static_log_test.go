package staticLog_test

import (
	"os"
	"path/filepath"
	"testing"

	"longrun/infra/observe/log/staticLog"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRollingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lrv.log")
	closer, err := staticLog.Init(staticLog.Options{Level: "debug", File: path, MaxSize: 1})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = staticLog.Init(staticLog.Options{})
	})

	staticLog.Log.WithField("order", 3).Debug("ar order selected")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "ar order selected")
	assert.Contains(t, string(b), "order=3")
}

func TestInitBadLevel(t *testing.T) {
	_, err := staticLog.Init(staticLog.Options{Level: "loud"})
	assert.Error(t, err)
}

func TestInitDefaultsToWarn(t *testing.T) {
	closer, err := staticLog.Init(staticLog.Options{})
	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
	assert.Equal(t, logrus.WarnLevel, staticLog.Log.GetLevel())
}
