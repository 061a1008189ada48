package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_FlagsMapToConfigKeys(t *testing.T) {
	app := newApp()

	names := map[string]bool{}
	for _, f := range app.Flags {
		names[f.Names()[0]] = true
	}

	for _, want := range []string{
		"config", "host", "port", "root", "max-connections",
		"scrape-delay", "enable-downloads", "enable-docs", "log-level", "log-format",
	} {
		assert.True(t, names[want], "missing flag %s", want)
	}
}

func TestNewApp_RejectsInvalidConfig(t *testing.T) {
	app := newApp()

	err := app.Run([]string{"demoserver", "--max-connections", "0"})
	require.Error(t, err)

	err = app.Run([]string{"demoserver", "--root", t.TempDir(), "--log-level", "loud"})
	require.Error(t, err)
}
