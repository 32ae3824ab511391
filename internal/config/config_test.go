package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "holidaze-gateway"
path = "/metrics"

[holidaze]
url = "https://v2.api.noroff.dev"
timeout = 10
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "https://v2.api.noroff.dev", cfg.Holidaze.URL)
	assert.Equal(t, 10, cfg.Holidaze.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing holidaze url",
			content: `
[server]
http_port = 8080
[logs]
level = "info"
[holidaze]
timeout = 10
`,
		},
		{
			name: "bad port",
			content: `
[server]
http_port = 0
[logs]
level = "info"
[holidaze]
url = "https://v2.api.noroff.dev"
timeout = 10
`,
		},
		{
			name: "metrics enabled without path",
			content: `
[server]
http_port = 8080
[logs]
level = "info"
[metrics]
enabled = true
[holidaze]
url = "https://v2.api.noroff.dev"
timeout = 10
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
