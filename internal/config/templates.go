package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Dhan MCP Server Configuration

[api]
# Dhan v2 API base URL
base_url = "https://api.dhan.co/v2"
# Request timeout in seconds
timeout_seconds = 30

[instruments]
# Local instrument master database (created automatically)
db_path = ""
# Scrip master CSV source
master_url = "https://images.dhan.co/api-data/api-scrip-master.csv"
# Hours before the instrument master is re-downloaded
refresh_hours = 24

[logging]
# Log level: debug, info, warn, error
level = "info"
# Also write logs to a rotating file
file = true
file_path = ""
`

const credentialsTemplate = `# Dhan MCP Server Credentials
#
# Get your access token from web.dhan.co -> My Profile -> Access DhanHQ APIs.
# Environment variables DHAN_CLIENT_ID and DHAN_ACCESS_TOKEN override these.

[dhan]
client_id    = "your-client-id"
access_token = "your-access-token"
`

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(configTemplate), 0600)
}

func createTemplateCredentials(configDir string) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	path := filepath.Join(configDir, "credentials.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	// Credentials template gets restricted permissions
	return os.WriteFile(path, []byte(credentialsTemplate), 0600)
}
