package config

// HasGroupSyncCredentials returns true if HTTP basic-auth credentials are
// configured for the release-group sync tool.
func (c *Config) HasGroupSyncCredentials() bool {
	return c.GroupSyncUsername != "" && c.GroupSyncPassword != ""
}

// HasGroupSyncKey returns true if an encryption key is configured for storing
// group-sync credentials at rest.
func (c *Config) HasGroupSyncKey() bool {
	return c.GroupSyncKey != ""
}

// GetGroupSyncURL returns the configured release-group listing URL, or empty
// string if the sync tool has not been configured.
func (c *Config) GetGroupSyncURL() string {
	return c.GroupSyncURL
}
