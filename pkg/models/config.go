package models

// DatabaseConfig holds the HeatWave DB system connection settings. The
// password is stored encrypted on disk and decrypted on load.
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	Database string `json:"database,omitempty"`
}

// OCIConfig records where the OCI SDK config file lives and which profile
// to use. The file itself stays in the OCI SDK's own format.
type OCIConfig struct {
	ConfigPath string `json:"config_path"`
	Configured bool   `json:"configured"`
	Profile    string `json:"profile"`
}

// StoreFile is the on-disk shape of .heatwaved/config.json. Either section
// may be absent.
type StoreFile struct {
	Database *DatabaseConfig `json:"database,omitempty"`
	OCI      *OCIConfig      `json:"oci,omitempty"`
}
