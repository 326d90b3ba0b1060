package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/heatwave-cli/heatwaved/pkg/models"
)

const ConfigFileName = "heatwave.toml"

// LoadConfig reads heatwave.toml from projectPath and fills in defaults.
func LoadConfig(projectPath string) (*models.ProjectConfig, error) {
	configPath := filepath.Join(projectPath, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ConfigFileName, err)
	}

	var config models.ProjectConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ConfigFileName, err)
	}

	setDefaults(&config)
	return &config, nil
}

// LoadConfigIfExists returns defaults when heatwave.toml is absent; a
// missing file is not an error.
func LoadConfigIfExists(projectPath string) (*models.ProjectConfig, error) {
	configPath := filepath.Join(projectPath, ConfigFileName)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Defaults(), nil
	}

	return LoadConfig(projectPath)
}

// Defaults is the configuration used when no heatwave.toml exists.
func Defaults() *models.ProjectConfig {
	config := &models.ProjectConfig{}
	setDefaults(config)
	return config
}

func setDefaults(config *models.ProjectConfig) {
	if config.Schema.Charset == "" {
		config.Schema.Charset = "utf8mb4"
	}
	if config.Schema.Collation == "" {
		config.Schema.Collation = "utf8mb4_0900_ai_ci"
	}
	if config.Generate.Language == "" {
		config.Generate.Language = "en"
	}
	if config.Lakehouse.DynamicGroup == "" {
		config.Lakehouse.DynamicGroup = "HeatWaveBucket-dG"
	}
	if config.Lakehouse.Policy == "" {
		config.Lakehouse.Policy = "HeatWaveBucket-Policy"
	}
	if config.Local.Image == "" {
		config.Local.Image = "mysql:8.4"
	}
	if config.Local.Port == 0 {
		config.Local.Port = 3306
	}
}

// StarterConfig is the heatwave.toml written by 'heatwaved init' when the
// user asks for one.
func StarterConfig() string {
	return `# heatwave.toml - project defaults for heatwaved

[schema]
charset = "utf8mb4"
collation = "utf8mb4_0900_ai_ci"

[generate]
# model = "llama3.2-3b-instruct-v1"
language = "en"

[lakehouse]
dynamic_group = "HeatWaveBucket-dG"
policy = "HeatWaveBucket-Policy"

[local]
image = "mysql:8.4"
port = 3306
`
}
