package models

// ProjectConfig is the optional heatwave.toml in the project directory.
// Every field has a built-in default; the file only overrides.
type ProjectConfig struct {
	Schema    SchemaDefaults    `toml:"schema"`
	Generate  GenerateDefaults  `toml:"generate"`
	Lakehouse LakehouseDefaults `toml:"lakehouse"`
	Local     LocalDefaults     `toml:"local"`
}

type SchemaDefaults struct {
	Charset   string `toml:"charset"`
	Collation string `toml:"collation"`
}

type GenerateDefaults struct {
	Model    string `toml:"model"`
	Language string `toml:"language"`
}

type LakehouseDefaults struct {
	DynamicGroup string `toml:"dynamic_group"`
	Policy       string `toml:"policy"`
}

type LocalDefaults struct {
	Image    string `toml:"image"`
	Port     int    `toml:"port"`
	Password string `toml:"password"`
}
