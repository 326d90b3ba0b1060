package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
)

const (
	ProviderOCIGenerativeAI = "OCI Generative AI"
	ProviderInDatabase      = "HeatWave In-Database"
)

// Model is a generation LLM known to the HeatWave instance.
type Model struct {
	Name   string
	Loaded bool
}

// Provider classifies the model by its namespace prefix.
func (m Model) Provider() string {
	return ModelProvider(m.Name)
}

func ModelProvider(name string) string {
	if strings.Contains(name, "cohere.") || strings.Contains(name, "meta.") {
		return ProviderOCIGenerativeAI
	}
	return ProviderInDatabase
}

// ListGenerationModels queries sys.ML_SUPPORTED_LLMS for generation models
// and marks which are loaded. sys.ML_MODEL_LOADED is missing on some
// HeatWave versions; HaveLoadInfo is false in that case and Loaded flags
// are meaningless.
func (c *Client) ListGenerationModels(ctx context.Context) (models []Model, haveLoadInfo bool, err error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT model_name FROM sys.ML_SUPPORTED_LLMS WHERE model_type = 'generation' ORDER BY model_name")
	if err != nil {
		return nil, false, fmt.Errorf("failed to list models: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, false, fmt.Errorf("failed to scan model name: %w", err)
		}
		models = append(models, Model{Name: name})
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	loaded, err := c.loadedModels(ctx)
	if err != nil {
		return models, false, nil
	}

	for i := range models {
		models[i].Loaded = loaded[models[i].Name]
	}

	return models, true, nil
}

func (c *Client) loadedModels(ctx context.Context) (map[string]bool, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT model_handle FROM sys.ML_MODEL_LOADED")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loaded := make(map[string]bool)
	for rows.Next() {
		var handle string
		if err := rows.Scan(&handle); err != nil {
			return nil, err
		}
		loaded[handle] = true
	}

	return loaded, rows.Err()
}

// GenerateOptions is the JSON options argument for ML_GENERATE and
// ML_GENERATE_TABLE.
func GenerateOptions(model, language string) string {
	opts, _ := json.Marshal(map[string]string{
		"task":     "generation",
		"model_id": model,
		"language": language,
	})
	return string(opts)
}

// Generate runs sys.ML_GENERATE for a single prompt and returns the raw
// JSON result. Both statements must run on the same session or the
// @query variable is lost to the pool.
func (c *Client) Generate(ctx context.Context, query, model, language string) (string, error) {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "SET @query = ?", query); err != nil {
		return "", fmt.Errorf("failed to set query variable: %w", err)
	}

	var result sql.NullString
	if err := conn.QueryRowContext(ctx, GenerateStatement(model, language)).Scan(&result); err != nil {
		return "", fmt.Errorf("generation failed: %w", err)
	}
	if !result.Valid {
		return "", nil
	}

	return result.String, nil
}

// ParseGeneratedText extracts the text field from an ML_GENERATE result;
// it returns the raw payload when the result is not the expected JSON.
func ParseGeneratedText(result string) string {
	var parsed struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(result), &parsed); err != nil || parsed.Text == "" {
		return result
	}
	return parsed.Text
}

// GenerateStatement builds the single-prompt generation SQL for display.
func GenerateStatement(model, language string) string {
	return fmt.Sprintf("SELECT sys.ML_GENERATE(@query, '%s')", GenerateOptions(model, language))
}

// GenerateTableStatement builds the batch generation CALL for display and
// execution.
func GenerateTableStatement(inputTable, outputTable, model, language string) string {
	return fmt.Sprintf("CALL sys.ML_GENERATE_TABLE('%s', '%s', '%s')",
		inputTable, outputTable, GenerateOptions(model, language))
}

// GenerateTable runs ML_GENERATE_TABLE over a whole input column.
func (c *Client) GenerateTable(ctx context.Context, inputTable, outputTable, model, language string) error {
	if _, err := c.db.ExecContext(ctx, GenerateTableStatement(inputTable, outputTable, model, language)); err != nil {
		return fmt.Errorf("batch generation failed: %w", err)
	}
	return nil
}

// QualifyTableSpec turns Table.Column into Database.Table.Column using the
// default database; a fully qualified spec passes through unchanged.
func QualifyTableSpec(spec, defaultDB string) (string, error) {
	parts := strings.Split(spec, ".")
	switch len(parts) {
	case 3:
		return spec, nil
	case 2:
		if defaultDB == "" {
			return "", fmt.Errorf("no database specified for %q", spec)
		}
		return defaultDB + "." + spec, nil
	default:
		return "", fmt.Errorf("%q must be in format Table.Column or Database.Table.Column", spec)
	}
}

// TableFromSpec drops the trailing column from Database.Table.Column.
func TableFromSpec(spec string) (string, error) {
	parts := strings.Split(spec, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%q is not a fully qualified Database.Table.Column spec", spec)
	}
	return parts[0] + "." + parts[1], nil
}

// CountRows returns the row count of a fully qualified table.
func (c *Client) CountRows(ctx context.Context, table string) (int, error) {
	var count int
	if err := c.db.QueryRowContext(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows: %w", err)
	}
	return count, nil
}

// SampleRows fetches up to limit rows from a table with every column
// stringified for display.
func (c *Client) SampleRows(ctx context.Context, table string, limit int) ([]string, [][]string, error) {
	rows, err := c.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table, limit))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sample rows: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var results [][]string
	for rows.Next() {
		raw := make([]sql.RawBytes, len(columns))
		dest := make([]any, len(columns))
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, err
		}

		values := make([]string, len(columns))
		for i, b := range raw {
			values[i] = string(b)
		}
		results = append(results, values)
	}

	return columns, results, rows.Err()
}
