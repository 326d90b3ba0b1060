package mysql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelProvider(t *testing.T) {
	assert.Equal(t, ProviderOCIGenerativeAI, ModelProvider("cohere.command-r-plus"))
	assert.Equal(t, ProviderOCIGenerativeAI, ModelProvider("meta.llama-3.1-405b-instruct"))
	assert.Equal(t, ProviderInDatabase, ModelProvider("llama3.2-3b-instruct-v1"))
	assert.Equal(t, ProviderInDatabase, ModelProvider("mistral-7b-instruct-v3"))

	model := Model{Name: "cohere.command"}
	assert.Equal(t, ProviderOCIGenerativeAI, model.Provider())
}

func TestGenerateOptions(t *testing.T) {
	opts := GenerateOptions("llama3.2-3b-instruct-v1", "en")

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(opts), &parsed))

	assert.Equal(t, "generation", parsed["task"])
	assert.Equal(t, "llama3.2-3b-instruct-v1", parsed["model_id"])
	assert.Equal(t, "en", parsed["language"])
}

func TestGenerateTableStatement(t *testing.T) {
	stmt := GenerateTableStatement("docs.articles.body", "docs.summaries", "llama3.2-3b-instruct-v1", "en")

	assert.Contains(t, stmt, "CALL sys.ML_GENERATE_TABLE('docs.articles.body', 'docs.summaries',")
	assert.Contains(t, stmt, `"model_id":"llama3.2-3b-instruct-v1"`)
}

func TestParseGeneratedText(t *testing.T) {
	assert.Equal(t, "hello world", ParseGeneratedText(`{"text":"hello world"}`))

	// non-JSON and JSON without a text field pass through untouched
	assert.Equal(t, "plain output", ParseGeneratedText("plain output"))
	assert.Equal(t, `{"other":"field"}`, ParseGeneratedText(`{"other":"field"}`))
}

func TestQualifyTableSpec(t *testing.T) {
	spec, err := QualifyTableSpec("articles.body", "docs")
	require.NoError(t, err)
	assert.Equal(t, "docs.articles.body", spec)

	spec, err = QualifyTableSpec("docs.articles.body", "other")
	require.NoError(t, err)
	assert.Equal(t, "docs.articles.body", spec)

	_, err = QualifyTableSpec("articles.body", "")
	assert.Error(t, err)

	_, err = QualifyTableSpec("body", "docs")
	assert.Error(t, err)

	_, err = QualifyTableSpec("a.b.c.d", "docs")
	assert.Error(t, err)
}

func TestTableFromSpec(t *testing.T) {
	table, err := TableFromSpec("docs.articles.body")
	require.NoError(t, err)
	assert.Equal(t, "docs.articles", table)

	_, err = TableFromSpec("articles.body")
	assert.Error(t, err)
}
