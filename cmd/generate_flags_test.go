package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTextFlags(t *testing.T) {
	flags := generateTextCmd.Flags()

	shorthands := map[string]string{
		"model":       "m",
		"lang":        "l",
		"interactive": "i",
	}
	for name, shorthand := range shorthands {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand, name)
	}

	assert.NotNil(t, flags.Lookup("show-query"))
	assert.NotNil(t, flags.Lookup("raw"))
}

func TestGenerateTextPromptIsOptional(t *testing.T) {
	assert.NoError(t, generateTextCmd.Args(generateTextCmd, nil))
	assert.NoError(t, generateTextCmd.Args(generateTextCmd, []string{"write a haiku"}))
	assert.Error(t, generateTextCmd.Args(generateTextCmd, []string{"a", "b"}))
}

func TestGenerateBatchFlags(t *testing.T) {
	flags := generateBatchCmd.Flags()

	shorthands := map[string]string{
		"model":    "m",
		"lang":     "l",
		"database": "d",
	}
	for name, shorthand := range shorthands {
		flag := flags.Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand, name)
	}

	assert.NotNil(t, flags.Lookup("show-query"))
}

func TestGenerateBatchTakesInputAndOutputSpecs(t *testing.T) {
	assert.Error(t, generateBatchCmd.Args(generateBatchCmd, []string{"articles.body"}))
	assert.NoError(t, generateBatchCmd.Args(generateBatchCmd, []string{"articles.body", "summaries.text"}))
}

func TestTestTargets(t *testing.T) {
	cases := []struct {
		name           string
		db, oci        bool
		wantDB, wantOCI bool
	}{
		{"neither flag runs both", false, false, true, true},
		{"db only", true, false, true, false},
		{"oci only", false, true, false, true},
		{"both flags run both", true, true, true, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotDB, gotOCI := testTargets(tc.db, tc.oci)
			assert.Equal(t, tc.wantDB, gotDB)
			assert.Equal(t, tc.wantOCI, gotOCI)
		})
	}
}
