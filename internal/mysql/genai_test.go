package mysql

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantStatements(t *testing.T) {
	statements := GrantStatements("appuser", "docs", "raw_docs", "results")

	require.Len(t, statements, 12)

	assert.Equal(t, "GRANT 'mysql_task_user'@'%' TO 'appuser'@'%'", statements[0])
	assert.Equal(t, "GRANT VECTOR_STORE_LOAD_EXEC ON *.* TO 'appuser'@'%'", statements[1])
	assert.Contains(t, statements, "GRANT CREATE, ALTER, EVENT ON docs.* TO 'appuser'@'%'")
	assert.Contains(t, statements, "GRANT SELECT, ALTER ON raw_docs.* TO 'appuser'@'%'")
	assert.Contains(t, statements, "GRANT SELECT, INSERT, CREATE, DROP, ALTER, UPDATE ON results.* TO 'appuser'@'%'")

	for _, stmt := range statements {
		assert.True(t, strings.HasPrefix(stmt, "GRANT "), stmt)
		assert.Contains(t, stmt, "'appuser'@'%'")
	}
}

func TestFilterGenAIGrants(t *testing.T) {
	grants := []string{
		"GRANT USAGE ON *.* TO `appuser`@`%`",
		"GRANT VECTOR_STORE_LOAD_EXEC ON *.* TO `appuser`@`%`",
		"GRANT SELECT ON `performance_schema`.`rpd_nodes` TO `appuser`@`%`",
		"GRANT `mysql_task_user`@`%` TO `appuser`@`%`",
		"GRANT SELECT ON `shop`.`orders` TO `appuser`@`%`",
	}

	filtered := FilterGenAIGrants(grants)

	assert.Len(t, filtered, 3)
	assert.NotContains(t, filtered, grants[0])
	assert.NotContains(t, filtered, grants[4])
}

func TestFilterGenAIGrantsEmpty(t *testing.T) {
	assert.Empty(t, FilterGenAIGrants(nil))
	assert.Empty(t, FilterGenAIGrants([]string{"GRANT USAGE ON *.* TO `x`@`%`"}))
}
