package mysql

import (
	"context"
	"fmt"
	"strings"
)

// GrantStatements builds the GRANT set a user needs before running
// HeatWave GenAI vector store loads and generation tasks.
func GrantStatements(username, schema, inputSchema, outputSchema string) []string {
	return []string{
		fmt.Sprintf("GRANT 'mysql_task_user'@'%%' TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT VECTOR_STORE_LOAD_EXEC ON *.* TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT SELECT ON performance_schema.rpd_nodes TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT SELECT ON performance_schema.rpd_table_id TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT SELECT ON performance_schema.rpd_tables TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT SELECT ON sys.vector_store_load_metadata TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT SELECT ON sys.vector_store_load_tables TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT EXECUTE ON PROCEDURE sys.vector_store_load_current_schema TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT EXECUTE ON PROCEDURE sys.vector_store_load TO '%s'@'%%'", username),
		fmt.Sprintf("GRANT CREATE, ALTER, EVENT ON %s.* TO '%s'@'%%'", schema, username),
		fmt.Sprintf("GRANT SELECT, ALTER ON %s.* TO '%s'@'%%'", inputSchema, username),
		fmt.Sprintf("GRANT SELECT, INSERT, CREATE, DROP, ALTER, UPDATE ON %s.* TO '%s'@'%%'", outputSchema, username),
	}
}

// CurrentGrants returns SHOW GRANTS FOR CURRENT_USER().
func (c *Client) CurrentGrants(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, "SHOW GRANTS FOR CURRENT_USER()")
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", err)
	}
	defer rows.Close()

	var grants []string
	for rows.Next() {
		var grant string
		if err := rows.Scan(&grant); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, grant)
	}

	return grants, rows.Err()
}

var genAIKeywords = []string{
	"VECTOR_STORE", "RPD_", "MYSQL_TASK_USER", "PERFORMANCE_SCHEMA", "SYS.",
}

// FilterGenAIGrants keeps only the grants relevant to HeatWave GenAI.
func FilterGenAIGrants(grants []string) []string {
	var filtered []string
	for _, grant := range grants {
		upper := strings.ToUpper(grant)
		for _, keyword := range genAIKeywords {
			if strings.Contains(upper, keyword) {
				filtered = append(filtered, grant)
				break
			}
		}
	}
	return filtered
}

// HasTaskUserRole checks mysql.role_edges for the mysql_task_user role.
func (c *Client) HasTaskUserRole(ctx context.Context, username string) (bool, error) {
	var count int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM mysql.role_edges WHERE TO_USER = ? AND FROM_USER = 'mysql_task_user'",
		username,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
