package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema issues CREATE SCHEMA and returns the definition reported by
// SHOW CREATE SCHEMA. The caller validates the name before this runs;
// charset and collation are identifiers, not user data, so they are
// interpolated directly like the schema name.
func (c *Client) CreateSchema(ctx context.Context, name, charset, collation string, ifNotExists bool) (string, error) {
	clause := ""
	if ifNotExists {
		clause = "IF NOT EXISTS "
	}

	stmt := fmt.Sprintf(
		"CREATE SCHEMA %s%s DEFAULT CHARACTER SET %s DEFAULT COLLATE %s",
		clause, name, charset, collation,
	)

	if _, err := c.db.ExecContext(ctx, stmt); err != nil {
		return "", err
	}

	var schemaName, definition string
	row := c.db.QueryRowContext(ctx, fmt.Sprintf("SHOW CREATE SCHEMA %s", name))
	if err := row.Scan(&schemaName, &definition); err != nil {
		return "", nil // created, but definition unavailable
	}

	return definition, nil
}

// ListSchemas returns SHOW DATABASES, optionally filtered with a LIKE
// pattern (% wildcards).
func (c *Client) ListSchemas(ctx context.Context, pattern string) ([]string, error) {
	var (
		rows *sql.Rows
		err  error
	)

	if pattern != "" {
		// SHOW ... LIKE rejects placeholders; the pattern goes into the
		// statement text as a quoted literal
		rows, err = c.db.QueryContext(ctx, "SHOW DATABASES LIKE "+quoteLiteral(pattern))
	} else {
		rows, err = c.db.QueryContext(ctx, "SHOW DATABASES")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}
	defer rows.Close()

	var schemas []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan schema name: %w", err)
		}
		schemas = append(schemas, name)
	}

	return schemas, rows.Err()
}

// quoteLiteral escapes a value as a single-quoted MySQL string literal for
// statements that do not accept placeholders.
func quoteLiteral(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + replacer.Replace(value) + "'"
}

// DropSchema removes a schema. System schemas are rejected by the command
// layer before this is reached.
func (c *Client) DropSchema(ctx context.Context, name string) error {
	if _, err := c.db.ExecContext(ctx, fmt.Sprintf("DROP SCHEMA IF EXISTS %s", name)); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}
