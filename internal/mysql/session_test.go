package mysql

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConnector hands out independent connections that answer only the
// statements these tests issue. Session state (the @query variable) lives
// on the individual connection, like it does on a real server.
type fakeConnector struct {
	mu         sync.Mutex
	statements []string
}

func (c *fakeConnector) Connect(context.Context) (driver.Conn, error) {
	return &fakeConn{connector: c}, nil
}

func (c *fakeConnector) Driver() driver.Driver { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) {
	return nil, fmt.Errorf("open through the connector")
}

type fakeConn struct {
	connector *fakeConnector
	prompt    string
	promptSet bool
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{conn: c, query: query}, nil
}

func (c *fakeConn) Close() error { return nil }

func (c *fakeConn) Begin() (driver.Tx, error) {
	return nil, fmt.Errorf("transactions unsupported")
}

type fakeStmt struct {
	conn  *fakeConn
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }

func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.record()
	if strings.HasPrefix(s.query, "SET @query") && len(args) == 1 {
		s.conn.prompt, _ = args[0].(string)
		s.conn.promptSet = true
	}
	return driver.ResultNoRows, nil
}

func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.record()
	switch {
	case strings.HasPrefix(s.query, "SELECT sys.ML_GENERATE"):
		// @query only exists on the connection that set it
		if !s.conn.promptSet {
			return &fakeRows{columns: []string{"result"}, rows: [][]driver.Value{{nil}}}, nil
		}
		payload := fmt.Sprintf(`{"text":%q}`, s.conn.prompt)
		return &fakeRows{columns: []string{"result"}, rows: [][]driver.Value{{payload}}}, nil
	case strings.HasPrefix(s.query, "SHOW DATABASES"):
		return &fakeRows{columns: []string{"Database"}, rows: [][]driver.Value{{"analytics"}, {"mysql"}}}, nil
	}
	return &fakeRows{columns: []string{"value"}}, nil
}

func (s *fakeStmt) record() {
	s.conn.connector.mu.Lock()
	defer s.conn.connector.mu.Unlock()
	s.conn.connector.statements = append(s.conn.connector.statements, s.query)
}

type fakeRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *fakeRows) Columns() []string { return r.columns }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

func newFakeClient(connector *fakeConnector) *Client {
	db := sql.OpenDB(connector)
	// force a fresh connection per pooled operation so session state is
	// only visible when the caller pins a connection
	db.SetMaxIdleConns(0)
	return &Client{db: db}
}

func TestGenerateUsesOneSession(t *testing.T) {
	connector := &fakeConnector{}
	client := newFakeClient(connector)
	defer client.Close()

	result, err := client.Generate(context.Background(), "tell me a story", "llama3.2-3b-instruct-v1", "en")
	require.NoError(t, err)

	assert.Equal(t, "tell me a story", ParseGeneratedText(result))

	require.Len(t, connector.statements, 2)
	assert.Equal(t, "SET @query = ?", connector.statements[0])
	assert.True(t, strings.HasPrefix(connector.statements[1], "SELECT sys.ML_GENERATE(@query,"))
}

func TestListSchemasInlinesPattern(t *testing.T) {
	connector := &fakeConnector{}
	client := newFakeClient(connector)
	defer client.Close()

	schemas, err := client.ListSchemas(context.Background(), "test_%")
	require.NoError(t, err)
	assert.Equal(t, []string{"analytics", "mysql"}, schemas)

	require.Len(t, connector.statements, 1)
	assert.Equal(t, "SHOW DATABASES LIKE 'test_%'", connector.statements[0])
}

func TestQuoteLiteral(t *testing.T) {
	assert.Equal(t, `'test_%'`, quoteLiteral("test_%"))
	assert.Equal(t, `'it\'s'`, quoteLiteral("it's"))
	assert.Equal(t, `'a\\b'`, quoteLiteral(`a\b`))
}
