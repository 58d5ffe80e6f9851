package iocache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tempograph/tempograph/schema"
)

func TestValidateTableName(t *testing.T) {
	valid := []string{"aggregate_cache", "_private", "Table123"}
	for _, name := range valid {
		assert.NoError(t, validateTableName(name), name)
	}

	invalid := []string{"", "1table", "bad-name", "bad;drop", "bad name", "bad.table"}
	for _, name := range invalid {
		assert.Error(t, validateTableName(name), name)
	}
}

func TestQuoteTableName(t *testing.T) {
	assert.Equal(t, "`aggregate_cache`", quoteTableName("aggregate_cache", schema.MySQLBackend))
	assert.Equal(t, `"aggregate_cache"`, quoteTableName("aggregate_cache", schema.PostgreSQLBackend))
	assert.Equal(t, `"aggregate_cache"`, quoteTableName("aggregate_cache", schema.SQLiteBackend))
}
