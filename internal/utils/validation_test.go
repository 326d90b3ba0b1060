package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSchemaName(t *testing.T) {
	valid := []string{"analytics", "my_schema", "A1", "db2024", strings.Repeat("a", 64)}
	for _, name := range valid {
		assert.True(t, IsValidSchemaName(name), name)
	}

	invalid := []string{"", "1schema", "_schema", "my-schema", "my schema", strings.Repeat("a", 65)}
	for _, name := range invalid {
		assert.False(t, IsValidSchemaName(name), name)
	}
}

func TestIsSystemSchema(t *testing.T) {
	for _, name := range []string{"mysql", "sys", "information_schema", "performance_schema"} {
		assert.True(t, IsSystemSchema(name), name)
	}

	assert.False(t, IsSystemSchema("analytics"))
	assert.False(t, IsSystemSchema(""))
}

func TestIsValidInstanceName(t *testing.T) {
	valid := []string{"dev", "poc-1", "my-local-db", "a"}
	for _, name := range valid {
		assert.True(t, IsValidInstanceName(name), name)
	}

	invalid := []string{"", "-dev", "dev-", "Dev", "my_db", "my db", strings.Repeat("a", 65)}
	for _, name := range invalid {
		assert.False(t, IsValidInstanceName(name), name)
	}
}

func TestMaskValue(t *testing.T) {
	ocid := "ocid1.tenancy.oc1..aaaaaaaabbbbbbbbcccccccc"
	masked := MaskValue(ocid)
	assert.Equal(t, "ocid1.tena...bbcccccccc", masked)
	assert.NotContains(t, masked, "aaaaaaaabbbbbbbb")

	assert.Equal(t, "***", MaskValue("short"))
	assert.Equal(t, "***", MaskValue(""))
}

func TestMaskPassword(t *testing.T) {
	assert.Equal(t, "********", MaskPassword("hunter2"))
	assert.Equal(t, "", MaskPassword(""))
}
