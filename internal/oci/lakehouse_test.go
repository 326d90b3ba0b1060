package oci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchingRule(t *testing.T) {
	rule := MatchingRule("ocid1.compartment.oc1..aaa")

	assert.Equal(t,
		"ALL{resource.type='mysqldbsystem', resource.compartment.id = 'ocid1.compartment.oc1..aaa'}",
		rule)
}

func TestPolicyStatements(t *testing.T) {
	statements := PolicyStatements("HeatWaveBucket-dG", "", "ocid1.compartment.oc1..aaa")

	require.Len(t, statements, 2)
	assert.Equal(t,
		"Allow dynamic-group HeatWaveBucket-dG to read buckets in compartment id ocid1.compartment.oc1..aaa",
		statements[0])
	assert.Equal(t,
		"Allow dynamic-group HeatWaveBucket-dG to read objects in compartment id ocid1.compartment.oc1..aaa",
		statements[1])
}

func TestPolicyStatementsWithIdentityDomain(t *testing.T) {
	statements := PolicyStatements("HeatWaveBucket-dG", "Default", "ocid1.compartment.oc1..aaa")

	require.Len(t, statements, 2)
	for _, stmt := range statements {
		assert.Contains(t, stmt, "dynamic-group 'Default'/HeatWaveBucket-dG")
	}
}
