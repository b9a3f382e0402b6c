package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependenciesTool_FromDocuments(t *testing.T) {
	input := dependenciesInput{
		Skeleton: &docInput{Content: testSkeleton},
		Services: []docInput{
			{Content: testUsersService},
			{Content: testBillingService},
		},
	}
	result, output, err := handleDependencies(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	// getAccount and payInvoice declare dependencies; roots sort alphabetically.
	require.Len(t, output.Operations, 2)
	assert.Equal(t, 2, output.OperationCount)

	assert.Equal(t, "getAccount", output.Operations[0].Operation)
	assert.Equal(t, []string{"getAccount.listAccounts"}, output.Operations[0].Chains)

	assert.Equal(t, "payInvoice", output.Operations[1].Operation)
	assert.Equal(t, []string{
		"payInvoice.getAccount",
		"payInvoice.getAccount.listAccounts",
	}, output.Operations[1].Chains)

	assert.Equal(t, 3, output.ChainCount)
}

func TestDependenciesTool_FromTable(t *testing.T) {
	input := dependenciesInput{
		Table: map[string][]string{
			"opA": {"opB"},
			"opB": {"opC"},
		},
		Operation: "opA",
	}
	result, output, err := handleDependencies(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Operations, 1)
	assert.Equal(t, "opA", output.Operations[0].Operation)
	assert.Equal(t, []string{"opA.opB", "opA.opB.opC"}, output.Operations[0].Chains)
}

func TestDependenciesTool_CycleTolerant(t *testing.T) {
	input := dependenciesInput{
		Table: map[string][]string{
			"opA": {"opB"},
			"opB": {"opA"},
		},
		Operation: "opA",
	}
	result, output, err := handleDependencies(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	require.Len(t, output.Operations, 1)
	assert.Equal(t, []string{"opA.opB"}, output.Operations[0].Chains)
}

func TestDependenciesTool_OperationWithoutDependencies(t *testing.T) {
	input := dependenciesInput{
		Table:     map[string][]string{"opA": {"opB"}},
		Operation: "opZ",
	}
	result, output, err := handleDependencies(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.Nil(t, result)

	// An explicitly requested root is reported even with no chains.
	require.Len(t, output.Operations, 1)
	assert.Equal(t, "opZ", output.Operations[0].Operation)
	assert.Empty(t, output.Operations[0].Chains)
	assert.Equal(t, 0, output.ChainCount)
}

func TestDependenciesTool_TableCombinedWithDocuments(t *testing.T) {
	input := dependenciesInput{
		Table:    map[string][]string{"opA": {"opB"}},
		Skeleton: &docInput{Content: testSkeleton},
	}
	result, _, err := handleDependencies(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestDependenciesTool_MissingInput(t *testing.T) {
	result, _, err := handleDependencies(context.Background(), &mcp.CallToolRequest{}, dependenciesInput{})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
