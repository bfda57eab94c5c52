package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	banner   string
	lastLine string
	lastRaw  bool
	response string
	err      error
}

func (f *fakeEngine) Request(_ context.Context, line string, raw bool) (string, error) {
	f.lastLine = line
	f.lastRaw = raw

	if f.err != nil {
		return "", f.err
	}

	return f.response, nil
}

func (f *fakeEngine) Banner() string {
	return f.banner
}

func callRequest(t *testing.T, args map[string]any) *mcp.CallToolRequest {
	t.Helper()

	data, err := json.Marshal(args)
	require.NoError(t, err)

	return &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: data},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestNew_RequiresEngine(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)

	_, err = New(&Config{Name: "fricas"})
	assert.Error(t, err)
}

func TestHandleEval(t *testing.T) {
	eng := &fakeEngine{response: "4"}
	s, err := New(&Config{Name: "fricas", Version: "test", Engine: eng})
	require.NoError(t, err)

	result, err := s.handleEval(context.Background(), callRequest(t, map[string]any{
		"expression": "2 + 2",
	}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Equal(t, "4", resultText(t, result))
	assert.Equal(t, "2 + 2", eng.lastLine)
	assert.False(t, eng.lastRaw)
}

func TestHandleEval_Raw(t *testing.T) {
	eng := &fakeEngine{response: "2 + 2\n   4\n"}
	s, err := New(&Config{Engine: eng})
	require.NoError(t, err)

	result, err := s.handleEval(context.Background(), callRequest(t, map[string]any{
		"expression": "2 + 2",
		"raw":        true,
	}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.True(t, eng.lastRaw)
}

func TestHandleEval_MissingExpression(t *testing.T) {
	s, err := New(&Config{Engine: &fakeEngine{}})
	require.NoError(t, err)

	result, err := s.handleEval(context.Background(), callRequest(t, map[string]any{}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "expression is required")
}

func TestHandleEval_EngineError(t *testing.T) {
	eng := &fakeEngine{err: errors.New("engine exploded")}
	s, err := New(&Config{Engine: eng})
	require.NoError(t, err)

	result, err := s.handleEval(context.Background(), callRequest(t, map[string]any{
		"expression": "1",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "engine exploded")
}

func TestHandleVersion(t *testing.T) {
	eng := &fakeEngine{banner: "FriCAS Computer Algebra System\nVersion: FriCAS 1.3.12"}
	s, err := New(&Config{Engine: eng})
	require.NoError(t, err)

	result, err := s.handleVersion(context.Background(), nil)
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "FriCAS 1.3.12")
}

func TestHandleVersion_NoBanner(t *testing.T) {
	s, err := New(&Config{Engine: &fakeEngine{}})
	require.NoError(t, err)

	result, err := s.handleVersion(context.Background(), nil)
	require.NoError(t, err)

	assert.True(t, result.IsError)
}

func TestHandleWhat(t *testing.T) {
	eng := &fakeEngine{response: "Operations whose names satisfy the pattern sin:"}
	s, err := New(&Config{Engine: eng})
	require.NoError(t, err)

	result, err := s.handleWhat(context.Background(), callRequest(t, map[string]any{
		"category": "operations",
		"pattern":  "sin",
	}))
	require.NoError(t, err)

	assert.False(t, result.IsError)
	assert.Equal(t, ")what operations sin", eng.lastLine)
}

func TestHandleWhat_NoPattern(t *testing.T) {
	eng := &fakeEngine{}
	s, err := New(&Config{Engine: eng})
	require.NoError(t, err)

	_, err = s.handleWhat(context.Background(), callRequest(t, map[string]any{
		"category": "domains",
	}))
	require.NoError(t, err)

	assert.Equal(t, ")what domains", eng.lastLine)
}

func TestHandleWhat_UnknownCategory(t *testing.T) {
	s, err := New(&Config{Engine: &fakeEngine{}})
	require.NoError(t, err)

	result, err := s.handleWhat(context.Background(), callRequest(t, map[string]any{
		"category": "spells",
	}))
	require.NoError(t, err)

	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "spells")
}

func TestSimpleSchema(t *testing.T) {
	schema := SimpleSchema(map[string]string{
		"expression": "string",
		"raw":        "bool",
		"count":      "int",
		"names":      "[]string",
	}, "expression")

	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"expression"}, schema.Required)
	assert.Equal(t, "string", schema.Properties["expression"].Type)
	assert.Equal(t, "boolean", schema.Properties["raw"].Type)
	assert.Equal(t, "integer", schema.Properties["count"].Type)
	assert.Equal(t, "array", schema.Properties["names"].Type)
	assert.Equal(t, "string", schema.Properties["names"].Items.Type)
}

func TestParseArguments_Empty(t *testing.T) {
	args, err := ParseArguments(nil)
	require.NoError(t, err)
	assert.Empty(t, args)

	args, err = ParseArguments(&mcp.CallToolRequest{Params: &mcp.CallToolParamsRaw{}})
	require.NoError(t, err)
	assert.Empty(t, args)
}
