package parseva_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/parseva"
)

func TestTokenCatalog(t *testing.T) {
	names := []string{
		"OP_ADD", "OP_SUB", "OP_MUL", "OP_DIV", "NUM", "NEGATE",
		"FUNCTION", "CONSTANT", "OP_FACT", "LPAREN", "RPAREN", "COMMA",
	}
	types := parseva.TokenTypes()
	require.Len(t, types, len(names))
	seen := make(map[string]bool)
	for i, typ := range types {
		require.True(t, typ.Valid())
		name := typ.Name()
		require.Equal(t, names[i], name)
		require.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
		back, ok := parseva.LookupToken(name)
		require.True(t, ok, name)
		require.Equal(t, typ, back)
	}
}

func TestTokenCatalogMisses(t *testing.T) {
	for _, typ := range []parseva.TokenType{-1, 12, 99} {
		require.False(t, typ.Valid(), "%d", typ)
		require.Panics(t, func() { _ = typ.Name() }, "%d", typ)
	}
	for _, name := range []string{"ID", "", "op_add", "TokenAdd"} {
		_, ok := parseva.LookupToken(name)
		require.False(t, ok, name)
	}
}
