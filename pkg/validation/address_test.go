package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	valid := "0x" + strings.Repeat("ab", 22)

	require.NoError(t, ValidateAddress(valid))
	require.NoError(t, ValidateAddress(strings.TrimPrefix(valid, "0x")))

	require.Error(t, ValidateAddress(""))
	require.Error(t, ValidateAddress("0x1234"))
	require.Error(t, ValidateAddress("0x"+strings.Repeat("ab", 20)))
	require.Error(t, ValidateAddress("0x"+strings.Repeat("zz", 22)))
	require.Error(t, ValidateAddress("0x"+strings.Repeat("ab", 23)))
}

func TestValidateSymbol(t *testing.T) {
	require.NoError(t, ValidateSymbol("XCB"))
	require.NoError(t, ValidateSymbol("TST1"))
	require.NoError(t, ValidateSymbol("ABCDEFGHIJK"))

	require.Error(t, ValidateSymbol(""))
	require.Error(t, ValidateSymbol("ABCDEFGHIJKL"))
	require.Error(t, ValidateSymbol("tst"))
	require.Error(t, ValidateSymbol("T-ST"))
	require.Error(t, ValidateSymbol("T ST"))
}

func TestNormalizeAddress(t *testing.T) {
	addr := "0x" + strings.Repeat("AB", 22)
	require.Equal(t, strings.Repeat("ab", 22), NormalizeAddress(addr))
	require.Equal(t, strings.Repeat("ab", 22), NormalizeAddress(strings.Repeat("ab", 22)))
}
