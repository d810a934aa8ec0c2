package units_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketvault/walletcore/internal/units"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.024981836", units.Format(big.NewInt(24981836), 9))
	assert.Equal(t, "1.000000000", units.Format(big.NewInt(1_000_000_000), 9))
	assert.Equal(t, "0.000000000000000001", units.Format(big.NewInt(1), 18))
	assert.Equal(t, "0.000000000", units.Format(big.NewInt(0), 9))
	assert.Equal(t, "5", units.Format(big.NewInt(5), 0))
}

func TestParse(t *testing.T) {
	n, err := units.Parse("0.024981836", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(24981836), n.Int64())

	n, err = units.Parse("1.5", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1_500_000_000), n.Int64())

	// Excess fractional digits are truncated, not rounded.
	n, err = units.Parse("0.0000000019", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n.Int64())

	n, err = units.Parse(".5", 9)
	require.NoError(t, err)
	assert.Equal(t, int64(500_000_000), n.Int64())
}

func TestParseRejectsBadInput(t *testing.T) {
	for _, input := range []string{"", "-1", "1.2.3", "abc", "1,5"} {
		_, err := units.Parse(input, 9)
		assert.Error(t, err, "input %q", input)
	}
}

func TestLamportsRoundTrip(t *testing.T) {
	lamports, err := units.SOLToLamports("1.5")
	require.NoError(t, err)
	assert.Equal(t, uint64(1_500_000_000), lamports)
	assert.Equal(t, "1.500000000", units.LamportsToSOL(lamports))
}

func TestFormatTokenAmount(t *testing.T) {
	out, err := units.FormatTokenAmount("1500000", 6)
	require.NoError(t, err)
	assert.Equal(t, "1.500000", out)

	_, err = units.FormatTokenAmount("not-a-number", 6)
	assert.Error(t, err)
}
