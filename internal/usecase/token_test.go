package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveProductID(t *testing.T) {
	cases := []struct {
		sku  string
		want string
	}{
		{"PW-200-BLU", "PID-PW-200-BLU"},
		{"pw-200-blu", "PID-PW-200-BLU"},
		{"SS X900/BLK", "PID-SS-X900-BLK"},
		{"dp_vc.30", "PID-DP-VC-30"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, DeriveProductID(tc.sku), "sku %q", tc.sku)
	}
}

func TestMintUnitToken(t *testing.T) {
	token, err := MintUnitToken("PID-PW-200-BLU")
	require.NoError(t, err)
	assert.Regexp(t, `^UNIT-PID-PW-200-BLU-[A-Z0-9]{6}$`, token)

	// Tokens are random per mint
	other, err := MintUnitToken("PID-PW-200-BLU")
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}
