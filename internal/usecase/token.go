package usecase

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// UnitTokenPrefix marks tokens minted by this registry. Verification only
// queries the database for tokens carrying it.
const UnitTokenPrefix = "UNIT-"

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const tokenSuffixLen = 6

// DeriveProductID maps a SKU to its stable product id: "PID-" plus the SKU
// uppercased with every character outside A-Z0-9 replaced by '-'. Same SKU
// always derives the same id, so re-registration updates instead of
// duplicating.
func DeriveProductID(sku string) string {
	upper := strings.ToUpper(sku)
	var b strings.Builder
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	return "PID-" + b.String()
}

// MintUnitToken generates the master QR token for a new product:
// UNIT-<productId>-<6 random uppercase alphanumerics>. Minted once per SKU and
// never regenerated afterwards.
func MintUnitToken(productID string) (string, error) {
	suffix, err := gonanoid.Generate(tokenAlphabet, tokenSuffixLen)
	if err != nil {
		return "", err
	}
	return UnitTokenPrefix + productID + "-" + suffix, nil
}
