package units

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxUint256 is the largest value representable by a uint256 (2^256 - 1).
var MaxUint256 *big.Int

func init() {
	MaxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
}

const ethDecimals = 18

// ParseETH converts a wei value into a decimal ETH amount.
func ParseETH(value *big.Int) decimal.Decimal {
	return ParseUnits(value, ethDecimals)
}

// ParseUnits converts a raw token value into a decimal amount with the given
// number of decimals.
func ParseUnits(value *big.Int, decimals uint8) decimal.Decimal {
	mul := decimal.New(1, int32(decimals))
	num := decimal.NewFromBigInt(value, 0)
	return num.DivRound(mul, int32(decimals)).Truncate(int32(decimals))
}

// FormatETH converts a decimal ETH amount into wei. Fractional wei is
// truncated.
func FormatETH(amount decimal.Decimal) *big.Int {
	return FormatUnits(amount, ethDecimals)
}

// FormatUnits converts a decimal amount into a raw token value with the given
// number of decimals.
func FormatUnits(amount decimal.Decimal, decimals uint8) *big.Int {
	mul := decimal.New(1, int32(decimals))
	return amount.Mul(mul).Truncate(0).BigInt()
}
