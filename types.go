package tonapi

import "strconv"

// Address is a TON account address as returned by the API, normally in
// its raw workchain:hex form.
type Address string

func (a Address) String() string {
	return string(a)
}

// Balance is an amount of toncoins expressed in nanotons.
type Balance int64

// Nano returns the amount in nanotons.
func (b Balance) Nano() int64 {
	return int64(b)
}

// ToTON returns the amount in whole toncoins.
func (b Balance) ToTON() float64 {
	return float64(b) / 1e9
}

func (b Balance) String() string {
	return strconv.FormatInt(int64(b), 10)
}
