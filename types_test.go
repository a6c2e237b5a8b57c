package tonapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	b := Balance(1500000000)
	assert.Equal(t, int64(1500000000), b.Nano())
	assert.InDelta(t, 1.5, b.ToTON(), 1e-9)
	assert.Equal(t, "1500000000", b.String())

	neg := Balance(-250000000)
	assert.InDelta(t, -0.25, neg.ToTON(), 1e-9)
}

func TestAddress_String(t *testing.T) {
	a := Address("0:6f5bc679d13819a5cd5d094b05b3571cbfb87c43ab85e4a67948bf384fa1fe37")
	assert.Equal(t, "0:6f5bc679d13819a5cd5d094b05b3571cbfb87c43ab85e4a67948bf384fa1fe37", a.String())
}
