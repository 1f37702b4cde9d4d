package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQtyItem(t *testing.T) {
	productID, qty, err := parseQtyItem("p1:5")
	require.NoError(t, err)
	assert.Equal(t, "p1", productID)
	assert.Equal(t, 5, qty)

	for _, raw := range []string{"p1", "p1:0", "p1:-2", "p1:abc", ":5", "p1:5:2"} {
		_, _, err := parseQtyItem(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestParsePricedItem(t *testing.T) {
	productID, qty, price, err := parsePricedItem("p1:3:2.50")
	require.NoError(t, err)
	assert.Equal(t, "p1", productID)
	assert.Equal(t, 3, qty)
	assert.InDelta(t, 2.5, price, 1e-9)

	for _, raw := range []string{"p1:3", "p1:0:2", "p1:3:x", ":3:2", "p1:3:2:9"} {
		_, _, _, err := parsePricedItem(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestSavedWord(t *testing.T) {
	assert.Equal(t, "added", savedWord(true))
	assert.Equal(t, "updated", savedWord(false))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "12.50", money(12.5))
	assert.Equal(t, "0.00", money(0))
}
