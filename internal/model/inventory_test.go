package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatus(t *testing.T) {
	cases := []struct {
		name      string
		quantity  int
		threshold int
		want      string
	}{
		{"zero quantity is out of stock", 0, 10, StatusOutOfStock},
		{"below threshold is low", 3, 10, StatusLowStock},
		{"equal to threshold is low, not in stock", 10, 10, StatusLowStock},
		{"just above threshold is in stock", 11, 10, StatusInStock},
		{"well stocked", 500, 10, StatusInStock},
		{"zero wins over zero threshold", 0, 0, StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StockStatus(tc.quantity, tc.threshold))
		})
	}
}
