package manufacturing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/product-management/internal/domain/manufacturing"
)

func TestParseOrderStatus(t *testing.T) {
	st, ok := manufacturing.ParseOrderStatus("")
	assert.True(t, ok)
	assert.Equal(t, manufacturing.OrderStatusPlanned, st)

	st, ok = manufacturing.ParseOrderStatus("IN_PROGRESS")
	assert.True(t, ok)
	assert.Equal(t, manufacturing.OrderStatusInProgress, st)

	_, ok = manufacturing.ParseOrderStatus("cancelled") // la variante de ventas no aplica aquí
	assert.False(t, ok)
}
