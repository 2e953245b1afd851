package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/application/dto"
	"github.com/jhoicas/product-management/internal/domain"
	"github.com/jhoicas/product-management/internal/domain/entity"
)

func TestParseDateRange_ToEsInclusivo(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	from, to, err := dto.ParseDateRange("2026-10-01", "2026-10-01", tokyo)
	require.NoError(t, err)
	require.NotNil(t, from)
	require.NotNil(t, to)

	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, tokyo), *from)
	assert.Equal(t, time.Date(2026, 10, 2, 0, 0, 0, 0, tokyo), *to)
}

func TestParseDateRange_Errores(t *testing.T) {
	_, _, err := dto.ParseDateRange("01/10/2026", "", time.UTC)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = dto.ParseDateRange("2026-10-05", "2026-10-01", time.UTC)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "from")
}

func TestSaleFilterRequest_ToFilter(t *testing.T) {
	f, err := dto.SaleFilterRequest{Status: "Completed", CustomerID: " c1 "}.ToFilter(time.UTC)
	require.NoError(t, err)
	assert.Equal(t, entity.SaleStatusCompleted, f.Status)
	assert.Equal(t, "c1", f.CustomerID)
	assert.Nil(t, f.From)

	_, err = dto.SaleFilterRequest{Status: "refunded"}.ToFilter(time.UTC)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "estado desconocido", verr.Fields["status"])
}
