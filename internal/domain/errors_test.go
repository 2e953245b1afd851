package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/product-management/internal/domain"
)

func TestValidationError_EsInvalidInput(t *testing.T) {
	err := fmt.Errorf("crear orden: %w", domain.NewValidationError("quantity", "debe ser mayor que 0"))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "debe ser mayor que 0", verr.Fields["quantity"])
}

func TestValidationError_OrNilYOrdenDeMensaje(t *testing.T) {
	var empty domain.ValidationError
	assert.NoError(t, empty.OrNil())

	v := &domain.ValidationError{}
	v.Add("process_id", "no existe").Add("product_id", "no existe").Add("process_id", "otro")

	err := v.OrNil()
	require.Error(t, err)
	assert.Equal(t, "entrada inválida: process_id: no existe; product_id: no existe", err.Error())
}
