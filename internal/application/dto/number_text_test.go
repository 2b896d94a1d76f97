package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-editor/internal/application/dto"
)

func TestNumberText_AceptaStringYNumero(t *testing.T) {
	var in dto.RowInput
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":2,"rate":"1,234.5","cgst_percent":9.5,"sgst_percent":null}`), &in))

	assert.Equal(t, "2", in.Quantity.String())
	assert.Equal(t, "1,234.5", in.Rate.String())
	assert.Equal(t, "9.5", in.CGSTPercent.String())
	assert.Equal(t, "", in.SGSTPercent.String())
}

func TestNumberText_OtrosLiteralesNoFallan(t *testing.T) {
	var in dto.RowInput
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":true,"rate":{"x":1}}`), &in))

	assert.Equal(t, "true", in.Quantity.String())
	assert.Equal(t, `{"x":1}`, in.Rate.String())
}

func TestNumberText_PatchOpcional(t *testing.T) {
	var in dto.UpdateRowRequest
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":3}`), &in))

	require.NotNil(t, in.Quantity.Ptr())
	assert.Equal(t, "3", *in.Quantity.Ptr())
	assert.Nil(t, in.Rate.Ptr())
}
