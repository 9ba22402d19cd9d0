package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardiansyahrp/orderflow/internal/domain/entity"
)

func TestItemsCodec_RoundTrip(t *testing.T) {
	items := []entity.OrderItem{{SKU: "WIDGET", Qty: 2}, {SKU: "GADGET", Qty: 1}}

	b, err := encodeItems(items)
	require.NoError(t, err)

	got, err := decodeItems(b)
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestDecodeItems_MalformedDocument(t *testing.T) {
	_, err := decodeItems([]byte(`{"sku":`))
	assert.Error(t, err)
}

func TestDecodeItems_EmptyList(t *testing.T) {
	_, err := decodeItems([]byte(`[]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty item list")
}
