package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(id, name string, price float64) CartLine {
	return CartLine{
		ProductID: id,
		Name:      name,
		UnitPrice: decimal.NewFromFloat(price),
	}
}

func TestAddDistinctProducts(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	cart.Add(snapshot("p1", "Batom Matte Rosê", 10))
	cart.Add(snapshot("p2", "Hidratante Facial", 10))
	cart.Add(snapshot("p3", "Brincos Dourados", 10))

	assert.Equal(t, 3, cart.TotalItems())
	require.Len(t, cart.Lines, 3)
	// ordem de inserção preservada
	assert.Equal(t, "p1", cart.Lines[0].ProductID)
	assert.Equal(t, "p2", cart.Lines[1].ProductID)
	assert.Equal(t, "p3", cart.Lines[2].ProductID)
}

func TestAddSameProductMergesLine(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	cart.Add(snapshot("p1", "Batom Matte Rosê", 10))
	cart.Add(snapshot("p1", "Batom Matte Rosê", 10))

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems())
}

func TestSetQuantity(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.Add(snapshot("p1", "Batom Matte Rosê", 10))

	// fixa quantidade exata, não incremental
	cart.SetQuantity("p1", 3)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 3, cart.Lines[0].Quantity)

	// zero remove a linha
	cart.SetQuantity("p1", 0)
	assert.Empty(t, cart.Lines)

	// negativo também remove
	cart.Add(snapshot("p2", "Paleta de Sombras", 10))
	cart.SetQuantity("p2", -1)
	assert.Empty(t, cart.Lines)

	// produto ausente é no-op
	cart.SetQuantity("p9", 5)
	assert.Empty(t, cart.Lines)
}

func TestRemoveMissingProductIsNoop(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.Add(snapshot("p1", "Batom Matte Rosê", 10))
	cart.Add(snapshot("p2", "Paleta de Sombras", 10))

	cart.Remove("p9")

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.TotalItems())
}

func TestClear(t *testing.T) {
	cart := &Cart{UserID: "u1"}
	cart.Add(snapshot("p1", "Batom Matte Rosê", 10))
	cart.Add(snapshot("p2", "Paleta de Sombras", 10))
	cart.SetQuantity("p2", 4)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestTotals(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	// A uma vez, B duas vezes, tudo a R$ 10
	cart.Add(snapshot("pa", "Produto A", 10))
	cart.Add(snapshot("pb", "Produto B", 10))
	cart.Add(snapshot("pb", "Produto B", 10))

	assert.Equal(t, 3, cart.TotalItems())
	assert.True(t, decimal.NewFromInt(30).Equal(cart.TotalPrice()))
}

func TestTotalsEmptyCart(t *testing.T) {
	cart := &Cart{UserID: "u1"}

	assert.Equal(t, 0, cart.TotalItems())
	assert.True(t, cart.TotalPrice().IsZero())
}

func TestSnapshotPriceSurvivesCatalogChange(t *testing.T) {
	product := &Product{ProductID: "p1", Name: "Batom Matte Rosê", Price: decimal.NewFromInt(10)}
	cart := &Cart{UserID: "u1"}
	cart.Add(ProductSnapshot(product))

	// edição posterior do catálogo não muda o snapshot da linha
	product.Price = decimal.NewFromInt(25)
	product.Name = "Batom Matte Vermelho"

	assert.True(t, decimal.NewFromInt(10).Equal(cart.TotalPrice()))
	assert.Equal(t, "Batom Matte Rosê", cart.Lines[0].Name)
}
