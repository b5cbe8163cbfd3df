package model

import (
	"github.com/shopspring/decimal"
)

// CartLine guarda o snapshot do produto no momento em que entrou no
// carrinho. Preço, nome e imagem não mudam se o catálogo for editado depois.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Seq       int64           `json:"seq"` // ordem de inserção
}

// Cart é o carrinho da sessão do usuário.
// Invariantes: no máximo uma linha por produto, quantidade >= 1 enquanto a
// linha existe; quantidade <= 0 remove a linha inteira.
type Cart struct {
	UserID string     `json:"user_id"`
	Lines  []CartLine `json:"lines"`
}

// Add incrementa em 1 a linha do produto, ou anexa uma linha nova com o
// snapshot recebido. Nunca falha.
func (c *Cart) Add(snapshot CartLine) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == snapshot.ProductID {
			c.Lines[i].Quantity++
			return
		}
	}
	snapshot.Quantity = 1
	snapshot.Seq = c.nextSeq()
	c.Lines = append(c.Lines, snapshot)
}

// SetQuantity fixa a quantidade exata da linha. Quantidade <= 0 remove a
// linha; produto ausente é no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// Remove tira a linha do produto. Produto ausente é no-op.
func (c *Cart) Remove(productID string) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear esvazia o carrinho.
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems soma as quantidades de todas as linhas.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice soma preço unitário x quantidade de cada linha.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

func (c *Cart) nextSeq() int64 {
	var max int64
	for _, line := range c.Lines {
		if line.Seq > max {
			max = line.Seq
		}
	}
	return max + 1
}

// ProductSnapshot monta a linha de carrinho a partir do produto do catálogo.
func ProductSnapshot(p *Product) CartLine {
	return CartLine{
		ProductID: p.ProductID,
		Name:      p.Name,
		ImageURL:  p.ImageURL,
		UnitPrice: p.Price,
	}
}
