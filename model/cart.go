package model

import (
	"fmt"
	"time"
)

// CartLine is one selected cake/size pair. LineId is synthesized from the
// pair so the same selection always lands on the same line.
type CartLine struct {
	LineId         string `json:"lineId"`
	CategoryId     uint   `json:"categoryId"`
	CategoryName   string `json:"categoryName"`
	CakeId         uint   `json:"cakeId"`
	CakeName       string `json:"cakeName"`
	SizeId         uint   `json:"sizeId"`
	SizeName       string `json:"sizeName"`
	UnitPricePence Pence  `json:"unitPricePence"`
	Quantity       int    `json:"quantity"`
	ImageUrl       string `json:"imageUrl"`
}

// Cart is the session shopping cart. It lives in Redis as JSON keyed by the
// session id; all mutation happens in memory and the handler writes it back.
type Cart struct {
	SessionId string     `json:"sessionId"`
	Items     []CartLine `json:"items"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func CartLineId(cakeId, sizeId uint) string {
	return fmt.Sprintf("%d-%d", cakeId, sizeId)
}

// AddItem merges into an existing line for the same (cake, size) by
// incrementing its quantity, otherwise appends a new line. The unit price is
// snapshotted from the line passed in, not recomputed on merge.
func (c *Cart) AddItem(line CartLine, quantity int) {
	line.LineId = CartLineId(line.CakeId, line.SizeId)
	for i := range c.Items {
		if c.Items[i].LineId == line.LineId {
			c.Items[i].Quantity += quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
	line.Quantity = quantity
	c.Items = append(c.Items, line)
	c.UpdatedAt = time.Now()
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
// Unknown line ids are a no-op.
func (c *Cart) UpdateQuantity(lineId string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(lineId)
		return
	}
	for i := range c.Items {
		if c.Items[i].LineId == lineId {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
}

func (c *Cart) RemoveItem(lineId string) {
	for i := range c.Items {
		if c.Items[i].LineId == lineId {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now()
}

func (c *Cart) Total() Pence {
	var total Pence
	for _, line := range c.Items {
		total += line.UnitPricePence * Pence(line.Quantity)
	}
	return total
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.Items {
		count += line.Quantity
	}
	return count
}

type AddCartItemInput struct {
	CakeId   uint `json:"cakeId" validate:"required"`
	SizeId   uint `json:"sizeId" validate:"required"`
	Quantity int  `json:"quantity" validate:"required,min=1,max=50"`
}

type UpdateCartItemInput struct {
	Quantity int `json:"quantity" validate:"min=0,max=50"`
}
