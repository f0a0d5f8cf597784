package cart

import (
	cartsvc "github.com/velora-commerce/velora-backend/internal/cart"
)

// ItemList keeps the items key stable even for an empty cart.
type ItemList struct {
	Items []cartsvc.CartItemDetailDTO `json:"items"`
	Count int                         `json:"count"`
}

func newItemList(items []cartsvc.CartItemDetailDTO) ItemList {
	if items == nil {
		items = []cartsvc.CartItemDetailDTO{}
	}
	return ItemList{Items: items, Count: len(items)}
}
