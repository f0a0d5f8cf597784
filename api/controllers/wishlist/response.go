package wishlist

import (
	wishlistsvc "github.com/velora-commerce/velora-backend/internal/wishlist"
)

// ItemList keeps the items key stable even for an empty wishlist.
type ItemList struct {
	Items []wishlistsvc.WishlistItemDetailDTO `json:"items"`
	Count int                                 `json:"count"`
}

func newItemList(items []wishlistsvc.WishlistItemDetailDTO) ItemList {
	if items == nil {
		items = []wishlistsvc.WishlistItemDetailDTO{}
	}
	return ItemList{Items: items, Count: len(items)}
}
