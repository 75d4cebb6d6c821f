package m_orderitem

// Field constants for the order_items table. Order lines reference
// products; the foreign key is what blocks deleting a referenced product.
const (
	TableName = "order_items"

	ColOrderItemID = "order_item_id"
	ColProductID   = "product_id"
	ColQuantity    = "quantity"
	ColCreatedAt   = "created_at"
)
