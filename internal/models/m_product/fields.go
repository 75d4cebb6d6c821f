package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColName        = "name"
	ColDescription = "description"
	ColPrice       = "price"
	ColImageURL    = "image_url"
	ColDate        = "date"
	ColCreatedAt   = "created_at"
	ColUpdatedAt   = "updated_at"
)
