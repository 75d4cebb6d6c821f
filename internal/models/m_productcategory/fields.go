package m_productcategory

// Field constants for the product_categories association table. The
// primary key is (product_id, category_id); the association carries no
// attributes of its own.
const (
	TableName = "product_categories"

	ColProductID  = "product_id"
	ColCategoryID = "category_id"
)
