package m_orderitem

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert for an order line. The catalog
// service itself never writes order lines; this helper exists for test
// fixtures that need a dependent row.
func InsertMutation(orderItemID, productID, quantity int64, createdAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColOrderItemID, ColProductID, ColQuantity, ColCreatedAt},
		[]interface{}{orderItemID, productID, quantity, createdAt})
}
