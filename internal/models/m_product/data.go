package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/spanner"
)

// BuildInsertMap prepares the canonical column values for an insert.
// The price is stored as NUMERIC; the Spanner client encodes *big.Rat.
func BuildInsertMap(productID int64, name string, description *string, price *big.Rat,
	imageURL *string, date time.Time, createdAt, updatedAt time.Time) map[string]interface{} {

	m := map[string]interface{}{
		ColProductID: productID,
		ColName:      name,
		ColPrice:     price,
		ColDate:      date,
		ColCreatedAt: createdAt,
		ColUpdatedAt: updatedAt,
	}

	if description != nil {
		m[ColDescription] = *description
	} else {
		m[ColDescription] = nil
	}

	if imageURL != nil {
		m[ColImageURL] = *imageURL
	} else {
		m[ColImageURL] = nil
	}

	return m
}

// InsertMutation builds a spanner.Insert for a product from a values map.
// Expected keys are the column names declared in fields.go.
func InsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Insert(TableName, cols, vals)
}

// UpdateMutation builds a spanner.Update for a product. The values map must
// not include the product_id key; the primary key is passed separately.
func UpdateMutation(productID int64, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColProductID}
	vals := []interface{}{productID}

	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}

	return spanner.Update(TableName, cols, vals)
}

// DeleteMutation builds a spanner.Delete for a single product row.
func DeleteMutation(productID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
