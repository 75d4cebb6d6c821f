package m_productcategory

import "cloud.google.com/go/spanner"

// InsertMutation builds a spanner.Insert for one association row.
func InsertMutation(productID, categoryID int64) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColProductID, ColCategoryID},
		[]interface{}{productID, categoryID})
}

// DeleteByProductMutation builds a spanner.Delete removing every
// association row of a product via a prefix key range. Deleting an empty
// range is a no-op, so the "replace the full set" pattern needs no prior
// read.
func DeleteByProductMutation(productID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.KeyRange{
		Start: spanner.Key{productID},
		End:   spanner.Key{productID},
		Kind:  spanner.ClosedClosed,
	})
}
