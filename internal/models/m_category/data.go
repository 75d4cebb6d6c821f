package m_category

import (
	"time"

	"cloud.google.com/go/spanner"
)

// InsertMutation builds a spanner.Insert for a category.
func InsertMutation(categoryID int64, name string, createdAt, updatedAt time.Time) *spanner.Mutation {
	return spanner.Insert(TableName,
		[]string{ColCategoryID, ColName, ColCreatedAt, ColUpdatedAt},
		[]interface{}{categoryID, name, createdAt, updatedAt})
}

// UpdateMutation builds a spanner.Update overwriting the category name.
func UpdateMutation(categoryID int64, name string, updatedAt time.Time) *spanner.Mutation {
	return spanner.Update(TableName,
		[]string{ColCategoryID, ColName, ColUpdatedAt},
		[]interface{}{categoryID, name, updatedAt})
}

// DeleteMutation builds a spanner.Delete for a single category row.
func DeleteMutation(categoryID int64) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{categoryID})
}
