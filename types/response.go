package types

// ErrorResponse is the error payload returned by the error middleware.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	Code    string `json:"code,omitempty"`
}

// ListResponse wraps a collection result with its size.
type ListResponse struct {
	Data  interface{} `json:"data"`
	Count int         `json:"count"`
}

// BulkInsertResult reports the outcome of a bulk insert.
type BulkInsertResult struct {
	InsertedIDs []string `json:"inserted_ids"`
}

// BulkUpdateResult reports the outcome of an update-many operation.
type BulkUpdateResult struct {
	MatchedCount  int64 `json:"matched_count"`
	ModifiedCount int64 `json:"modified_count"`
}

// BulkDeleteResult reports the outcome of a delete-many operation.
type BulkDeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
