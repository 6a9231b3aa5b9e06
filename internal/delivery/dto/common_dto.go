package dto

type DeleteResult struct {
	DeletedCount int64 `json:"deleted_count"`
}
