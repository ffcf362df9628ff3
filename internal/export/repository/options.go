package repository

import "time"

type CreateExportOptions struct {
	ID         string
	UserID     string
	Title      string
	ParamsHash string
	Filters    []byte // JSON
}

type FindByParamsHashOptions struct {
	ParamsHash string
	Status     string
}

type UpdateCompletedOptions struct {
	ExportID           string
	ObjectName         string
	FileSizeBytes      int64
	FileFormat         string
	TotalPostsAnalyzed int
	GenerationTimeMs   int64
	CompletedAt        time.Time
}

type UpdateFailedOptions struct {
	ExportID     string
	ErrorMessage string
}

type ListExportsOptions struct {
	UserID string
	Limit  int64
	Offset int64
}
