package export

import (
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
)

// QueueExportJobs is the RabbitMQ queue export jobs travel on.
const QueueExportJobs = "monitor.export.jobs"

// JobMessage is the payload published per queued export.
type JobMessage struct {
	ExportID string `json:"export_id"`
}

// ReportFilters narrows the corpus an export covers.
type ReportFilters struct {
	SourceIDs []string   `json:"source_ids,omitempty"`
	DateFrom  *time.Time `json:"date_from,omitempty"`
	DateTo    *time.Time `json:"date_to,omitempty"`
}

type RequestInput struct {
	Title   string
	Filters ReportFilters
}

type RequestOutput struct {
	ExportID string
	Status   string
	Message  string
}

type ListInput struct {
	PagQuery paginator.PaginateQuery
}

type ListOutput struct {
	Exports   []model.Export
	Paginator paginator.Paginator
}

type DownloadOutput struct {
	DownloadURL string
	ExpiresAt   string
	FileName    string
	FileSize    int64
}
