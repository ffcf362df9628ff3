package http

import (
	"encoding/json"
	"time"

	"monitor-srv/internal/export"
	"monitor-srv/internal/model"
	"monitor-srv/pkg/paginator"
	"monitor-srv/pkg/response"
)

type requestExportReq struct {
	Title     string   `json:"title"`
	SourceIDs []string `json:"source_ids"`
	DateFrom  *int64   `json:"date_from"`
	DateTo    *int64   `json:"date_to"`
}

func (r requestExportReq) toInput() export.RequestInput {
	input := export.RequestInput{
		Title: r.Title,
		Filters: export.ReportFilters{
			SourceIDs: r.SourceIDs,
		},
	}
	if r.DateFrom != nil {
		t := time.Unix(*r.DateFrom, 0)
		input.Filters.DateFrom = &t
	}
	if r.DateTo != nil {
		t := time.Unix(*r.DateTo, 0)
		input.Filters.DateTo = &t
	}
	return input
}

type requestExportResp struct {
	ExportID string `json:"export_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

func newRequestExportResp(o export.RequestOutput) requestExportResp {
	return requestExportResp{
		ExportID: o.ExportID,
		Status:   o.Status,
		Message:  o.Message,
	}
}

type listExportsReq struct {
	Page  int
	Limit int64
}

func (r listExportsReq) toInput() export.ListInput {
	return export.ListInput{
		PagQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type exportItem struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Status             string             `json:"status"`
	ErrorMessage       string             `json:"error_message,omitempty"`
	Filters            json.RawMessage    `json:"filters,omitempty"`
	FileFormat         string             `json:"file_format,omitempty"`
	FileSizeBytes      int64              `json:"file_size_bytes,omitempty"`
	TotalPostsAnalyzed int                `json:"total_posts_analyzed,omitempty"`
	GenerationTimeMs   int64              `json:"generation_time_ms,omitempty"`
	CompletedAt        *response.DateTime `json:"completed_at,omitempty"`
	CreatedAt          response.DateTime  `json:"created_at"`
}

func newExportItem(exp model.Export) exportItem {
	item := exportItem{
		ID:                 exp.ID,
		Title:              exp.Title,
		Status:             exp.Status,
		ErrorMessage:       exp.ErrorMessage,
		Filters:            exp.Filters,
		FileFormat:         exp.FileFormat,
		FileSizeBytes:      exp.FileSizeBytes,
		TotalPostsAnalyzed: exp.TotalPostsAnalyzed,
		GenerationTimeMs:   exp.GenerationTimeMs,
		CreatedAt:          response.DateTime(exp.CreatedAt),
	}
	if exp.CompletedAt != nil {
		dt := response.DateTime(*exp.CompletedAt)
		item.CompletedAt = &dt
	}
	return item
}

type listExportsResp struct {
	Items     []exportItem                `json:"items"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newListExportsResp(o export.ListOutput) listExportsResp {
	items := make([]exportItem, 0, len(o.Exports))
	for _, exp := range o.Exports {
		items = append(items, newExportItem(exp))
	}
	return listExportsResp{
		Items:     items,
		Paginator: o.Paginator.ToResponse(),
	}
}

type downloadExportResp struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}

func newDownloadExportResp(o export.DownloadOutput) downloadExportResp {
	return downloadExportResp{
		DownloadURL: o.DownloadURL,
		ExpiresAt:   o.ExpiresAt,
		FileName:    o.FileName,
		FileSize:    o.FileSize,
	}
}
