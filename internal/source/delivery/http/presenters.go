package http

import (
	"monitor-srv/internal/model"
	"monitor-srv/internal/source"
	"monitor-srv/pkg/response"
)

type createSourceReq struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	AccessToken string `json:"access_token"`
}

func (r createSourceReq) toInput() source.CreateInput {
	return source.CreateInput{
		Name:        r.Name,
		Type:        r.Type,
		AccessToken: r.AccessToken,
	}
}

type updateSourceReq struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

func (r updateSourceReq) toInput() source.UpdateInput {
	return source.UpdateInput{
		ID:          r.ID,
		Name:        r.Name,
		AccessToken: r.AccessToken,
	}
}

type sourceItem struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Type      string            `json:"type"`
	Active    bool              `json:"active"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newSourceItem(src model.Source) sourceItem {
	return sourceItem{
		ID:        src.ID,
		Name:      src.Name,
		Type:      src.Type,
		Active:    src.Active,
		CreatedAt: response.DateTime(src.CreatedAt),
		UpdatedAt: response.DateTime(src.UpdatedAt),
	}
}

type listSourcesResp struct {
	Items []sourceItem `json:"items"`
}

func newListSourcesResp(sources []model.Source) listSourcesResp {
	items := make([]sourceItem, 0, len(sources))
	for _, src := range sources {
		items = append(items, newSourceItem(src))
	}
	return listSourcesResp{Items: items}
}

// internalSourceItem carries the decrypted token for the collector.
type internalSourceItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	AccessToken string `json:"access_token"`
}

type listInternalSourcesResp struct {
	Items []internalSourceItem `json:"items"`
}

func newListInternalSourcesResp(sources []model.Source) listInternalSourcesResp {
	items := make([]internalSourceItem, 0, len(sources))
	for _, src := range sources {
		items = append(items, internalSourceItem{
			ID:          src.ID,
			Name:        src.Name,
			Type:        src.Type,
			AccessToken: src.AccessToken,
		})
	}
	return listInternalSourcesResp{Items: items}
}
