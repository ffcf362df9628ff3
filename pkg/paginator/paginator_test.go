package paginator

import "testing"

func TestPaginateQuery(t *testing.T) {
	t.Run("adjust fills defaults", func(t *testing.T) {
		q := PaginateQuery{Page: 0, Limit: -3}
		q.Adjust()
		if q.Page != DefaultPage {
			t.Errorf("Page: got %d, want %d", q.Page, DefaultPage)
		}
		if q.Limit != DefaultLimit {
			t.Errorf("Limit: got %d, want %d", q.Limit, DefaultLimit)
		}
	})

	t.Run("adjust caps the limit", func(t *testing.T) {
		q := PaginateQuery{Page: 2, Limit: 10000}
		q.Adjust()
		if q.Limit != MaxLimit {
			t.Errorf("Limit: got %d, want %d", q.Limit, MaxLimit)
		}
	})

	t.Run("offset is zero-based", func(t *testing.T) {
		q := PaginateQuery{Page: 3, Limit: 15}
		if got := q.Offset(); got != 30 {
			t.Errorf("Offset: got %d, want 30", got)
		}
	})
}

func TestPaginatorToResponse(t *testing.T) {
	p := Paginator{Total: 31, Count: 1, PerPage: 15, CurrentPage: 3}
	resp := p.ToResponse()

	if resp.TotalPages != 3 {
		t.Errorf("TotalPages: got %d, want 3", resp.TotalPages)
	}
	if resp.HasNext {
		t.Error("last page should not have a next page")
	}
	if !resp.HasPrev {
		t.Error("page 3 should have a previous page")
	}

	t.Run("empty result has no pages", func(t *testing.T) {
		resp := Paginator{PerPage: 15}.ToResponse()
		if resp.TotalPages != 0 || resp.HasNext || resp.HasPrev {
			t.Errorf("empty paginator: got %+v, want zero pages", resp)
		}
	})
}
