package schedule

import "testing"

func TestPageParams_Normalize(t *testing.T) {
	p := PageParams{}.Normalize()
	if p.Page != DefaultPage || p.Limit != DefaultLimit {
		t.Fatalf("Normalize zero = %+v, want defaults", p)
	}

	p = PageParams{Page: -3, Limit: -1}.Normalize()
	if p.Page != DefaultPage || p.Limit != DefaultLimit {
		t.Fatalf("Normalize negative = %+v, want defaults", p)
	}

	p = PageParams{Page: 2, Limit: 500}.Normalize()
	if p.Limit != MaxLimit {
		t.Fatalf("limit = %d, want clamped to %d", p.Limit, MaxLimit)
	}
	if p.Page != 2 {
		t.Fatalf("page = %d, want 2", p.Page)
	}
}

func TestPageParams_Offset(t *testing.T) {
	p := PageParams{Page: 3, Limit: 10}
	if p.Offset() != 20 {
		t.Fatalf("Offset = %d, want 20", p.Offset())
	}
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(42, PageParams{Page: 1, Limit: 10})
	if meta.TotalPages != 5 {
		t.Fatalf("TotalPages = %d, want 5", meta.TotalPages)
	}
	if meta.HasPrevious {
		t.Fatalf("first page must not have previous")
	}
	if !meta.HasNext {
		t.Fatalf("first page of 5 must have next")
	}

	meta = NewPageMeta(42, PageParams{Page: 5, Limit: 10})
	if !meta.HasPrevious || meta.HasNext {
		t.Fatalf("last page meta = %+v", meta)
	}

	meta = NewPageMeta(0, PageParams{Page: 1, Limit: 10})
	if meta.TotalPages != 0 || meta.HasNext || meta.HasPrevious {
		t.Fatalf("empty meta = %+v", meta)
	}

	meta = NewPageMeta(40, PageParams{Page: 2, Limit: 10})
	if meta.TotalPages != 4 {
		t.Fatalf("TotalPages = %d, want 4", meta.TotalPages)
	}
}
