package ponto

type SortField string

const (
	SortByID   SortField = "id"
	SortByData SortField = "data"
	SortByTipo SortField = "tipo"
)

func ParseSortField(s string) (SortField, bool) {
	switch SortField(s) {
	case SortByID, SortByData, SortByTipo:
		return SortField(s), true
	}
	return "", false
}

// PageRequest usa página baseada em zero.
type PageRequest struct {
	Page int
	Size int
	Sort SortField
	Desc bool
}

func (r PageRequest) Offset() int {
	return r.Page * r.Size
}

type Page[T any] struct {
	Content       []T
	TotalElements int64
	Number        int
	Size          int
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
}

func (p Page[T]) First() bool {
	return p.Number == 0
}

func (p Page[T]) Last() bool {
	return p.Number+1 >= p.TotalPages()
}

// Map converte o conteúdo preservando os metadados da página.
func Map[T, R any](p Page[T], fn func(T) R) Page[R] {
	out := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		out = append(out, fn(item))
	}
	return Page[R]{
		Content:       out,
		TotalElements: p.TotalElements,
		Number:        p.Number,
		Size:          p.Size,
	}
}
