package dto

import "github.com/BruksfildServices01/ponto-inteligente/internal/domain/ponto"

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

func NewPageResponse[T any](p ponto.Page[T]) PageResponse[T] {
	content := p.Content
	if content == nil {
		content = []T{}
	}
	return PageResponse[T]{
		Content:       content,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
		Number:        p.Number,
		Size:          p.Size,
		First:         p.First(),
		Last:          p.Last(),
	}
}
