package dto

import "math"

type Paginated[T any] struct {
	Items     []T `json:"items"`
	TotalPage int `json:"totalPage"`
	TotalData int `json:"totalData"`
}

func NewPaginated[T any](items []T, totalData, limit int) Paginated[T] {
	if items == nil {
		items = []T{}
	}

	totalPage := 1
	if totalData > 0 && limit > 0 {
		totalPage = int(math.Ceil(float64(totalData) / float64(limit)))
	}

	return Paginated[T]{
		Items:     items,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}
