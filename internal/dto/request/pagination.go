package request

import "bioskop-ticket/pkg/utils"

const maxPerPage = 100

type PaginatedRequest struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

// WithDefaultPerPage fills PerPage when the client did not send one.
func (p *PaginatedRequest) WithDefaultPerPage(perPage int) {
	if p.PerPage < 1 {
		p.PerPage = perPage
	}
	if p.Page < 1 {
		p.Page = 1
	}
}

func (p PaginatedRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Limit())
}

func (p PaginatedRequest) Limit() int {
	if p.PerPage < 1 {
		return 10
	}
	if p.PerPage > maxPerPage {
		return maxPerPage
	}
	return p.PerPage
}
