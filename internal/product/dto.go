package product

import (
	"time"

	"belleza/internal/domain"
)

type CreateProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	ImageURLs   []string `json:"imageUrls"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
}

// UpdateProductRequest carries partial updates; nil fields are left
// untouched. Status changes go through the dedicated status routes, and
// stock changes through the inventory ledger.
type UpdateProductRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	ImageURLs   *[]string `json:"imageUrls"`
	Category    *string   `json:"category"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ProductDTO struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURLs   []string  `json:"imageUrls"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDTO(p domain.Product) ProductDTO {
	imageURLs := p.ImageURLs
	if imageURLs == nil {
		imageURLs = []string{}
	}
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURLs:   imageURLs,
		Category:    p.Category,
		Stock:       p.Stock,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDTOs(products []domain.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, toDTO(p))
	}
	return dtos
}
