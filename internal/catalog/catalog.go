// Package catalog loads the product catalog once at startup from a JSON data
// file. Pricing and imagery are configuration, not code: image overrides are
// matched by (brand, category) substring, then by category default, then the
// placeholder.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type sourceRow struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Flavors  string `json:"flavors"`
}

type imageRule struct {
	Brand    string `json:"brand"`
	Category string `json:"category"`
	Image    string `json:"image"`
}

type catalogFile struct {
	Products       []sourceRow        `json:"products"`
	Images         []imageRule        `json:"images"`
	CategoryImages map[string]string  `json:"categoryImages"`
	Placeholder    string             `json:"placeholder"`
	DefaultPrice   float64            `json:"defaultPrice"`
	CategoryPrices map[string]float64 `json:"categoryPrices"`
}

// Product is a renderable catalog entry. JSON field names follow the public
// API contract.
type Product struct {
	ID             string   `json:"id"`
	Name           string   `json:"nome"`
	Brand          string   `json:"marca"`
	Category       string   `json:"categoria"`
	FilterCategory string   `json:"categoriaFiltro"`
	Flavors        []string `json:"sabores"`
	Price          float64  `json:"preco"`
	Image          string   `json:"imagem"`
	Description    string   `json:"descricao"`
	Stock          int      `json:"estoque"`
}

type Catalog struct {
	products []Product
}

func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	products := make([]Product, 0, len(file.Products))
	for i, row := range file.Products {
		brand := strings.TrimSpace(row.Brand)
		category := strings.TrimSpace(row.Category)
		if brand == "" || category == "" {
			continue
		}

		products = append(products, Product{
			ID:             fmt.Sprintf("produto_%d", i+1),
			Name:           fmt.Sprintf("%s - %s", brand, category),
			Brand:          brand,
			Category:       category,
			FilterCategory: filterCategory(category),
			Flavors:        parseFlavors(row.Flavors),
			Price:          priceFor(file, category),
			Image:          imageFor(file, brand, category),
			Description:    fmt.Sprintf("Suplemento %s da marca %s", category, brand),
			Stock:          10,
		})
	}

	return &Catalog{products: products}, nil
}

// Empty returns a catalog with no products, used when the data file is
// missing so the rest of the service still starts.
func Empty() *Catalog {
	return &Catalog{}
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products returns entries matching the optional filter category and search
// term.
func (c *Catalog) Products(category, search string) []Product {
	category = strings.TrimSpace(category)
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		if category != "" && p.FilterCategory != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func imageFor(file catalogFile, brand, category string) string {
	brandLower := strings.ToLower(brand)
	categoryLower := strings.ToLower(category)

	for _, rule := range file.Images {
		if strings.Contains(brandLower, strings.ToLower(rule.Brand)) &&
			strings.Contains(categoryLower, strings.ToLower(rule.Category)) {
			return rule.Image
		}
	}

	for key, image := range file.CategoryImages {
		if strings.Contains(categoryLower, strings.ToLower(key)) {
			return image
		}
	}

	return file.Placeholder
}

func priceFor(file catalogFile, category string) float64 {
	categoryLower := strings.ToLower(category)
	for key, price := range file.CategoryPrices {
		if strings.Contains(categoryLower, strings.ToLower(key)) {
			return price
		}
	}
	return file.DefaultPrice
}

func parseFlavors(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" || text == "N/A" || strings.EqualFold(text, "NÃO TEM SABORES") {
		return nil
	}

	parts := strings.Split(text, ",")
	flavors := make([]string, 0, len(parts))
	for _, part := range parts {
		if flavor := strings.TrimSpace(part); flavor != "" {
			flavors = append(flavors, flavor)
		}
	}
	if len(flavors) == 0 {
		return nil
	}
	return flavors
}

// filterCategory maps the free-form source category onto the fixed set the
// product listing filters on.
func filterCategory(category string) string {
	lower := strings.ToLower(category)

	switch {
	case strings.Contains(lower, "creatina"):
		return "creatina"
	case strings.Contains(lower, "pré"), strings.Contains(lower, "treino"),
		strings.Contains(lower, "horus"), strings.Contains(lower, "égide"),
		strings.Contains(lower, "fire"):
		return "pre_treino"
	case strings.Contains(lower, "hiper"):
		return "hipercalorico"
	case strings.Contains(lower, "vitamina"), strings.Contains(lower, "multivitamínico"),
		strings.Contains(lower, "multivitaminco"):
		return "vitaminas"
	case strings.Contains(lower, "barrinha"):
		return "barrinhas"
	case strings.Contains(lower, "omega"), strings.Contains(lower, "ômega"),
		strings.Contains(lower, "cafeína"), strings.Contains(lower, "cafeina"):
		return "vitaminas"
	default:
		return "whey"
	}
}
