package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const testCatalog = `{
  "products": [
    {"brand": "MAX", "category": "Whey Concentrado", "flavors": "Chocolate, Baunilha, Morango"},
    {"brand": "DUX", "category": "Creatina", "flavors": "NÃO TEM SABORES"},
    {"brand": "FTW", "category": "Pré-Treino", "flavors": "N/A"},
    {"brand": "", "category": "Whey", "flavors": ""},
    {"brand": "Marca Nova", "category": "Colágeno", "flavors": ""}
  ],
  "images": [
    {"brand": "max", "category": "whey", "image": "/static/images/whey-concentrado-max-card.png"},
    {"brand": "dux", "category": "creatina", "image": "/static/images/creatina-dux-card.png"}
  ],
  "categoryImages": {
    "pré": "/static/images/pre-max.png",
    "whey": "/static/images/whey-max.png"
  },
  "placeholder": "/static/images/produto-placeholder.svg",
  "defaultPrice": 99.90,
  "categoryPrices": {
    "creatina": 79.90
  }
}`

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(testCatalog), 0o644); err != nil {
		t.Fatalf("write test catalog: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c
}

func TestLoadSkipsIncompleteRows(t *testing.T) {
	c := loadTestCatalog(t)
	if c.Len() != 4 {
		t.Fatalf("expected 4 products (blank brand skipped), got %d", c.Len())
	}
}

func TestImageFallbackChain(t *testing.T) {
	c := loadTestCatalog(t)
	products := c.Products("", "")

	byName := make(map[string]Product)
	for _, p := range products {
		byName[p.Name] = p
	}

	// Specific (brand, category) override wins.
	if got := byName["MAX - Whey Concentrado"].Image; got != "/static/images/whey-concentrado-max-card.png" {
		t.Fatalf("expected brand override image, got %s", got)
	}
	// No override for FTW pré-treino: category default applies.
	if got := byName["FTW - Pré-Treino"].Image; got != "/static/images/pre-max.png" {
		t.Fatalf("expected category default image, got %s", got)
	}
	// Unknown category falls through to the placeholder.
	if got := byName["Marca Nova - Colágeno"].Image; got != "/static/images/produto-placeholder.svg" {
		t.Fatalf("expected placeholder image, got %s", got)
	}
}

func TestPricingUsesCategoryOverrideThenDefault(t *testing.T) {
	c := loadTestCatalog(t)
	byName := make(map[string]Product)
	for _, p := range c.Products("", "") {
		byName[p.Name] = p
	}

	if got := byName["DUX - Creatina"].Price; got != 79.90 {
		t.Fatalf("expected creatina price override 79.90, got %v", got)
	}
	if got := byName["MAX - Whey Concentrado"].Price; got != 99.90 {
		t.Fatalf("expected default price 99.90, got %v", got)
	}
}

func TestFlavorsParsing(t *testing.T) {
	c := loadTestCatalog(t)
	byName := make(map[string]Product)
	for _, p := range c.Products("", "") {
		byName[p.Name] = p
	}

	whey := byName["MAX - Whey Concentrado"]
	if len(whey.Flavors) != 3 || whey.Flavors[1] != "Baunilha" {
		t.Fatalf("unexpected flavors: %v", whey.Flavors)
	}
	if flavors := byName["DUX - Creatina"].Flavors; flavors != nil {
		t.Fatalf("expected no flavors for creatina, got %v", flavors)
	}
}

func TestProductsFiltering(t *testing.T) {
	c := loadTestCatalog(t)

	if got := c.Products("creatina", ""); len(got) != 1 || got[0].Brand != "DUX" {
		t.Fatalf("unexpected creatina filter result: %v", got)
	}
	if got := c.Products("", "max"); len(got) != 1 {
		t.Fatalf("expected one search hit for max, got %d", len(got))
	}
	if got := c.Products("pre_treino", ""); len(got) != 1 {
		t.Fatalf("expected pré-treino mapped to pre_treino filter, got %d", len(got))
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
