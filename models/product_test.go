package models

import (
	"reflect"
	"testing"
)

func fptr(f float64) *float64 { return &f }
func iptr(i int) *int         { return &i }
func bptr(b bool) *bool       { return &b }

func TestNormalizePriceFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProduct
		want float64
	}{
		{"sale price only", RawProduct{SalePrice: fptr(50)}, 50},
		{"legacy price only", RawProduct{Price: fptr(30)}, 30},
		{"sale price wins over legacy", RawProduct{SalePrice: fptr(50), Price: fptr(30)}, 50},
		{"explicit zero sale price wins", RawProduct{SalePrice: fptr(0), Price: fptr(30)}, 0},
		{"neither", RawProduct{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.Normalize("k").SalePrice; got != tt.want {
				t.Errorf("SalePrice = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalizeCategoryFallback(t *testing.T) {
	tests := []struct {
		name string
		raw  RawProduct
		want string
	}{
		{"category only", RawProduct{Category: "Bebidas"}, "Bebidas"},
		{"legacy type only", RawProduct{Type: "Snacks"}, "Snacks"},
		{"category wins over type", RawProduct{Category: "Bebidas", Type: "Snacks"}, "Bebidas"},
		{"neither", RawProduct{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.raw.Normalize("k").Category; got != tt.want {
				t.Errorf("Category = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeImagesFallback(t *testing.T) {
	multi := RawProduct{Images: []string{"a.jpg", "b.jpg"}, Image: "old.jpg"}
	if got := multi.Normalize("k").Images; !reflect.DeepEqual(got, []string{"a.jpg", "b.jpg"}) {
		t.Errorf("Images = %v, want images field to win", got)
	}

	legacy := RawProduct{Image: "old.jpg"}
	if got := legacy.Normalize("k").Images; !reflect.DeepEqual(got, []string{"old.jpg"}) {
		t.Errorf("Images = %v, want legacy single image promoted", got)
	}

	none := RawProduct{}
	if got := none.Normalize("k").Images; len(got) != 0 {
		t.Errorf("Images = %v, want empty", got)
	}
}

func TestNormalizeActiveDefault(t *testing.T) {
	if !(RawProduct{}).Normalize("k").Active {
		t.Error("absent active flag must count as active")
	}
	if !(RawProduct{Active: bptr(true)}).Normalize("k").Active {
		t.Error("explicit true must stay active")
	}
	if (RawProduct{Active: bptr(false)}).Normalize("k").Active {
		t.Error("explicit false must be inactive")
	}
}

func TestNormalizeKeyAndMinStock(t *testing.T) {
	p := RawProduct{MinStock: iptr(3)}.Normalize("abc")
	if p.Key != "abc" {
		t.Errorf("Key = %q, want abc", p.Key)
	}
	if p.MinStock != 3 {
		t.Errorf("MinStock = %d, want 3", p.MinStock)
	}
}

func TestVisible(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{"active with stock", Product{Active: true, Stock: 3}, true},
		{"active without stock", Product{Active: true, Stock: 0}, false},
		{"inactive with stock", Product{Active: false, Stock: 5}, false},
		{"inactive without stock", Product{Active: false, Stock: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.Visible(); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLowStock(t *testing.T) {
	if !(Product{Stock: 2, MinStock: 2}).LowStock() {
		t.Error("stock equal to minimum is low")
	}
	if (Product{Stock: 3, MinStock: 2}).LowStock() {
		t.Error("stock above minimum is not low")
	}
}
