package dto

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Campos opcionais: nil continua nil. Valor presente mas malformado devolve ok=false.

func parseDecimal(s *string) (*decimal.Decimal, bool) {
	if s == nil {
		return nil, true
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*s))
	if err != nil {
		return nil, false
	}
	return &d, true
}

func parseFloat32(s *string) (*float32, bool) {
	if s == nil {
		return nil, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(*s), 32)
	if err != nil {
		return nil, false
	}
	out := float32(f)
	return &out, true
}

func formatDecimal(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func formatFloat32(f *float32) *string {
	if f == nil {
		return nil
	}
	s := strconv.FormatFloat(float64(*f), 'f', -1, 32)
	return &s
}
