package validators

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid", "72471428045", true},
		{"valid with zero check digit", "12831339030", true},
		{"valid admin example", "19737032039", true},
		{"wrong first check digit", "72471428055", false},
		{"wrong second check digit", "72471428046", false},
		{"too short", "7247142804", false},
		{"too long", "724714280450", false},
		{"formatted", "724.714.280-45", false},
		{"letters", "7247142804a", false},
		{"repeated digits", "11111111111", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCPF(tt.cpf))
		})
	}
}

func TestIsValidCNPJ(t *testing.T) {
	tests := []struct {
		name string
		cnpj string
		want bool
	}{
		{"valid", "11861136000102", true},
		{"valid second company", "73234282000165", true},
		{"wrong check digits", "11861136000103", false},
		{"too short", "5598712398", false},
		{"formatted", "11.861.136/0001-02", false},
		{"letters", "1186113600010X", false},
		{"repeated digits", "00000000000000", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCNPJ(tt.cnpj))
		})
	}
}

// randomCNPJ monta um CNPJ com dígitos verificadores corretos.
func randomCNPJ(r *rand.Rand) []byte {
	d := make([]int, 14)
	for i := 0; i < 12; i++ {
		d[i] = r.IntN(10)
	}
	for _, weights := range [][]int{cnpjWeights1, cnpjWeights2} {
		sum := 0
		for i, w := range weights {
			sum += d[i] * w
		}
		d[len(weights)] = checkDigit(sum)
	}
	out := make([]byte, 14)
	for i, v := range d {
		out[i] = byte('0' + v)
	}
	return out
}

func TestIsValidCNPJ_Property(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 2017))

	const samples = 2000
	var mutations, accepted int

	for s := 0; s < samples; s++ {
		cnpj := randomCNPJ(r)
		if allSameBytes(cnpj) {
			continue
		}
		if !assert.True(t, IsValidCNPJ(string(cnpj)), "generated %s", cnpj) {
			return
		}

		pos := r.IntN(14)
		mutated := append([]byte(nil), cnpj...)
		orig := mutated[pos]
		for mutated[pos] == orig {
			mutated[pos] = byte('0' + r.IntN(10))
		}

		mutations++
		if IsValidCNPJ(string(mutated)) {
			accepted++
		}
	}

	// Restos 0 e 1 geram o mesmo dígito, então colisões raras são esperadas.
	assert.Less(t, float64(accepted)/float64(mutations), 0.05)
}

func allSameBytes(b []byte) bool {
	for _, c := range b[1:] {
		if c != b[0] {
			return false
		}
	}
	return true
}
