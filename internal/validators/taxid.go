package validators

// IsValidCPF valida um CPF de 11 dígitos, sem pontuação.
func IsValidCPF(cpf string) bool {
	d, ok := digits(cpf, 11)
	if !ok || allSame(d) {
		return false
	}

	for n := 9; n <= 10; n++ {
		sum := 0
		for i := 0; i < n; i++ {
			sum += d[i] * (n + 1 - i)
		}
		if checkDigit(sum) != d[n] {
			return false
		}
	}
	return true
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// IsValidCNPJ valida um CNPJ de 14 dígitos, sem pontuação.
func IsValidCNPJ(cnpj string) bool {
	d, ok := digits(cnpj, 14)
	if !ok || allSame(d) {
		return false
	}

	for _, weights := range [][]int{cnpjWeights1, cnpjWeights2} {
		n := len(weights)
		sum := 0
		for i, w := range weights {
			sum += d[i] * w
		}
		if checkDigit(sum) != d[n] {
			return false
		}
	}
	return true
}

// checkDigit aplica o módulo 11: restos 0 e 1 viram dígito 0.
func checkDigit(sum int) int {
	r := sum % 11
	if r < 2 {
		return 0
	}
	return 11 - r
}

func digits(s string, size int) ([]int, bool) {
	if len(s) != size {
		return nil, false
	}
	out := make([]int, size)
	for i := 0; i < size; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = int(c - '0')
	}
	return out, true
}

// Sequências repetidas (00000000000, 11111111111...) passam no módulo 11 mas não são emitidas.
func allSame(d []int) bool {
	for _, v := range d[1:] {
		if v != d[0] {
			return false
		}
	}
	return true
}
