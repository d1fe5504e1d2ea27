package validation

import "strings"

// ValidCPF reports whether a string is a valid CPF (Brazilian personal
// tax document). Accepts formatted ("###.###.###-##") or bare input and
// verifies both check digits against the Receita Federal algorithm.
func ValidCPF(cpf string) bool {
	cpf = strings.TrimSpace(cpf)
	cpf = strings.ReplaceAll(cpf, ".", "")
	cpf = strings.ReplaceAll(cpf, "-", "")

	if len(cpf) != 11 || !allDigits(cpf) {
		return false
	}

	multiplier1 := []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	multiplier2 := []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * multiplier1[i]
	}
	digit1 := 11 - sum%11
	if sum%11 < 2 {
		digit1 = 0
	}

	sum = 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * multiplier2[i]
	}
	sum += digit1 * multiplier2[9]
	digit2 := 11 - sum%11
	if sum%11 < 2 {
		digit2 = 0
	}

	return int(cpf[9]-'0') == digit1 && int(cpf[10]-'0') == digit2
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
