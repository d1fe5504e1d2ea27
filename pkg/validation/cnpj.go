package validation

import "strings"

var invalidCNPJSequences = map[string]struct{}{
	"00000000000000": {},
	"11111111111111": {},
	"22222222222222": {},
	"33333333333333": {},
	"44444444444444": {},
	"55555555555555": {},
	"66666666666666": {},
	"77777777777777": {},
	"88888888888888": {},
	"99999999999999": {},
}

// ValidCNPJ reports whether a string is a valid CNPJ (Brazilian company
// tax document). Non-digit characters are stripped before checking the
// length, the known invalid repeated-digit sequences, and both check
// digits.
func ValidCNPJ(cnpj string) bool {
	cnpj = CleanCNPJ(cnpj)

	if len(cnpj) != 14 {
		return false
	}
	if _, repeated := invalidCNPJSequences[cnpj]; repeated {
		return false
	}

	return strings.HasSuffix(cnpj, cnpjCheckDigits(cnpj[:12]))
}

// CleanCNPJ strips everything except digits.
func CleanCNPJ(cnpj string) string {
	var b strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func cnpjCheckDigits(first12 string) string {
	multiplier1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	multiplier2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

	sum := 0
	for i := 0; i < 12; i++ {
		sum += int(first12[i]-'0') * multiplier1[i]
	}
	digit1 := 11 - sum%11
	if sum%11 < 2 {
		digit1 = 0
	}

	withFirst := first12 + string(rune('0'+digit1))
	sum = 0
	for i := 0; i < 13; i++ {
		sum += int(withFirst[i]-'0') * multiplier2[i]
	}
	digit2 := 11 - sum%11
	if sum%11 < 2 {
		digit2 = 0
	}

	return string(rune('0'+digit1)) + string(rune('0'+digit2))
}
