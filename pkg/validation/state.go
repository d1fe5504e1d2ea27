package validation

// Brazilian federative unit codes.
var stateCodes = map[string]struct{}{
	"AC": {}, "AL": {}, "AP": {}, "AM": {}, "BA": {}, "CE": {}, "DF": {},
	"ES": {}, "GO": {}, "MA": {}, "MT": {}, "MS": {}, "MG": {}, "PA": {},
	"PB": {}, "PR": {}, "PE": {}, "PI": {}, "RJ": {}, "RN": {}, "RS": {},
	"RO": {}, "RR": {}, "SC": {}, "SP": {}, "SE": {}, "TO": {},
}

// ValidStateCode reports whether the given value is one of the 27
// two-letter Brazilian state codes.
func ValidStateCode(state string) bool {
	_, ok := stateCodes[state]
	return ok
}
