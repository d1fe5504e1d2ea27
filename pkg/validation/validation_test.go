package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidCPF(t *testing.T) {
	t.Run("Should accept valid CPFs, formatted or bare", func(t *testing.T) {
		assert.True(t, ValidCPF("529.982.247-25"))
		assert.True(t, ValidCPF("52998224725"))
		assert.True(t, ValidCPF("111.444.777-35"))
	})

	t.Run("Should reject wrong check digits", func(t *testing.T) {
		assert.False(t, ValidCPF("529.982.247-24"))
		assert.False(t, ValidCPF("111.444.777-36"))
	})

	t.Run("Should reject wrong length and non-digits", func(t *testing.T) {
		assert.False(t, ValidCPF(""))
		assert.False(t, ValidCPF("5299822472"))
		assert.False(t, ValidCPF("529982247255"))
		assert.False(t, ValidCPF("52998224a25"))
	})
}

func TestValidCNPJ(t *testing.T) {
	t.Run("Should accept valid CNPJs, formatted or bare", func(t *testing.T) {
		assert.True(t, ValidCNPJ("11.222.333/0001-81"))
		assert.True(t, ValidCNPJ("11222333000181"))
	})

	t.Run("Should reject wrong check digits", func(t *testing.T) {
		assert.False(t, ValidCNPJ("11.222.333/0001-80"))
		assert.False(t, ValidCNPJ("11222333000118"))
	})

	t.Run("Should reject repeated-digit sequences despite valid checksum", func(t *testing.T) {
		for _, seq := range []string{"00000000000000", "11111111111111", "99999999999999"} {
			assert.False(t, ValidCNPJ(seq), seq)
		}
	})

	t.Run("Should reject wrong length", func(t *testing.T) {
		assert.False(t, ValidCNPJ(""))
		assert.False(t, ValidCNPJ("1122233300018"))
		assert.False(t, ValidCNPJ("112223330001811"))
	})
}

func TestCleanCNPJ(t *testing.T) {
	assert.Equal(t, "11222333000181", CleanCNPJ("11.222.333/0001-81"))
	assert.Equal(t, "", CleanCNPJ("abc-/."))
}

func TestValidStateCode(t *testing.T) {
	t.Run("Should accept all 27 federative units", func(t *testing.T) {
		for code := range stateCodes {
			assert.True(t, ValidStateCode(code), code)
		}
	})

	t.Run("Should reject unknown and lowercase codes", func(t *testing.T) {
		assert.False(t, ValidStateCode("XX"))
		assert.False(t, ValidStateCode("sp"))
		assert.False(t, ValidStateCode(""))
	})
}

func TestAtLeast18(t *testing.T) {
	now := time.Date(2026, time.June, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Should accept exactly on the 18th birthday", func(t *testing.T) {
		dob := time.Date(2008, time.June, 15, 0, 0, 0, 0, time.UTC)
		assert.True(t, atLeast18At(dob, now))
	})

	t.Run("Should reject one day before the 18th birthday", func(t *testing.T) {
		dob := time.Date(2008, time.June, 16, 0, 0, 0, 0, time.UTC)
		assert.False(t, atLeast18At(dob, now))
	})

	t.Run("Should correct the age when the birthday is later this year", func(t *testing.T) {
		dob := time.Date(2008, time.December, 1, 0, 0, 0, 0, time.UTC)
		assert.False(t, atLeast18At(dob, now))
	})

	t.Run("Should accept someone well past 18", func(t *testing.T) {
		dob := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, atLeast18At(dob, now))
	})
}
