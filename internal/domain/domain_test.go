package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotification(t *testing.T) {
	n := NewNotification()
	assert.False(t, n.IsNotification())
	assert.Empty(t, n.GetNotification())

	n.Handle("first")
	n.Handle("second")
	assert.True(t, n.IsNotification())
	assert.Equal(t, []string{"first", "second"}, n.GetNotification())
}

func TestCheck(t *testing.T) {
	t.Run("Should pass with no failing rules", func(t *testing.T) {
		n := NewNotification()
		ok := Check(n, []Rule{
			{Ok: func() bool { return true }, Message: "never"},
		})
		assert.True(t, ok)
		assert.False(t, n.IsNotification())
	})

	t.Run("Should collect every failing rule in order", func(t *testing.T) {
		n := NewNotification()
		ok := Check(n, []Rule{
			{Ok: func() bool { return false }, Message: "a"},
			{Ok: func() bool { return true }, Message: "b"},
			{Ok: func() bool { return false }, Message: "c"},
		})
		assert.False(t, ok)
		assert.Equal(t, []string{"a", "c"}, n.GetNotification())
	})
}

func TestCompanyRules(t *testing.T) {
	t.Run("Should pass for a valid company", func(t *testing.T) {
		company := NewCompany(0, "Acme Ltda", "11.222.333/0001-81", time.Now(), "contact@acme.com.br")
		n := NewNotification()
		assert.True(t, Check(n, company.Rules()))
	})

	t.Run("Should notify blank name and bad CNPJ", func(t *testing.T) {
		company := NewCompany(0, "", "123", time.Now(), "")
		n := NewNotification()
		assert.False(t, Check(n, company.Rules()))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgBlankField, "Name"))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgInvalidDocument, "CNPJ"))
	})
}

func TestCandidateRules(t *testing.T) {
	dob := time.Date(1995, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("Should pass for a valid candidate", func(t *testing.T) {
		candidate := NewCandidate(0, 1, 1, "Mariana", "Silva Souza", "529.982.247-25", "123456", dob)
		n := NewNotification()
		assert.True(t, Check(n, candidate.Rules()))
	})

	t.Run("Should notify unlinked foreign keys", func(t *testing.T) {
		candidate := NewCandidate(0, 0, 0, "Mariana", "Silva Souza", "529.982.247-25", "", dob)
		n := NewNotification()
		assert.False(t, Check(n, candidate.Rules()))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgFieldNotLinked, "CompanyID", "Company"))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgFieldNotLinked, "GenderID", "Gender"))
	})

	t.Run("Should notify underage candidate", func(t *testing.T) {
		candidate := NewCandidate(0, 1, 1, "Mariana", "Silva Souza", "529.982.247-25", "", time.Now().AddDate(-17, 0, 0))
		n := NewNotification()
		assert.False(t, Check(n, candidate.Rules()))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgUnderage, "DateOfBirth", "Candidate"))
	})
}

func TestAddressRules(t *testing.T) {
	valid := Address{
		CompanyID:    1,
		Name:         "Headquarters",
		ZipCode:      "01310-100",
		Street:       "Avenida Paulista",
		Number:       "1000",
		Neighborhood: "Bela Vista",
		City:         "Sao Paulo",
		State:        "SP",
	}

	t.Run("Should pass for a valid company-owned address", func(t *testing.T) {
		a := valid
		n := NewNotification()
		assert.True(t, Check(n, a.Rules()))
	})

	t.Run("Should reject both owners set", func(t *testing.T) {
		a := valid
		a.CandidateID = 2
		n := NewNotification()
		assert.False(t, Check(n, a.Rules()))
		assert.Contains(t, n.GetNotification(), MsgAddressOwner)
	})

	t.Run("Should reject no owner set", func(t *testing.T) {
		a := valid
		a.CompanyID = 0
		n := NewNotification()
		assert.False(t, Check(n, a.Rules()))
		assert.Contains(t, n.GetNotification(), MsgAddressOwner)
	})

	t.Run("Should reject wrong zip code length and unknown state", func(t *testing.T) {
		a := valid
		a.ZipCode = "1310100"
		a.State = "XX"
		n := NewNotification()
		assert.False(t, Check(n, a.Rules()))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgFieldExactLen, "ZipCode", 9))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgInvalidState, "State"))
	})
}

func TestRelationRules(t *testing.T) {
	t.Run("Should reject zero foreign keys on interview", func(t *testing.T) {
		interview := Interview{}
		n := NewNotification()
		assert.False(t, Check(n, interview.Rules()))
		assert.Len(t, n.GetNotification(), 2)
	})

	t.Run("Should reject zero foreign keys on weight", func(t *testing.T) {
		weight := JobInterviewWeight{TechnologyID: 1}
		n := NewNotification()
		assert.False(t, Check(n, weight.Rules()))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgFieldNotLinked, "JobOpeningID", "JobOpening"))
	})

	t.Run("Should pass when both foreign keys are set", func(t *testing.T) {
		rel := CompanyTechnology{CompanyID: 1, TechnologyID: 2}
		n := NewNotification()
		assert.True(t, Check(n, rel.Rules()))
	})
}

func TestJobOpeningRules(t *testing.T) {
	t.Run("Should reject short summary", func(t *testing.T) {
		jobOpening := NewJobOpening(0, "Go Developer", "short", "", true)
		n := NewNotification()
		assert.False(t, Check(n, jobOpening.Rules()))
		assert.Contains(t, n.GetNotification(), fmt.Sprintf(MsgFieldLength, "Summary", 10, 100))
	})

	t.Run("Should pass for a valid opening", func(t *testing.T) {
		jobOpening := NewJobOpening(0, "Go Developer", "Backend services in Go", "", true)
		n := NewNotification()
		assert.True(t, Check(n, jobOpening.Rules()))
	})
}
