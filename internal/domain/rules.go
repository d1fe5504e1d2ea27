package domain

import "fmt"

// Rule is a single field predicate paired with the message notified when
// it fails. Entity rule sets are plain ordered lists of these.
type Rule struct {
	Ok      func() bool
	Message string
}

// Check evaluates every rule in order, notifying each failure, and
// reports whether all rules passed.
func Check(n *Notification, rules []Rule) bool {
	ok := true
	for _, r := range rules {
		if !r.Ok() {
			n.Handle(r.Message)
			ok = false
		}
	}
	return ok
}

func notBlank(field, value string) Rule {
	return Rule{
		Ok:      func() bool { return value != "" },
		Message: fmt.Sprintf(MsgBlankField, field),
	}
}

func lengthBetween(field, value string, min, max int) Rule {
	return Rule{
		Ok:      func() bool { return len(value) >= min && len(value) <= max },
		Message: fmt.Sprintf(MsgFieldLength, field, min, max),
	}
}

func exactLength(field, value string, n int) Rule {
	return Rule{
		Ok:      func() bool { return len(value) == n },
		Message: fmt.Sprintf(MsgFieldExactLen, field, n),
	}
}

func linked(field, owner string, id int64) Rule {
	return Rule{
		Ok:      func() bool { return id != 0 },
		Message: fmt.Sprintf(MsgFieldNotLinked, field, owner),
	}
}
