package router

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	idPattern          = regexp.MustCompile(`\bid\s*[:#]?\s*\d+`)
	customerNumPattern = regexp.MustCompile(`\bcustomer\s*#?\s*\d+`)
	digitsPattern      = regexp.MustCompile(`\d+`)
	emailPattern       = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// Classify maps a query to a scenario. Rules are checked in order and the
// first match wins, so a cancellation with a billing complaint is escalated
// even when it also mentions premium tickets.
func (r *QueryRouter) Classify(query string) Scenario {
	if s, ok := matchRules(withoutEmail(query)); ok {
		return s
	}
	return r.cfg.FallbackScenario
}

func matchRules(query string) (Scenario, bool) {
	q := strings.ToLower(query)
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(q, w) {
				return true
			}
		}
		return false
	}

	switch {
	case has("cancel") && has("billing", "charged"):
		return ScenarioNegotiationEscalation, true
	case has("customer id") || idPattern.MatchString(q) || customerNumPattern.MatchString(q):
		return ScenarioTaskAllocation, true
	case has("high priority", "high-priority") && has("premium"):
		return ScenarioMultiStepCoordination, true
	case has("update", "change") && has("history", "tickets"):
		return ScenarioMultiIntent, true
	}
	return "", false
}

// ExtractCustomerID returns the last number in the query. A number too large
// for an int64 counts as absent.
func ExtractCustomerID(query string) (int64, bool) {
	matches := digitsPattern.FindAllString(query, -1)
	if len(matches) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(matches[len(matches)-1], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// withoutEmail blanks out the first email address so digits in it are not
// read as an id.
func withoutEmail(query string) string {
	email, ok := ExtractEmail(query)
	if !ok {
		return query
	}
	return strings.Replace(query, email, " ", 1)
}

// ExtractEmail returns the first email-looking token in the query.
func ExtractEmail(query string) (string, bool) {
	m := emailPattern.FindString(query)
	return m, m != ""
}
