package validators

import "strings"

// IsEmailValid is a syntactic check only; deliverability is not verified.
func IsEmailValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsAny(email, " \t") {
		return false
	}

	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}
