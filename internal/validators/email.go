package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid aceita o domínio se ele resolve MX ou, na falta,
// qualquer registro de endereço. Cadastro com domínio digitado errado
// barra aqui.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.Contains(domain, " ") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
