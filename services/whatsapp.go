package services

import (
	"net/url"
	"strings"
)

// WhatsappLink arma el deep link wa.me/<numero>?text=... que abre el
// chat prellenado. El número se limpia a puros dígitos.
func WhatsappLink(phone, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return ""
	}

	link := "https://wa.me/" + digits
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}
