package middleware

import (
	"net"
	"strings"
)

// ExtractSubdomain возвращает поддомен бизнеса из Host.
// Поддомен есть, только если в имени хоста не меньше трех меток и первая не "www";
// порт отбрасывается. "fade.salons.ru:8080" -> "fade", "salons.ru" -> "", "www.salons.ru" -> ""
func ExtractSubdomain(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")

	labels := strings.Split(host, ".")
	if len(labels) < 3 {
		return ""
	}

	sub := labels[0]
	if sub == "" || sub == "www" {
		return ""
	}
	return sub
}

// BelongsToDomain проверяет, что host является поддоменом root. Пустой root - проверка отключена
func BelongsToDomain(host, root string) bool {
	root = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(root)), ".")
	if root == "" {
		return true
	}

	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")

	return strings.HasSuffix(host, "."+root)
}
