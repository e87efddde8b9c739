package pricing

import (
	"strconv"
	"strings"
)

// FormatINR renders paise as rupees with Indian digit grouping
// (lakh, crore) and at most two fraction digits: 25200000 -> "₹2,52,000".
func FormatINR(paise int64) string {
	var b strings.Builder
	if paise < 0 {
		b.WriteByte('-')
		paise = -paise
	}
	b.WriteString("₹")
	b.WriteString(groupIndian(strconv.FormatInt(paise/100, 10)))

	if frac := paise % 100; frac != 0 {
		digits := strings.TrimRight(strconv.FormatInt(100+frac, 10)[1:], "0")
		b.WriteByte('.')
		b.WriteString(digits)
	}
	return b.String()
}

// groupIndian groups the last three digits, then every two digits before them.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(groups, ",") + "," + tail
}
