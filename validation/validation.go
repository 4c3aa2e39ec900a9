package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	cpfLength  = 11
	dateLength = 8
	minYear    = 100
)

var (
	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	cpfShapeRegexp = regexp.MustCompile(`^\d{3}\.?\d{3}\.?\d{3}-?\d{2}$`)
)

// OnlyDigits removes every rune that is not an ASCII digit
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeCPF returns the canonical (digits only) form of a CPF
func NormalizeCPF(cpf string) string {
	return OnlyDigits(cpf)
}

// IsValidCPF checks the length and both check digits of a CPF. Punctuation is ignored.
func IsValidCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != cpfLength {
		return false
	}

	if strings.Count(digits, digits[:1]) == cpfLength {
		return false
	}

	if cpfCheckDigit(digits[:9]) != int(digits[9]-'0') {
		return false
	}

	return cpfCheckDigit(digits[:10]) == int(digits[10]-'0')
}

// CompleteCPF appends the two check digits to a 9 digit CPF base.
// It returns an empty string when the base does not have exactly 9 digits.
func CompleteCPF(base string) string {
	digits := OnlyDigits(base)
	if len(digits) != 9 {
		return ""
	}

	digits += strconv.Itoa(cpfCheckDigit(digits))
	return digits + strconv.Itoa(cpfCheckDigit(digits))
}

// cpfCheckDigit weights the digits from len(digits)+1 down to 2
func cpfCheckDigit(digits string) int {
	weight := len(digits) + 1
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * (weight - i)
	}

	digit := 11 - (sum % 11)
	if digit >= 10 {
		return 0
	}
	return digit
}

// IsCPFShaped reports whether s looks like a CPF, with or without punctuation.
// The check digits are not verified.
func IsCPFShaped(s string) bool {
	return cpfShapeRegexp.MatchString(s)
}

// IsValidEmail is a permissive pattern check, not a full RFC 5322 parser
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// IsValidDate validates a DDMMYYYY date against the current time
func IsValidDate(date string) bool {
	return IsValidDateAt(date, time.Now())
}

// IsValidDateAt validates a DDMMYYYY date (masked or not) that must exist in the
// calendar and must not be after now. Years below 100 are rejected.
func IsValidDateAt(date string, now time.Time) bool {
	digits := OnlyDigits(date)
	if len(digits) != dateLength {
		return false
	}

	day, _ := strconv.Atoi(digits[0:2])
	month, _ := strconv.Atoi(digits[2:4])
	year, _ := strconv.Atoi(digits[4:8])

	if year < minYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}

	// time.Date normalizes overflowing days, e.g. February 30 becomes March 1 or 2
	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
	if parsed.Day() != day || int(parsed.Month()) != month || parsed.Year() != year {
		return false
	}

	return !parsed.After(now)
}

// FormatCPF masks up to 11 digits as XXX.XXX.XXX-XX. Partial input yields a partial mask.
func FormatCPF(cpf string) string {
	digits := OnlyDigits(cpf)
	if len(digits) > cpfLength {
		digits = digits[:cpfLength]
	}

	var b strings.Builder
	for i, r := range digits {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatDate masks up to 8 digits as DD/MM/YYYY. Digits after the year are dropped.
func FormatDate(date string) string {
	digits := OnlyDigits(date)
	if len(digits) > dateLength {
		digits = digits[:dateLength]
	}

	var b strings.Builder
	for i, r := range digits {
		if i == 2 || i == 4 {
			b.WriteByte('/')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DateToISO renders a DD/MM/YYYY (or DDMMYYYY) date as YYYY-MM-DD.
// The input is not validated, call IsValidDate first.
func DateToISO(date string) string {
	digits := OnlyDigits(date)
	day := substring(digits, 0, 2)
	month := substring(digits, 2, 4)
	year := substring(digits, 4, 8)
	return year + "-" + month + "-" + day
}

// ISOToDate renders a YYYY-MM-DD date as DD/MM/YYYY
func ISOToDate(iso string) string {
	parsed, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return ""
	}
	return parsed.Format("02/01/2006")
}

func substring(s string, start, end int) string {
	if start > len(s) {
		return ""
	}
	if end > len(s) {
		end = len(s)
	}
	return s[start:end]
}
