package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	digitRe = regexp.MustCompile(`\d`)
	bpRe    = regexp.MustCompile(`^\d+/\d+$`)
)

// IsEmailValid проверяет базовую форму email.
func IsEmailValid(email string) bool {
	return emailRe.MatchString(email)
}

// IsPasswordStrong проверяет минимальные требования к паролю:
// не короче 6 символов и хотя бы одна цифра.
func IsPasswordStrong(password string) bool {
	return len(password) >= 6 && digitRe.MatchString(password)
}

// HeartRate разбирает пульс: положительное целое, уд/мин.
func HeartRate(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("heart rate is required")
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("heart rate must be a positive integer, got %q", s)
	}
	return v, nil
}

// BloodPressure проверяет давление в форме "систолическое/диастолическое",
// оба значения — положительные целые.
func BloodPressure(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("blood pressure is required")
	}
	if !bpRe.MatchString(s) {
		return "", fmt.Errorf("blood pressure must look like 120/80, got %q", s)
	}
	parts := strings.SplitN(s, "/", 2)
	sys, _ := strconv.Atoi(parts[0])
	dia, _ := strconv.Atoi(parts[1])
	if sys <= 0 || dia <= 0 {
		return "", fmt.Errorf("blood pressure values must be positive, got %q", s)
	}
	return s, nil
}

// OxygenLevel разбирает насыщение кислородом: целое в диапазоне 0–100.
func OxygenLevel(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("oxygen level is required")
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 100 {
		return 0, fmt.Errorf("oxygen level must be an integer between 0 and 100, got %q", s)
	}
	return v, nil
}
