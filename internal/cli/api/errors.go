package api

import "fmt"

// ValidationError — вход отвергнут на стороне клиента, до какого-либо
// сетевого вызова.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

// RemoteError — сервис отверг запрос либо недоступен.
// Status == 0 означает транспортную ошибку (соединение, таймаут).
type RemoteError struct {
	Status int
	Reason string
	Err    error
}

func (e *RemoteError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("remote: %s", e.Reason)
	}
	return fmt.Sprintf("remote (%d): %s", e.Status, e.Reason)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func remoteStatus(status int, body []byte) error {
	return &RemoteError{Status: status, Reason: trimmed(body)}
}

func remoteTransport(err error) error {
	return &RemoteError{Reason: err.Error(), Err: err}
}

func trimmed(body []byte) string {
	s := string(body)
	for len(s) > 0 {
		c := s[len(s)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			s = s[:len(s)-1]
			continue
		}
		break
	}
	return s
}
