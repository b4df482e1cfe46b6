package dto

import "time"

const dateLayout = "2006-01-02"

// SuccessResponse acknowledges mutations that return no entity body.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func Success() SuccessResponse {
	return SuccessResponse{Success: true}
}

func SuccessMessage(msg string) SuccessResponse {
	return SuccessResponse{Success: true, Message: msg}
}

// ParseDate converts an optional "YYYY-MM-DD" string into a time.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders an optional time as "YYYY-MM-DD".
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
