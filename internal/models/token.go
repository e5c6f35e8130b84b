package models

import "time"

// TokenKind distinguishes the two override token flavours.
type TokenKind string

const (
	TokenCarryover        TokenKind = "carryover"
	TokenLateRegistration TokenKind = "late_registration"
)

// ValidTokenKind reports whether the raw value names a known kind.
func ValidTokenKind(raw string) bool {
	kind := TokenKind(raw)
	return kind == TokenCarryover || kind == TokenLateRegistration
}

// OverrideToken is a single-use credential letting a named student register
// outside the normal flow. Tokens are never deleted, only marked used.
type OverrideToken struct {
	Code         string     `json:"code"`
	MatricNumber string     `json:"matric_number"`
	Kind         TokenKind  `json:"type"`
	Courses      []Course   `json:"courses"`
	CreatedBy    string     `json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	Used         bool       `json:"used"`
	UsedAt       *time.Time `json:"used_at"`
}

// TokenBook is the persisted token document, grouped by kind.
type TokenBook struct {
	Carryover        []OverrideToken `json:"carryover"`
	LateRegistration []OverrideToken `json:"late_registration"`
}

// Find locates a token by code across both kinds. The returned pointer
// aliases the book so callers can mark it used before saving.
func (b *TokenBook) Find(code string) *OverrideToken {
	for i := range b.Carryover {
		if b.Carryover[i].Code == code {
			return &b.Carryover[i]
		}
	}
	for i := range b.LateRegistration {
		if b.LateRegistration[i].Code == code {
			return &b.LateRegistration[i]
		}
	}
	return nil
}

// Append adds a token to its kind's list.
func (b *TokenBook) Append(token OverrideToken) {
	if token.Kind == TokenCarryover {
		b.Carryover = append(b.Carryover, token)
		return
	}
	b.LateRegistration = append(b.LateRegistration, token)
}
