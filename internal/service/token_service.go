package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusware/portal-api/internal/models"
	appErrors "github.com/campusware/portal-api/pkg/errors"
)

type tokenBookStore interface {
	Update(ctx context.Context, mutate func(*models.TokenBook) error) error
}

// IssueTokenRequest is the admin payload for minting an override token.
type IssueTokenRequest struct {
	Kind         string          `json:"type" validate:"required"`
	MatricNumber string          `json:"matric_number" validate:"required"`
	Courses      []models.Course `json:"courses"`
}

// IssueTokenResult echoes the minted code and attached courses. The code is
// the only credential; it is shown once.
type IssueTokenResult struct {
	Token   string          `json:"token"`
	Courses []models.Course `json:"courses"`
}

// RedeemTokenResult reports a successful redemption. Redemption only
// authorizes; the caller subsequently submits the returned courses through
// the normal registration flow.
type RedeemTokenResult struct {
	Kind    models.TokenKind `json:"type"`
	Courses []models.Course  `json:"courses"`
	Used    bool             `json:"token_used"`
}

// TokenService issues and redeems one-time override tokens.
type TokenService struct {
	tokens    tokenBookStore
	audit     auditWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTokenService constructs a TokenService.
func NewTokenService(tokens tokenBookStore, audit auditWriter, validate *validator.Validate, logger *zap.Logger) *TokenService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TokenService{tokens: tokens, audit: audit, validator: validate, logger: logger}
}

// Issue mints a single-use override token for the named student. Carryover
// tokens require a non-empty course list; late registration tokens carry
// none.
func (s *TokenService) Issue(ctx context.Context, actor string, req IssueTokenRequest) (*IssueTokenResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid token payload")
	}
	if !models.ValidTokenKind(req.Kind) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid token type")
	}
	kind := models.TokenKind(req.Kind)

	courses := req.Courses
	if kind == models.TokenCarryover {
		if len(courses) == 0 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "carryover tokens require a course list")
		}
	} else {
		courses = []models.Course{}
	}

	code, err := generateTokenCode()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to generate token code")
	}

	token := models.OverrideToken{
		Code:         code,
		MatricNumber: req.MatricNumber,
		Kind:         kind,
		Courses:      courses,
		CreatedBy:    actor,
		CreatedAt:    time.Now().UTC(),
		Used:         false,
	}

	err = s.tokens.Update(ctx, func(book *models.TokenBook) error {
		book.Append(token)
		return nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store token")
	}

	s.record(ctx, models.AuditActionTokenGenerated, actor, fmt.Sprintf("%s for %s", kind, req.MatricNumber))
	return &IssueTokenResult{Token: code, Courses: courses}, nil
}

// Redeem consumes a token on behalf of the calling student. It fails
// distinctly when the code is unknown, assigned to someone else, or
// already used. On success the token is marked used exactly once.
func (s *TokenService) Redeem(ctx context.Context, matric, code string) (*RedeemTokenResult, error) {
	if code == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "token required")
	}

	var result *RedeemTokenResult
	err := s.tokens.Update(ctx, func(book *models.TokenBook) error {
		token := book.Find(code)
		if token == nil {
			return appErrors.Clone(appErrors.ErrNotFound, "invalid token")
		}
		if token.MatricNumber != matric {
			return appErrors.Clone(appErrors.ErrForbidden, "token not assigned to you")
		}
		if token.Used {
			return appErrors.Clone(appErrors.ErrConflict, "token already used")
		}
		now := time.Now().UTC()
		token.Used = true
		token.UsedAt = &now
		result = &RedeemTokenResult{Kind: token.Kind, Courses: token.Courses, Used: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, models.AuditActionTokenUsed, matric, fmt.Sprintf("%s token used", result.Kind))
	return result, nil
}

func (s *TokenService) record(ctx context.Context, action, actor, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Append(ctx, action, actor, detail); err != nil {
		s.logger.Warn("failed to append audit entry", zap.String("action", action), zap.Error(err))
	}
}

func generateTokenCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
