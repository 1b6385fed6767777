package validators

import (
	"bytes"
	"context"

	"github.com/townhall-project/feedback-portal/models"
)

// Field names recognized by the report validator. When no fields are passed
// to Validate, each request type falls back to its full required-field set.
const (
	FieldDescription    = "description"
	FieldTownhallID     = "townhall_id"
	FieldUser           = "user"
	FieldReportID       = "report_id"
	FieldNewDescription = "new_description"
	FieldReplyContent   = "reply_content"
	FieldResolvedStatus = "resolved_status"
)

// ReportValidator validates the request payloads of a single report
// collection. The kind decides whether townhallId is part of the create
// requirements: bug reports carry it, feedback reports do not.
type ReportValidator struct {
	kind models.ReportKind
}

func NewReportValidator(kind models.ReportKind) Validator {
	return &ReportValidator{kind: kind}
}

func (v *ReportValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateReportRequest:
		return v.validateCreateRequest(ctx, value, fields...)
	case *models.CreateReportRequest:
		return v.validateCreateRequest(ctx, *value, fields...)

	case models.UpdateReportRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateReportRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.DeleteReportRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteReportRequest:
		return v.validateDeleteRequest(ctx, *value, fields...)

	case models.SetResolvedStatusRequest:
		return v.validateSetResolvedRequest(ctx, value, fields...)
	case *models.SetResolvedStatusRequest:
		return v.validateSetResolvedRequest(ctx, *value, fields...)

	case models.ReplyToReportRequest:
		return v.validateReplyRequest(ctx, value, fields...)
	case *models.ReplyToReportRequest:
		return v.validateReplyRequest(ctx, *value, fields...)

	case models.IdentityRequest:
		return validateUser(value.User)
	case *models.IdentityRequest:
		return validateUser(value.User)

	default:
		return ErrUnsupportedType
	}
}

// validateUser fails closed: a missing user object and an empty user ID are
// both rejected.
func validateUser(user *models.User) error {
	if user == nil {
		return ErrNoUser
	}
	if user.ID == "" {
		return ErrEmptyUserID
	}
	return nil
}

// validateCreateRequest validates a CreateReportRequest.
//
// Default validated fields: Description, User, and — for bug reports
// only — TownhallID.
func (v *ReportValidator) validateCreateRequest(_ context.Context, request models.CreateReportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDescription, FieldUser}
		if v.kind == models.KindBug {
			fields = append(fields, FieldTownhallID)
		}
	}

	for _, f := range fields {
		switch f {
		case FieldDescription:
			if request.Description == "" {
				return ErrEmptyDescription
			}
		case FieldTownhallID:
			if request.TownhallID == "" {
				return ErrEmptyTownhallID
			}
		case FieldUser:
			if err := validateUser(request.User); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUpdateRequest validates an UpdateReportRequest.
//
// Default validated fields: ReportID, NewDescription, User.
func (v *ReportValidator) validateUpdateRequest(_ context.Context, request models.UpdateReportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReportID, FieldNewDescription, FieldUser}
	}

	for _, f := range fields {
		switch f {
		case FieldReportID:
			if request.ID == "" {
				return ErrEmptyReportID
			}
		case FieldNewDescription:
			if request.NewDescription == "" {
				return ErrEmptyNewDescription
			}
		case FieldUser:
			if err := validateUser(request.User); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDeleteRequest validates a DeleteReportRequest.
//
// Default validated fields: ReportID, User.
func (v *ReportValidator) validateDeleteRequest(_ context.Context, request models.DeleteReportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReportID, FieldUser}
	}

	for _, f := range fields {
		switch f {
		case FieldReportID:
			if request.ID == "" {
				return ErrEmptyReportID
			}
		case FieldUser:
			if err := validateUser(request.User); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateSetResolvedRequest validates a SetResolvedStatusRequest.
//
// Default validated fields: ReportID, ResolvedStatus. The resolved status
// must be the strict JSON token true or false; anything else — including
// quoted booleans, numbers, null, or an absent field — is rejected.
func (v *ReportValidator) validateSetResolvedRequest(_ context.Context, request models.SetResolvedStatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReportID, FieldResolvedStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldReportID:
			if request.ID == "" {
				return ErrEmptyReportID
			}
		case FieldResolvedStatus:
			// json.Unmarshal treats null as a no-op for a bool target, so the
			// token is compared literally instead.
			if token := string(bytes.TrimSpace(request.ResolvedStatus)); token != "true" && token != "false" {
				return ErrResolvedStatusNotBoolean
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateReplyRequest validates a ReplyToReportRequest.
//
// Default validated fields: ReportID, ReplyContent, User.
func (v *ReportValidator) validateReplyRequest(_ context.Context, request models.ReplyToReportRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldReportID, FieldReplyContent, FieldUser}
	}

	for _, f := range fields {
		switch f {
		case FieldReportID:
			if request.ID == "" {
				return ErrEmptyReportID
			}
		case FieldReplyContent:
			if request.ReplyContent == "" {
				return ErrEmptyReplyContent
			}
		case FieldUser:
			if err := validateUser(request.User); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
