package onboarding

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hris-onboarding/internal/catalog"
	onboardingerrors "hris-onboarding/internal/onboarding/errors"
	"hris-onboarding/internal/shared/apperror"
)

type Action string

const (
	ActionUpload      Action = "upload"
	ActionVerify      Action = "verify"
	ActionReject      Action = "reject"
	ActionSign        Action = "sign"
	ActionAcknowledge Action = "acknowledge"
)

// TransitionMeta carries the inputs an action may need.
type TransitionMeta struct {
	ActorID       string
	Reason        string
	FileReference string
	At            time.Time
}

// SatisfiedState is the terminal state that completes d. Signature wins over
// acknowledgment, which wins over upload. ok is false for a document without
// requirement flags, which any of verified, signed or acknowledged satisfies.
func SatisfiedState(d Document) (state DocumentStatus, ok bool) {
	switch {
	case d.RequiresSignature:
		return DocSigned, true
	case d.RequiresAcknowledgment:
		return DocAcknowledged, true
	case d.RequiresUpload:
		return DocVerified, true
	}
	return "", false
}

func IsSatisfied(d Document) bool {
	if target, ok := SatisfiedState(d); ok {
		return d.Status == target
	}
	switch d.Status {
	case DocVerified, DocSigned, DocAcknowledged:
		return true
	}
	return false
}

// leadsToSatisfaction reports whether reaching state moves d towards its satisfied state.
func leadsToSatisfaction(d Document, state DocumentStatus) bool {
	target, ok := SatisfiedState(d)
	return !ok || target == state
}

// Transition applies action to a copy of d. On error d is untouched and the
// returned document is the zero value.
func Transition(d Document, action Action, meta TransitionMeta) (Document, error) {
	at := meta.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	switch action {
	case ActionUpload:
		if d.Status != DocPending && d.Status != DocRejected {
			return Document{}, invalidTransition(d, action)
		}
		if !leadsToSatisfaction(d, DocVerified) {
			return Document{}, apperror.Derive(onboardingerrors.ErrInvalidTransition,
				fmt.Sprintf("document %q does not accept uploads", d.Title), transitionDetails(d, action))
		}
		d.Status = DocUploaded
		if ref := strings.TrimSpace(meta.FileReference); ref != "" {
			d.FileReference = &ref
		}
		d.RejectionReason = nil
		d.VerifiedBy = nil
		d.VerifiedAt = nil
		d.UploadedAt = &at

	case ActionVerify:
		actor, err := parseActor(meta.ActorID)
		if err != nil {
			return Document{}, err
		}
		if d.Status != DocUploaded {
			return Document{}, invalidTransition(d, action)
		}
		d.Status = DocVerified
		d.VerifiedBy = &actor
		d.VerifiedAt = &at

	case ActionReject:
		reason := strings.TrimSpace(meta.Reason)
		if reason == "" {
			return Document{}, onboardingerrors.ErrRejectionReasonRequired
		}
		actor, err := parseActor(meta.ActorID)
		if err != nil {
			return Document{}, err
		}
		if d.Status != DocUploaded {
			return Document{}, invalidTransition(d, action)
		}
		d.Status = DocRejected
		d.RejectionReason = &reason
		d.VerifiedBy = &actor
		d.VerifiedAt = &at

	case ActionSign:
		if d.Status != DocPending || !d.RequiresSignature {
			return Document{}, invalidTransition(d, action)
		}
		d.Status = DocSigned
		d.SignedAt = &at

	case ActionAcknowledge:
		if d.Status != DocPending || !d.RequiresAcknowledgment || !leadsToSatisfaction(d, DocAcknowledged) {
			return Document{}, invalidTransition(d, action)
		}
		d.Status = DocAcknowledged
		d.AcknowledgedAt = &at

	default:
		return Document{}, invalidTransition(d, action)
	}

	d.UpdatedAt = at
	return d, nil
}

func invalidTransition(d Document, action Action) error {
	return apperror.Derive(onboardingerrors.ErrInvalidTransition,
		fmt.Sprintf("cannot %s document %q while it is %s", action, d.Title, d.Status),
		transitionDetails(d, action))
}

func transitionDetails(d Document, action Action) map[string]string {
	return map[string]string{
		"document_id":    d.ID.String(),
		"current_status": string(d.Status),
		"action":         string(action),
	}
}

func parseActor(actorID string) (uuid.UUID, error) {
	actor, err := uuid.Parse(strings.TrimSpace(actorID))
	if err != nil {
		return uuid.Nil, onboardingerrors.ErrActorRequired
	}
	return actor, nil
}

// AssignOptions controls how catalog entries become ledger rows.
type AssignOptions struct {
	// DueDays overrides each entry's due_days when positive.
	DueDays int
	// FallbackDueDays applies when neither DueDays nor the entry sets one.
	FallbackDueDays int
	// IsRequired overrides each entry's required flag when set.
	IsRequired *bool
	At         time.Time
}

// BuildDocuments creates pending rows for specs. Persisting them with
// ON CONFLICT DO NOTHING makes assignment idempotent per (employee, type).
func BuildDocuments(rec Record, specs []catalog.DocumentType, opts AssignOptions) []Document {
	at := opts.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	docs := make([]Document, 0, len(specs))
	for _, spec := range specs {
		required := spec.IsRequired()
		if opts.IsRequired != nil {
			required = *opts.IsRequired
		}

		dueDays := spec.DueDays
		if opts.DueDays > 0 {
			dueDays = opts.DueDays
		}
		if dueDays <= 0 {
			dueDays = opts.FallbackDueDays
		}
		var due *time.Time
		if dueDays > 0 {
			d := at.AddDate(0, 0, dueDays)
			due = &d
		}

		docs = append(docs, Document{
			ID:                     uuid.New(),
			CompanyID:              rec.CompanyID,
			EmployeeID:             rec.EmployeeID,
			OnboardingID:           rec.ID,
			DocumentType:           spec.Type,
			Title:                  spec.Title,
			Phase:                  spec.Phase,
			SortOrder:              spec.SortOrder,
			RequiresUpload:         spec.RequiresUpload,
			RequiresSignature:      spec.RequiresSignature,
			RequiresAcknowledgment: spec.RequiresAcknowledgment,
			IsRequired:             required,
			Status:                 DocPending,
			DueDate:                due,
			CreatedAt:              at,
			UpdatedAt:              at,
		})
	}
	return docs
}

// MissingFrom returns the specs whose type is not yet in the ledger.
func MissingFrom(existing []Document, specs []catalog.DocumentType) []catalog.DocumentType {
	have := make(map[string]bool, len(existing))
	for _, d := range existing {
		have[d.DocumentType] = true
	}
	var missing []catalog.DocumentType
	for _, s := range specs {
		if !have[s.Type] {
			missing = append(missing, s)
		}
	}
	return missing
}
