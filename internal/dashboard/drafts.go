package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"krishi-dashboard/internal/api"
	apperrors "krishi-dashboard/internal/common/errors"
	"krishi-dashboard/internal/common/logger"
	"krishi-dashboard/internal/records"
)

// AlertDraft is an alert broadcast under composition. Transient; discarded
// drafts leave no trace.
type AlertDraft struct {
	Type      string
	Title     string
	Message   string
	Districts []string
	Priority  string
}

// SchemeDraft is a scheme registration under composition.
type SchemeDraft struct {
	Name     string
	Category string
	Budget   string
	Deadline string
}

// ReportDraft is a report job under composition.
type ReportDraft struct {
	Title string
	Type  string
	From  string
	To    string
}

// Submitter validates drafts, posts them through the API client, and merges
// the created entity into the owning page's collection.
type Submitter struct {
	client *api.Client
	log    logger.Logger
}

// NewSubmitter builds a draft submitter.
func NewSubmitter(client *api.Client, log logger.Logger) *Submitter {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Submitter{client: client, log: log}
}

// SubmitAlert validates and posts an alert draft. On success the created
// record is merged into alerts and returned. On any failure the collection
// is untouched and the draft stays editable.
func (s *Submitter) SubmitAlert(ctx context.Context, draft AlertDraft, alerts *Controller) (records.Record, error) {
	candidate := map[string]interface{}{
		"id":        "A-" + uuid.NewString(),
		"title":     strings.TrimSpace(draft.Title),
		"message":   strings.TrimSpace(draft.Message),
		"type":      draft.Type,
		"priority":  draft.Priority,
		"status":    records.StatusProcessing,
		"districts": draft.Districts,
		"sentAt":    time.Now().UTC().Format(time.RFC3339),
	}
	rec, err := records.Normalize(candidate, records.TypeAlert)
	if err != nil {
		return records.Record{}, draftError("alert", err)
	}

	created, err := s.client.CreateAlert(ctx, api.AlertRequest{
		Type:      draft.Type,
		Title:     draft.Title,
		Message:   draft.Message,
		Districts: draft.Districts,
		Priority:  draft.Priority,
	})
	if err != nil {
		return records.Record{}, err
	}

	rec = s.adopt(created, candidate, records.TypeAlert, rec)
	alerts.Merge(rec)
	return rec, nil
}

// SubmitScheme validates and posts a scheme draft.
func (s *Submitter) SubmitScheme(ctx context.Context, draft SchemeDraft, schemes *Controller) (records.Record, error) {
	candidate := map[string]interface{}{
		"id":       "S-" + uuid.NewString(),
		"name":     strings.TrimSpace(draft.Name),
		"category": draft.Category,
		"status":   records.StatusNew,
		"budget":   draft.Budget,
		"deadline": draft.Deadline,
	}
	rec, err := records.Normalize(candidate, records.TypeScheme)
	if err != nil {
		return records.Record{}, draftError("scheme", err)
	}

	created, err := s.client.CreateScheme(ctx, api.SchemeRequest{
		Name:     draft.Name,
		Category: draft.Category,
		Status:   records.StatusNew,
		Budget:   draft.Budget,
		Deadline: draft.Deadline,
	})
	if err != nil {
		return records.Record{}, err
	}

	rec = s.adopt(created, candidate, records.TypeScheme, rec)
	schemes.Merge(rec)
	return rec, nil
}

// SubmitReport validates and posts a report job draft.
func (s *Submitter) SubmitReport(ctx context.Context, draft ReportDraft, reports *Controller) (records.Record, error) {
	candidate := map[string]interface{}{
		"id":     "R-" + uuid.NewString(),
		"title":  strings.TrimSpace(draft.Title),
		"type":   draft.Type,
		"status": records.StatusProcessing,
		"dateRange": map[string]interface{}{
			"from": draft.From,
			"to":   draft.To,
		},
	}
	rec, err := records.Normalize(candidate, records.TypeReport)
	if err != nil {
		return records.Record{}, draftError("report", err)
	}

	created, err := s.client.CreateReport(ctx, api.ReportRequest{
		Title:     draft.Title,
		Type:      draft.Type,
		DateRange: map[string]string{"from": draft.From, "to": draft.To},
	})
	if err != nil {
		return records.Record{}, err
	}

	rec = s.adopt(created, candidate, records.TypeReport, rec)
	reports.Merge(rec)
	return rec, nil
}

// adopt prefers the entity the backend reports over the local candidate, but
// only when the backend's version survives the normalizer; a partial echo
// falls back to the validated local record.
func (s *Submitter) adopt(created, candidate map[string]interface{}, typ records.RecordType, local records.Record) records.Record {
	if len(created) == 0 {
		return local
	}
	if _, ok := created["id"]; !ok {
		// Backend accepted but supplied no identifier; keep the uuid one.
		created["id"] = candidate["id"]
	}
	merged := make(map[string]interface{}, len(candidate))
	for k, v := range candidate {
		merged[k] = v
	}
	for k, v := range created {
		merged[k] = v
	}
	rec, err := records.Normalize(merged, typ)
	if err != nil {
		s.log.Warn("created entity failed normalization, keeping local draft record", map[string]interface{}{
			"recordType": string(typ),
			"error":      err.Error(),
		})
		return local
	}
	return rec
}

func draftError(draftType string, err error) *apperrors.DashboardError {
	details := err.Error()
	var de *apperrors.DashboardError
	if errors.As(err, &de) && de.Details != "" {
		details = de.Details
	}
	return apperrors.NewDraftInvalidError(draftType, details)
}
