package usecase

import (
	"context"
	"time"

	"monitor-srv/internal/model"
	"monitor-srv/internal/notification"
	"monitor-srv/pkg/a2a"
	"monitor-srv/pkg/locale"
)

// dispatchDetails is the payload handed to the exception-handling agent:
// the finding evidence plus the pre-generated notification id and the
// rendered customer message.
type dispatchDetails struct {
	model.FindingDetails
	NotificationID string    `json:"notification_id"`
	DetectedAt     time.Time `json:"detected_at"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	Language       string    `json:"language"`
}

// notificationTypeForFinding maps an exception type onto the customer
// template family: schedule slips reuse the delayed template, everything
// else the generic exception one.
func notificationTypeForFinding(typ model.ExceptionType) model.NotificationType {
	if typ == model.ExceptionTypeDelay {
		return model.NotificationTypeDelayed
	}
	return model.NotificationTypeException
}

func (uc *implUseCase) DispatchFindings(ctx context.Context, findings []model.Finding) (notification.DispatchOutput, error) {
	out := notification.DispatchOutput{
		Outcomes: make([]notification.DispatchOutcome, 0, len(findings)),
	}
	lang := locale.DefaultLang

	for i, f := range findings {
		if err := ctx.Err(); err != nil {
			uc.l.Warnf(ctx, "internal.notification.usecase.DispatchFindings: cancelled with %d findings pending", len(findings)-i)
			for _, rest := range findings[i:] {
				out.Outcomes = append(out.Outcomes, notification.DispatchOutcome{Finding: rest, Err: err})
			}
			return out, nil
		}

		// The id exists before the call so a failed dispatch still shows up
		// correlated in the agent's and our logs.
		id := uc.newNotificationID()

		tmpl, _ := resolveTemplate(notificationTypeForFinding(f.Type), lang)
		data := placeholderTemplateData(f.ShipmentID, uc.trackingURL(f.ShipmentID))
		if f.Details.ContainerID != "" {
			data.Container = f.Details.ContainerID
		}
		data.Extra = map[string]string{
			"delay_reason":      f.Details.Message,
			"exception_details": f.Details.Message,
		}
		subject, body := renderTemplate(tmpl, data)

		err := uc.agent.SendMessage(ctx, a2a.Message{
			Skill:      a2a.SkillHandleException,
			Type:       string(f.Type),
			Severity:   string(f.Severity),
			ShipmentID: f.ShipmentID,
			Details: dispatchDetails{
				FindingDetails: f.Details,
				NotificationID: id,
				DetectedAt:     f.DetectedAt,
				Subject:        subject,
				Body:           body,
				Language:       lang,
			},
		})

		if err != nil {
			uc.l.Errorf(ctx, "internal.notification.usecase.DispatchFindings: %s for %s: %v", f.Type, f.ShipmentID, err)
		} else {
			uc.l.Infof(ctx, "internal.notification.usecase.DispatchFindings: dispatched %s for %s as %s", f.Type, f.ShipmentID, id)
			out.Sent++
		}

		out.Outcomes = append(out.Outcomes, notification.DispatchOutcome{
			Finding:        f,
			NotificationID: id,
			Sent:           err == nil,
			Attempted:      true,
			Err:            err,
		})
	}

	return out, nil
}
