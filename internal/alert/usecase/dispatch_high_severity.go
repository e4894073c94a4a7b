package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"monitor-srv/internal/alert"
	"monitor-srv/pkg/discord"
)

func (uc *implUseCase) HighSeverityFindings(ctx context.Context, input alert.HighSeverityFindingsInput) error {
	if len(input.Findings) == 0 {
		return alert.ErrNoFindings
	}

	fields := []discord.EmbedField{
		buildField("High Severity", strconv.Itoa(len(input.Findings)), true),
		buildField("Total Findings", strconv.Itoa(input.TotalFindings), true),
		buildField("Run Timestamp", input.RunTimestamp.UTC().Format(time.RFC3339), true),
	}

	// Limit to 3 sample findings
	count := 3
	if len(input.Findings) < 3 {
		count = len(input.Findings)
	}
	samples := make([]string, count)
	for i, f := range input.Findings[:count] {
		samples[i] = fmt.Sprintf("> %s %s: %s", f.ShipmentID, f.Type, f.Details.Message)
	}
	fields = append(fields, buildField("Sample", strings.Join(samples, "\n"), false))

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeWarning,
		Title:       "High severity exceptions detected",
		Description: fmt.Sprintf("%d high severity findings need operator attention.", len(input.Findings)),
		Fields:      fields,
		Timestamp:   time.Now(),
		Footer: &discord.EmbedFooter{
			Text: "Monitor Service • Exception Watch",
		},
	}

	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.HighSeverityFindings: %v", err)
		return err
	}
	return nil
}
