package notify

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/geoquest/GeoQuest_Go/internal/domain"
)

const (
	colorTaskComplete = 0x2ecc71 // Green
	colorCheckin      = 0x3498db // Blue

	embedTitle  = "🌱 Care Verified!"
	footerText  = "GeoQuest"
	webhookPath = "/api/webhooks/"
)

// webhookExecutor is the part of *discordgo.Session used for webhooks
type webhookExecutor interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// DiscordNotifier posts committed care verifications to a Discord webhook
type DiscordNotifier struct {
	session   webhookExecutor
	webhookID string
	token     string
}

// NewDiscordNotifier parses a webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>
func NewDiscordNotifier(webhookURL string) (*DiscordNotifier, error) {
	id, token, err := parseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	return &DiscordNotifier{session: session, webhookID: id, token: token}, nil
}

// NotifyCareVerified sends one embed summarising the verification
func (n *DiscordNotifier) NotifyCareVerified(ctx context.Context, plant domain.Plant, result domain.CareVerificationResult) error {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{buildEmbed(plant, result)},
	}
	if _, err := n.session.WebhookExecute(n.webhookID, n.token, false, params, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("discord webhook failed: %w", err)
	}
	return nil
}

func buildEmbed(plant domain.Plant, result domain.CareVerificationResult) *discordgo.MessageEmbed {
	name := plant.Name
	if name == "" {
		name = plant.ID
	}

	color := colorCheckin
	if result.TaskAdvanced {
		color = colorTaskComplete
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Health", Value: fmt.Sprintf("%d/100", result.HealthScore), Inline: true},
		{Name: "Status", Value: result.Status, Inline: true},
		{Name: "XP", Value: fmt.Sprintf("+%d (total %d)", result.XPGained, result.TotalXP), Inline: true},
	}
	if result.Tip != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Tip", Value: result.Tip})
	}

	embed := &discordgo.MessageEmbed{
		Title:       embedTitle,
		Description: fmt.Sprintf("**%s** was checked in (%s)", name, actionLabel(result.CareLog.Action)),
		Color:       color,
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: footerText},
	}
	if !result.CareLog.CreatedAt.IsZero() {
		embed.Timestamp = result.CareLog.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	if result.CareLog.PhotoURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: result.CareLog.PhotoURL}
	}
	return embed
}

// actionLabel renders TASK_COMPLETE as "Task Complete"
func actionLabel(action domain.CareAction) string {
	words := strings.ReplaceAll(strings.ToLower(string(action)), "_", " ")
	return cases.Title(language.English).String(words)
}

func parseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", "", fmt.Errorf("invalid discord webhook url: %w", err)
	}
	i := strings.Index(u.Path, webhookPath)
	if u.Host == "" || i < 0 {
		return "", "", errors.New("invalid discord webhook url: expected /api/webhooks/<id>/<token>")
	}
	parts := strings.Split(strings.Trim(u.Path[i+len(webhookPath):], "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errors.New("invalid discord webhook url: expected /api/webhooks/<id>/<token>")
	}
	return parts[0], parts[1], nil
}
