package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/services/reconcile"
	"github.com/bwmarrin/discordgo"
)

// Embed colors
const (
	colorSuccess   = 0x00ff00
	colorError     = 0xff0000
	colorInfo      = 0x3498db
	colorSummary   = 0x9b59b6
	colorMilestone = 0xf1c40f
	colorAlert     = 0xe67e22
)

// profilePlayLimit is how many recent plays the stats view shows
const profilePlayLimit = 5

func newEmbed(title, description string, color int, fields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

func field(name, value string, inline bool) *discordgo.MessageEmbedField {
	if value == "" {
		value = "-"
	}
	return &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}

func formatRating(rating *float64) string {
	if rating == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", *rating)
}

func formatPlay(play *models.Play) string {
	if play.Chart == "" {
		return play.Title
	}
	return fmt.Sprintf("%s [%s]", play.Title, play.Chart)
}

// renderSummary renders an ended session
func renderSummary(summary *models.SessionSummary, title, description string) *discordgo.MessageEmbed {
	records := "None"
	if len(summary.NewRecords) > 0 {
		names := make([]string, 0, len(summary.NewRecords))
		for _, play := range summary.NewRecords {
			names = append(names, formatPlay(play))
		}
		records = strings.Join(names, ", ")
	}

	gained := "N/A"
	if delta, ok := summary.RatingDelta(); ok {
		gained = fmt.Sprintf("%+.3f", delta)
	}

	milestone := "None"
	if summary.Milestone != "" {
		milestone = summary.Milestone
	}

	player := summary.PlayerName
	if player == "" {
		player = "Player"
	}

	return newEmbed(title, fmt.Sprintf(description, player), colorSummary,
		field("Duration", fmt.Sprintf("%.1f min", summary.Duration.Minutes()), true),
		field("Songs Played", fmt.Sprintf("%d", summary.SongsPlayed), true),
		field("New Records", records, false),
		field("Rating Gained", gained, true),
		field("Initial Rating", formatRating(summary.InitialRating), true),
		field("Final Rating", formatRating(summary.FinalRating), true),
		field("Milestone", milestone, true),
	)
}

// renderCheckoutSummary renders the summary shown to a player who checked out
func renderCheckoutSummary(summary *models.SessionSummary) *discordgo.MessageEmbed {
	return renderSummary(summary, "Session Summary", "Thanks for playing, **%s**!")
}

// renderAutoCheckoutSummary renders the summary posted when a session times out
func renderAutoCheckoutSummary(summary *models.SessionSummary) *discordgo.MessageEmbed {
	return renderSummary(summary, "Checked Out",
		"Session summary for **%s**. This session was ended automatically due to inactivity.")
}

// renderLeaderboard renders ranked players
func renderLeaderboard(entries []*models.LeaderboardEntry) *discordgo.MessageEmbed {
	if len(entries) == 0 {
		return newEmbed("Arcade Leaderboard", "No ranked players yet.", colorInfo)
	}

	var sb strings.Builder
	for _, entry := range entries {
		name := entry.DisplayName
		if name == "" {
			name = entry.ExternalID
		}
		sb.WriteString(fmt.Sprintf("**#%d** %s - %s", entry.Rank, name, formatRating(entry.SkillRating)))
		if entry.LinkedAccountID != "" {
			sb.WriteString(fmt.Sprintf(" (<@%s>)", entry.LinkedAccountID))
		}
		sb.WriteString("\n")
	}

	return newEmbed("Arcade Leaderboard", sb.String(), colorInfo)
}

// renderProfile renders a player's stats and latest plays
func renderProfile(profile *models.PlayerProfile, tier string) *discordgo.MessageEmbed {
	name := profile.DisplayName
	if name == "" {
		name = profile.ExternalID
	}

	rank := "Unranked"
	if profile.Rank != nil {
		rank = fmt.Sprintf("#%d", *profile.Rank)
	}

	if tier == "" {
		tier = "N/A"
	}

	fields := []*discordgo.MessageEmbedField{
		field("Player ID", profile.ExternalID, true),
		field("Rating", formatRating(profile.SkillRating), true),
		field("Class", tier, true),
		field("Rank", rank, true),
	}

	plays := profile.RecentPlays
	if len(plays) > profilePlayLimit {
		plays = plays[:profilePlayLimit]
	}

	if len(plays) == 0 {
		fields = append(fields, field("Recent Plays", "No plays recorded", false))
	}
	for _, play := range plays {
		value := fmt.Sprintf("%s %s - %s", play.Grade, play.ClearType, play.Score)
		if play.IsNewRecord {
			value += " (new record)"
		}
		if play.Timestamp != "" {
			value += "\n" + play.Timestamp
		}
		fields = append(fields, field(formatPlay(play), strings.TrimSpace(value), false))
	}

	embed := newEmbed(name, "", colorInfo, fields...)
	if !profile.LastUpdated.IsZero() {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: "Last updated " + profile.LastUpdated.Format(time.RFC822),
		}
	}
	return embed
}

// renderIdleReminder renders the DM sent when a session goes idle
func renderIdleReminder() *discordgo.MessageEmbed {
	return newEmbed("Your Session is Idle", "Your session has been paused due to inactivity.", colorInfo,
		field("What Happens Next?", "If you remain inactive for 5 more minutes, your session will be automatically checked out.", false),
		field("How to Resume?", "Start a new play. Your session will resume automatically.", false),
		field("Taking a Longer Break?", "Use `/arcade break` to pause your session and free up the machine for others.", false),
		field("Finished Playing?", "Use `/arcade checkout` to end your session now.", false),
	)
}

// renderMilestone renders a milestone announcement
func renderMilestone(playerName, tierName string) *discordgo.MessageEmbed {
	if playerName == "" {
		playerName = "A player"
	}
	return newEmbed("Milestone Reached!",
		fmt.Sprintf("**%s** has reached **%s**!", playerName, tierName), colorMilestone)
}

// renderAlert renders an admin alert
func renderAlert(message string) *discordgo.MessageEmbed {
	return newEmbed("System Alert", message, colorAlert)
}

// renderStatus renders the admin bot status view
func renderStatus(status reconcile.Status, sessionCount int, active *models.SessionRecord) *discordgo.MessageEmbed {
	scraping := "UP"
	color := colorSuccess
	if status.Breaker.Down {
		scraping = "DOWN"
		color = colorError
	}

	lastTick := "Never"
	if !status.LastTick.IsZero() {
		lastTick = status.LastTick.Format(time.RFC822)
	}

	holder := "Nobody"
	if active != nil {
		holder = fmt.Sprintf("<@%s>", active.AccountID)
	}

	fields := []*discordgo.MessageEmbedField{
		field("Scraping", scraping, true),
		field("Consecutive Failures", fmt.Sprintf("%d", status.Breaker.ConsecutiveFailures), true),
		field("Sessions", fmt.Sprintf("%d", sessionCount), true),
		field("Machine Holder", holder, true),
		field("Last Tick", lastTick, true),
	}
	if status.LastError != "" {
		fields = append(fields, field("Last Error", status.LastError, false))
	}

	return newEmbed("Bot Status", "", color, fields...)
}

// renderSuccess renders a short confirmation
func renderSuccess(title, description string) *discordgo.MessageEmbed {
	return newEmbed(title, description, colorSuccess)
}

// renderFailure renders a rejection
func renderFailure(title, description string) *discordgo.MessageEmbed {
	return newEmbed(title, description, colorError)
}
