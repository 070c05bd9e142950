package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/nowplaying/internal/services/directory"
	"github.com/KirkDiggler/nowplaying/internal/services/performance"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

// ArcadeCommand handles the /arcade command
type ArcadeCommand struct {
	BaseCommand
	directory directory.Service
	sessions  session.Service
	evaluator *performance.Evaluator
}

// NewArcadeCommand creates a new arcade command handler
func NewArcadeCommand(directoryService directory.Service, sessionService session.Service, evaluator *performance.Evaluator) *ArcadeCommand {
	return &ArcadeCommand{
		BaseCommand: BaseCommand{
			Name:        "arcade",
			Description: "Arcade session and stats commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "link",
					Description: "Link your Discord account to your player ID",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Your 8 digit player ID (e.g. 1234-5678)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "checkin",
					Description: "Start your play session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "checkout",
					Description: "End your play session",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "break",
					Description: "Pause your session and free up the machine",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the arcade leaderboard",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stats",
					Description: "Show player stats and recent plays",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "id",
							Description: "Player ID, defaults to your linked profile",
						},
					},
				},
			},
		},
		directory: directoryService,
		sessions:  sessionService,
		evaluator: evaluator,
	}
}

// Handle processes a Discord interaction for the arcade command
func (c *ArcadeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	userID := interactionUserID(i)
	sub := data.Options[0]

	// Linking scrapes the profile, which can outlast the interaction deadline
	if sub.Name == "link" {
		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
		}); err != nil {
			return err
		}

		result := c.link(ctx, userID, stringOption(sub.Options, "id"))
		_, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Embeds: &result.Embeds,
		})
		return err
	}

	var result *discordgo.InteractionResponseData
	switch sub.Name {
	case "checkin":
		result = c.checkin(ctx, userID)
	case "checkout":
		result = c.checkout(ctx, userID)
	case "break":
		result = c.takeBreak(ctx, userID)
	case "leaderboard":
		result = c.leaderboard(ctx)
	case "stats":
		result = c.stats(ctx, userID, stringOption(sub.Options, "id"))
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}

	return respond(s, i, result)
}

func (c *ArcadeCommand) link(ctx context.Context, userID, rawID string) *discordgo.InteractionResponseData {
	out, err := c.directory.Link(ctx, &directory.LinkInput{
		AccountID:  userID,
		ExternalID: rawID,
	})
	if err != nil {
		log.Printf("Error linking %s to %s: %v", userID, rawID, err)
		return ephemeral(renderFailure("Link Failed", "Something went wrong, please try again later."))
	}

	if !out.Success {
		switch out.Failure {
		case directory.LinkFailureHeldByOther:
			return ephemeral(renderFailure("Link Failed", "That player ID is already linked to another member."))
		default:
			return ephemeral(renderFailure("Link Failed", "Player IDs look like `12345678` or `1234-5678`."))
		}
	}

	name := out.Profile.DisplayName
	if name == "" {
		name = out.Profile.ExternalID
	}
	return ephemeral(renderSuccess("Account Linked", fmt.Sprintf("You are now linked to **%s**.", name)))
}

func (c *ArcadeCommand) checkin(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	profile, err := c.directory.GetProfileByAccount(ctx, &directory.GetProfileByAccountInput{AccountID: userID})
	if err != nil {
		log.Printf("Error looking up profile for %s: %v", userID, err)
		return ephemeral(renderFailure("Check-in Failed", "Something went wrong, please try again later."))
	}
	if profile.Profile == nil {
		return ephemeral(renderFailure("Check-in Failed", "You must link your player ID first using `/arcade link`."))
	}

	out, err := c.sessions.StartManual(ctx, &session.StartManualInput{AccountID: userID})
	if err != nil {
		log.Printf("Error checking in %s: %v", userID, err)
		return ephemeral(renderFailure("Check-in Failed", "Something went wrong, please try again later."))
	}
	if !out.Success {
		return ephemeral(renderFailure("Check-in Failed", "Another player's session is already active."))
	}

	return ephemeral(renderSuccess("Session Started", "You have successfully checked in."))
}

func (c *ArcadeCommand) checkout(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	out, err := c.sessions.End(ctx, &session.EndInput{AccountID: userID})
	if err != nil {
		log.Printf("Error checking out %s: %v", userID, err)
		return ephemeral(renderFailure("Checkout Failed", "Something went wrong, please try again later."))
	}
	if out.Summary == nil {
		return ephemeral(renderFailure("Checkout Failed", "You do not have an active session."))
	}

	return public(renderCheckoutSummary(out.Summary))
}

func (c *ArcadeCommand) takeBreak(ctx context.Context, userID string) *discordgo.InteractionResponseData {
	out, err := c.sessions.Pause(ctx, &session.PauseInput{AccountID: userID})
	if err != nil {
		log.Printf("Error pausing session for %s: %v", userID, err)
		return ephemeral(renderFailure("Break Failed", "Something went wrong, please try again later."))
	}
	if !out.Success {
		return ephemeral(renderFailure("Break Failed", "You can only take a break during an active session."))
	}

	return ephemeral(renderSuccess("On Break", "Your session is paused. Play a song to resume or use `/arcade checkout` when you're done."))
}

func (c *ArcadeCommand) leaderboard(ctx context.Context) *discordgo.InteractionResponseData {
	out, err := c.directory.GetLeaderboard(ctx, &directory.GetLeaderboardInput{})
	if err != nil {
		log.Printf("Error getting leaderboard: %v", err)
		return ephemeral(renderFailure("Leaderboard", "Something went wrong, please try again later."))
	}

	return public(renderLeaderboard(out.Entries))
}

func (c *ArcadeCommand) stats(ctx context.Context, userID, rawID string) *discordgo.InteractionResponseData {
	var out *directory.GetProfileOutput
	var err error
	if rawID != "" {
		externalID, ok := directory.NormalizeExternalID(rawID)
		if !ok {
			return ephemeral(renderFailure("Stats", "Player IDs look like `12345678` or `1234-5678`."))
		}
		out, err = c.directory.GetProfile(ctx, &directory.GetProfileInput{ExternalID: externalID})
	} else {
		out, err = c.directory.GetProfileByAccount(ctx, &directory.GetProfileByAccountInput{AccountID: userID})
	}
	if err != nil {
		log.Printf("Error getting stats: %v", err)
		return ephemeral(renderFailure("Stats", "Something went wrong, please try again later."))
	}

	if out.Profile == nil {
		if rawID == "" {
			return ephemeral(renderFailure("Stats", "You have not linked a player ID yet. Use `/arcade link`."))
		}
		return ephemeral(renderFailure("Stats", "No player found with that ID."))
	}

	return public(renderProfile(out.Profile, c.evaluator.TierFor(out.Profile.SkillRating)))
}
