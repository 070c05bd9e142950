package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/nowplaying/internal/services/directory"
	"github.com/KirkDiggler/nowplaying/internal/services/reconcile"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
	"github.com/bwmarrin/discordgo"
)

var adminPermission int64 = discordgo.PermissionAdministrator

// StatusProvider reports the reconciliation loop state
type StatusProvider interface {
	Status() reconcile.Status
}

// AdminCommand handles the /arcade-admin command
type AdminCommand struct {
	BaseCommand
	directory directory.Service
	sessions  session.Service
	status    StatusProvider
}

// NewAdminCommand creates a new admin command handler
func NewAdminCommand(directoryService directory.Service, sessionService session.Service, status StatusProvider) *AdminCommand {
	return &AdminCommand{
		BaseCommand: BaseCommand{
			Name:        "arcade-admin",
			Description: "Arcade administration",
			Permissions: &adminPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "checkout",
					Description: "Force end a member's session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Member to check out",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unlink",
					Description: "Remove a member's player ID link",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "user",
							Description: "Member to unlink",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show bot and scraper status",
				},
			},
		},
		directory: directoryService,
		sessions:  sessionService,
		status:    status,
	}
}

// Handle processes a Discord interaction for the admin command
func (c *AdminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	ctx := context.Background()
	sub := data.Options[0]

	var result *discordgo.InteractionResponseData
	switch sub.Name {
	case "checkout":
		result = c.forceCheckout(ctx, userOption(sub.Options, "user"))
	case "unlink":
		result = c.unlink(ctx, userOption(sub.Options, "user"))
	case "status":
		result = c.showStatus(ctx)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}

	return respond(s, i, result)
}

func (c *AdminCommand) forceCheckout(ctx context.Context, accountID string) *discordgo.InteractionResponseData {
	if accountID == "" {
		return ephemeral(renderFailure("Checkout Failed", "A member is required."))
	}

	out, err := c.sessions.ForceEnd(ctx, &session.EndInput{AccountID: accountID})
	if err != nil {
		log.Printf("Error force ending session for %s: %v", accountID, err)
		return ephemeral(renderFailure("Checkout Failed", "Something went wrong, please try again later."))
	}
	if out.Summary == nil {
		return ephemeral(renderFailure("Checkout Failed", fmt.Sprintf("<@%s> does not have a session.", accountID)))
	}

	return ephemeral(renderCheckoutSummary(out.Summary))
}

func (c *AdminCommand) unlink(ctx context.Context, accountID string) *discordgo.InteractionResponseData {
	if accountID == "" {
		return ephemeral(renderFailure("Unlink Failed", "A member is required."))
	}

	out, err := c.directory.Unlink(ctx, &directory.UnlinkInput{AccountID: accountID})
	if err != nil {
		log.Printf("Error unlinking %s: %v", accountID, err)
		return ephemeral(renderFailure("Unlink Failed", "Something went wrong, please try again later."))
	}
	if !out.Success {
		return ephemeral(renderFailure("Unlink Failed", fmt.Sprintf("<@%s> is not linked.", accountID)))
	}

	return ephemeral(renderSuccess("Unlinked", fmt.Sprintf("<@%s> is no longer linked to %s.", accountID, out.ExternalID)))
}

func (c *AdminCommand) showStatus(ctx context.Context) *discordgo.InteractionResponseData {
	sessions, err := c.sessions.ListSessions(ctx)
	if err != nil {
		log.Printf("Error listing sessions: %v", err)
		return ephemeral(renderFailure("Status", "Something went wrong, please try again later."))
	}

	active, err := c.sessions.GetActive(ctx)
	if err != nil {
		log.Printf("Error getting active session: %v", err)
		return ephemeral(renderFailure("Status", "Something went wrong, please try again later."))
	}

	var status reconcile.Status
	if c.status != nil {
		status = c.status.Status()
	}

	return ephemeral(renderStatus(status, len(sessions.Sessions), active.Session))
}
