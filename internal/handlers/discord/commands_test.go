package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/services/directory"
	directoryMocks "github.com/KirkDiggler/nowplaying/internal/services/directory/mocks"
	"github.com/KirkDiggler/nowplaying/internal/services/performance"
	"github.com/KirkDiggler/nowplaying/internal/services/reconcile"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
	sessionMocks "github.com/KirkDiggler/nowplaying/internal/services/session/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type staticStatus struct {
	status reconcile.Status
}

func (s *staticStatus) Status() reconcile.Status {
	return s.status
}

type CommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockDirectory *directoryMocks.MockService
	mockSessions  *sessionMocks.MockService
	ctx           context.Context

	arcade *ArcadeCommand
	admin  *AdminCommand
}

func (s *CommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDirectory = directoryMocks.NewMockService(s.mockCtrl)
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	evaluator, err := performance.New(nil)
	s.Require().NoError(err)

	s.arcade = NewArcadeCommand(s.mockDirectory, s.mockSessions, evaluator)
	s.admin = NewAdminCommand(s.mockDirectory, s.mockSessions, &staticStatus{
		status: reconcile.Status{Breaker: reconcile.BreakerStatus{ConsecutiveFailures: 1}},
	})
}

func (s *CommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CommandsTestSuite) single(data *discordgo.InteractionResponseData) *discordgo.MessageEmbed {
	s.Require().NotNil(data)
	s.Require().Len(data.Embeds, 1)
	return data.Embeds[0]
}

func (s *CommandsTestSuite) isEphemeral(data *discordgo.InteractionResponseData) bool {
	return data.Flags&discordgo.MessageFlagsEphemeral != 0
}

func (s *CommandsTestSuite) TestCommandDefinitions() {
	arcade := s.arcade.GetCommand()
	s.Equal("arcade", arcade.Name)
	s.Nil(arcade.DefaultMemberPermissions)

	names := []string{}
	for _, opt := range arcade.Options {
		names = append(names, opt.Name)
	}
	s.Equal([]string{"link", "checkin", "checkout", "break", "leaderboard", "stats"}, names)

	admin := s.admin.GetCommand()
	s.Equal("arcade-admin", admin.Name)
	s.Require().NotNil(admin.DefaultMemberPermissions)
	s.Equal(int64(discordgo.PermissionAdministrator), *admin.DefaultMemberPermissions)
}

func (s *CommandsTestSuite) TestLink() {
	s.mockDirectory.EXPECT().Link(s.ctx, &directory.LinkInput{AccountID: "A", ExternalID: "1234-5678"}).
		Return(&directory.LinkOutput{
			Success: true,
			Profile: &models.PlayerProfile{ExternalID: "12345678", DisplayName: "ALICE"},
		}, nil)

	data := s.arcade.link(s.ctx, "A", "1234-5678")
	s.True(s.isEphemeral(data))
	embed := s.single(data)
	s.Equal("Account Linked", embed.Title)
	s.Contains(embed.Description, "ALICE")
}

func (s *CommandsTestSuite) TestLinkFailures() {
	s.mockDirectory.EXPECT().Link(s.ctx, gomock.Any()).
		Return(&directory.LinkOutput{Failure: directory.LinkFailureInvalidID}, nil)
	embed := s.single(s.arcade.link(s.ctx, "A", "abc"))
	s.Contains(embed.Description, "1234-5678")

	s.mockDirectory.EXPECT().Link(s.ctx, gomock.Any()).
		Return(&directory.LinkOutput{Failure: directory.LinkFailureHeldByOther}, nil)
	embed = s.single(s.arcade.link(s.ctx, "A", "12345678"))
	s.Contains(embed.Description, "another member")

	s.mockDirectory.EXPECT().Link(s.ctx, gomock.Any()).Return(nil, errors.New("disk full"))
	embed = s.single(s.arcade.link(s.ctx, "A", "12345678"))
	s.Equal("Link Failed", embed.Title)
}

func (s *CommandsTestSuite) TestCheckinRequiresLinkedProfile() {
	s.mockDirectory.EXPECT().GetProfileByAccount(s.ctx, &directory.GetProfileByAccountInput{AccountID: "A"}).
		Return(&directory.GetProfileOutput{}, nil)

	embed := s.single(s.arcade.checkin(s.ctx, "A"))
	s.Contains(embed.Description, "/arcade link")
}

func (s *CommandsTestSuite) TestCheckin() {
	s.mockDirectory.EXPECT().GetProfileByAccount(s.ctx, gomock.Any()).
		Return(&directory.GetProfileOutput{Profile: &models.PlayerProfile{ExternalID: "12345678"}}, nil).Times(2)

	s.mockSessions.EXPECT().StartManual(s.ctx, &session.StartManualInput{AccountID: "A"}).
		Return(&session.StartManualOutput{Success: true}, nil)
	embed := s.single(s.arcade.checkin(s.ctx, "A"))
	s.Equal("Session Started", embed.Title)

	s.mockSessions.EXPECT().StartManual(s.ctx, &session.StartManualInput{AccountID: "A"}).
		Return(&session.StartManualOutput{HolderAccountID: "B"}, nil)
	embed = s.single(s.arcade.checkin(s.ctx, "A"))
	s.Equal("Check-in Failed", embed.Title)
}

func (s *CommandsTestSuite) TestCheckout() {
	s.mockSessions.EXPECT().End(s.ctx, &session.EndInput{AccountID: "A"}).
		Return(&session.EndOutput{Summary: &models.SessionSummary{AccountID: "A", PlayerName: "ALICE"}}, nil)

	data := s.arcade.checkout(s.ctx, "A")
	s.False(s.isEphemeral(data))
	s.Equal("Session Summary", s.single(data).Title)

	s.mockSessions.EXPECT().End(s.ctx, &session.EndInput{AccountID: "A"}).Return(&session.EndOutput{}, nil)
	data = s.arcade.checkout(s.ctx, "A")
	s.True(s.isEphemeral(data))
	s.Contains(s.single(data).Description, "do not have an active session")
}

func (s *CommandsTestSuite) TestBreak() {
	s.mockSessions.EXPECT().Pause(s.ctx, &session.PauseInput{AccountID: "A"}).Return(&session.PauseOutput{Success: true}, nil)
	s.Equal("On Break", s.single(s.arcade.takeBreak(s.ctx, "A")).Title)

	s.mockSessions.EXPECT().Pause(s.ctx, &session.PauseInput{AccountID: "A"}).Return(&session.PauseOutput{}, nil)
	s.Equal("Break Failed", s.single(s.arcade.takeBreak(s.ctx, "A")).Title)
}

func (s *CommandsTestSuite) TestLeaderboard() {
	s.mockDirectory.EXPECT().GetLeaderboard(s.ctx, &directory.GetLeaderboardInput{}).
		Return(&directory.GetLeaderboardOutput{Entries: []*models.LeaderboardEntry{
			{Rank: 1, ExternalID: "11111111", DisplayName: "ALICE"},
		}}, nil)

	data := s.arcade.leaderboard(s.ctx)
	s.False(s.isEphemeral(data))
	s.Contains(s.single(data).Description, "ALICE")
}

func (s *CommandsTestSuite) TestStatsByID() {
	rating := 15.1
	s.mockDirectory.EXPECT().GetProfile(s.ctx, &directory.GetProfileInput{ExternalID: "12345678"}).
		Return(&directory.GetProfileOutput{Profile: &models.PlayerProfile{
			ExternalID:  "12345678",
			DisplayName: "ALICE",
			SkillRating: &rating,
		}}, nil)

	embed := s.single(s.arcade.stats(s.ctx, "A", "1234-5678"))
	s.Equal("ALICE", embed.Title)
	s.Equal("Scarlet I", fieldValue(s.T(), embed.Fields, "Class"))
}

func (s *CommandsTestSuite) TestStatsDefaultsToLinkedProfile() {
	s.mockDirectory.EXPECT().GetProfileByAccount(s.ctx, &directory.GetProfileByAccountInput{AccountID: "A"}).
		Return(&directory.GetProfileOutput{}, nil)

	embed := s.single(s.arcade.stats(s.ctx, "A", ""))
	s.Contains(embed.Description, "not linked")
}

func (s *CommandsTestSuite) TestStatsRejectsBadID() {
	embed := s.single(s.arcade.stats(s.ctx, "A", "12-34"))
	s.Equal("Stats", embed.Title)
}

func (s *CommandsTestSuite) TestAdminForceCheckout() {
	s.mockSessions.EXPECT().ForceEnd(s.ctx, &session.EndInput{AccountID: "B"}).
		Return(&session.EndOutput{Summary: &models.SessionSummary{AccountID: "B"}}, nil)
	s.Equal("Session Summary", s.single(s.admin.forceCheckout(s.ctx, "B")).Title)

	s.mockSessions.EXPECT().ForceEnd(s.ctx, &session.EndInput{AccountID: "B"}).Return(&session.EndOutput{}, nil)
	s.Contains(s.single(s.admin.forceCheckout(s.ctx, "B")).Description, "does not have a session")

	s.Equal("Checkout Failed", s.single(s.admin.forceCheckout(s.ctx, "")).Title)
}

func (s *CommandsTestSuite) TestAdminUnlink() {
	s.mockDirectory.EXPECT().Unlink(s.ctx, &directory.UnlinkInput{AccountID: "B"}).
		Return(&directory.UnlinkOutput{Success: true, ExternalID: "12345678"}, nil)
	s.Contains(s.single(s.admin.unlink(s.ctx, "B")).Description, "12345678")

	s.mockDirectory.EXPECT().Unlink(s.ctx, &directory.UnlinkInput{AccountID: "B"}).Return(&directory.UnlinkOutput{}, nil)
	s.Contains(s.single(s.admin.unlink(s.ctx, "B")).Description, "is not linked")
}

func (s *CommandsTestSuite) TestAdminStatus() {
	active := &models.SessionRecord{AccountID: "A", Status: models.SessionStatusActive}
	s.mockSessions.EXPECT().ListSessions(s.ctx).Return(&session.ListSessionsOutput{
		Sessions: []*models.SessionRecord{active},
	}, nil)
	s.mockSessions.EXPECT().GetActive(s.ctx).Return(&session.GetActiveOutput{Session: active}, nil)

	data := s.admin.showStatus(s.ctx)
	s.True(s.isEphemeral(data))
	embed := s.single(data)
	s.Equal("1", fieldValue(s.T(), embed.Fields, "Consecutive Failures"))
	s.Equal("<@A>", fieldValue(s.T(), embed.Fields, "Machine Holder"))
}

func TestCommandsSuite(t *testing.T) {
	suite.Run(t, new(CommandsTestSuite))
}
