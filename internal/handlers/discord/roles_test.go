package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/nowplaying/internal/handlers/discord/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoleControllerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockRoles *mocks.MockRoleManager
	ctx       context.Context
	roles     *RoleController
}

func (s *RoleControllerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoles = mocks.NewMockRoleManager(s.mockCtrl)
	s.ctx = context.Background()

	var err error
	s.roles, err = NewRoleController(&RoleControllerConfig{
		Roles:    s.mockRoles,
		GuildID:  "guild",
		RoleName: "Now Playing",
	})
	s.Require().NoError(err)
}

func (s *RoleControllerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoleControllerTestSuite) guildRoles() []*discordgo.Role {
	return []*discordgo.Role{
		{ID: "r1", Name: "Member"},
		{ID: "r2", Name: "Now Playing"},
	}
}

func (s *RoleControllerTestSuite) TestNewRoleControllerValidatesConfig() {
	_, err := NewRoleController(nil)
	s.Error(err)

	_, err = NewRoleController(&RoleControllerConfig{Roles: s.mockRoles, GuildID: "guild"})
	s.Error(err)

	_, err = NewRoleController(&RoleControllerConfig{Roles: s.mockRoles, RoleName: "Now Playing"})
	s.Error(err)
}

func (s *RoleControllerTestSuite) TestGrantAndRevokeResolveRoleOnce() {
	s.mockRoles.EXPECT().GuildRoles("guild").Return(s.guildRoles(), nil).Times(1)
	s.mockRoles.EXPECT().AddRole("guild", "A", "r2").Return(nil)
	s.mockRoles.EXPECT().RemoveRole("guild", "A", "r2").Return(nil)

	s.NoError(s.roles.Grant(s.ctx, "A"))
	s.NoError(s.roles.Revoke(s.ctx, "A"))
}

func (s *RoleControllerTestSuite) TestMissingRole() {
	s.mockRoles.EXPECT().GuildRoles("guild").Return([]*discordgo.Role{{ID: "r1", Name: "Member"}}, nil).Times(2)

	s.ErrorIs(s.roles.Grant(s.ctx, "A"), ErrRoleNotFound)

	// Not cached, so a role created later is picked up
	s.ErrorIs(s.roles.Revoke(s.ctx, "A"), ErrRoleNotFound)
}

func (s *RoleControllerTestSuite) TestGuildRolesFailure() {
	s.mockRoles.EXPECT().GuildRoles("guild").Return(nil, errors.New("rate limited"))

	s.Error(s.roles.Grant(s.ctx, "A"))
}

func (s *RoleControllerTestSuite) TestAddRoleFailure() {
	s.mockRoles.EXPECT().GuildRoles("guild").Return(s.guildRoles(), nil)
	s.mockRoles.EXPECT().AddRole("guild", "A", "r2").Return(errors.New("missing permissions"))

	s.Error(s.roles.Grant(s.ctx, "A"))
}

func TestRoleControllerSuite(t *testing.T) {
	suite.Run(t, new(RoleControllerTestSuite))
}
