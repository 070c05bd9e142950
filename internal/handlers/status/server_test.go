package status

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KirkDiggler/nowplaying/internal/models"
	"github.com/KirkDiggler/nowplaying/internal/services/reconcile"
	"github.com/KirkDiggler/nowplaying/internal/services/session"
	sessionMocks "github.com/KirkDiggler/nowplaying/internal/services/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type fakeLoop struct {
	status reconcile.Status
}

func (f *fakeLoop) Status() reconcile.Status {
	return f.status
}

type ServerTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSessions *sessionMocks.MockService
	loop         *fakeLoop
	server       *Server
}

func (s *ServerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessions = sessionMocks.NewMockService(s.mockCtrl)
	s.loop = &fakeLoop{}

	var err error
	s.server, err = NewServer(&Config{
		Loop:     s.loop,
		Sessions: s.mockSessions,
	})
	s.Require().NoError(err)
}

func (s *ServerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ServerTestSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.server.Handler().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestNewServerValidatesConfig() {
	_, err := NewServer(nil)
	s.Error(err)

	_, err = NewServer(&Config{Sessions: s.mockSessions})
	s.Error(err)
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *ServerTestSuite) TestStatusReportsLoopAndSessions() {
	lastTick := time.Date(2025, 6, 18, 22, 0, 0, 0, time.UTC)
	s.loop.status = reconcile.Status{
		LastTick:  lastTick,
		LastError: "failed to refresh directory: scraper unavailable",
		Breaker:   reconcile.BreakerStatus{Down: true, ConsecutiveFailures: 4},
	}

	active := &models.SessionRecord{AccountID: "A", Status: models.SessionStatusActive}
	s.mockSessions.EXPECT().ListSessions(gomock.Any()).Return(&session.ListSessionsOutput{
		Sessions: []*models.SessionRecord{active, {AccountID: "B", Status: models.SessionStatusOnBreak}},
	}, nil)
	s.mockSessions.EXPECT().GetActive(gomock.Any()).Return(&session.GetActiveOutput{Session: active}, nil)

	rec := s.get("/status")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp Response
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("down", resp.Scraping)
	s.Equal(4, resp.ConsecutiveFailures)
	s.Equal(2, resp.Sessions)
	s.Equal("A", resp.ActiveAccountID)
	s.Require().NotNil(resp.LastTick)
	s.True(lastTick.Equal(*resp.LastTick))
	s.NotEmpty(resp.LastError)
}

func (s *ServerTestSuite) TestStatusBeforeFirstTick() {
	s.mockSessions.EXPECT().ListSessions(gomock.Any()).Return(&session.ListSessionsOutput{}, nil)
	s.mockSessions.EXPECT().GetActive(gomock.Any()).Return(&session.GetActiveOutput{}, nil)

	rec := s.get("/status")
	s.Require().Equal(http.StatusOK, rec.Code)

	var resp Response
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("up", resp.Scraping)
	s.Nil(resp.LastTick)
	s.Empty(resp.ActiveAccountID)
	s.Zero(resp.Sessions)
}

func (s *ServerTestSuite) TestStatusSessionError() {
	s.mockSessions.EXPECT().ListSessions(gomock.Any()).Return(nil, errors.New("boom"))

	rec := s.get("/status")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
