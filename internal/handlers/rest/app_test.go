package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
	campaignmock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign/mock"
	catalogmock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog/mock"
	charactermock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player/mock"
	reportmock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-campaigns/internal/pkg/logging"
)

type AppTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPlayerService *playermock.MockService
	app               *fiber.App
}

func (s *AppTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerService = playermock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlayerService:    s.mockPlayerService,
		CampaignService:  campaignmock.NewMockService(s.ctrl),
		CharacterService: charactermock.NewMockService(s.ctrl),
		CatalogService:   catalogmock.NewMockService(s.ctrl),
		ReportService:    reportmock.NewMockService(s.ctrl),
	})
	s.Require().NoError(err)

	s.app, err = rest.NewApp(&rest.Config{
		Handler:     handler,
		IDGenerator: idgen.NewSequential("req"),
	})
	s.Require().NoError(err)
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) TestNewAppRequiresHandler() {
	_, err := rest.NewApp(&rest.Config{})
	s.Require().Error(err)

	_, err = rest.NewApp(nil)
	s.Require().Error(err)
}

func (s *AppTestSuite) TestHealthz() {
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("req_1", resp.Header.Get(rest.RequestIDHeader))

	var body map[string]string
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	s.Equal("ok", body["status"])
}

func (s *AppTestSuite) TestRequestIDReachesServices() {
	s.mockPlayerService.EXPECT().
		ListPlayers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ *player.ListPlayersInput) (*player.ListPlayersOutput, error) {
			s.Equal("table-7", logging.RequestID(ctx))
			return &player.ListPlayersOutput{Players: []*entities.Player{}}, nil
		})

	req := httptest.NewRequest(http.MethodGet, v1alpha1.Prefix+"/players", nil)
	req.Header.Set(rest.RequestIDHeader, "table-7")
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("table-7", resp.Header.Get(rest.RequestIDHeader))
}

func (s *AppTestSuite) TestPanicIsRecovered() {
	s.app.Get("/boom", func(*fiber.Ctx) error {
		panic("natural 1")
	})

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusInternalServerError, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.JSONEq(`{"error":"internal error","code":"INTERNAL"}`, string(raw))
}

func (s *AppTestSuite) TestCORSPreflight() {
	req := httptest.NewRequest(http.MethodOptions, v1alpha1.Prefix+"/players", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	s.Equal(http.StatusNoContent, resp.StatusCode)
	s.Equal("*", resp.Header.Get("Access-Control-Allow-Origin"))
}
