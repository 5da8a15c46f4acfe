package v1alpha1_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-campaigns/internal/entities"
	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
	"github.com/KirkDiggler/rpg-campaigns/internal/handlers/rest/v1alpha1"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign"
	campaignmock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/campaign/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog"
	catalogmock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/catalog/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character"
	charactermock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/character/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player"
	playermock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/player/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report"
	reportmock "github.com/KirkDiggler/rpg-campaigns/internal/orchestrators/report/mock"
	"github.com/KirkDiggler/rpg-campaigns/internal/testutils/builders"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockPlayerService    *playermock.MockService
	mockCampaignService  *campaignmock.MockService
	mockCharacterService *charactermock.MockService
	mockCatalogService   *catalogmock.MockService
	mockReportService    *reportmock.MockService
	app                  *fiber.App
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPlayerService = playermock.NewMockService(s.ctrl)
	s.mockCampaignService = campaignmock.NewMockService(s.ctrl)
	s.mockCharacterService = charactermock.NewMockService(s.ctrl)
	s.mockCatalogService = catalogmock.NewMockService(s.ctrl)
	s.mockReportService = reportmock.NewMockService(s.ctrl)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlayerService:    s.mockPlayerService,
		CampaignService:  s.mockCampaignService,
		CharacterService: s.mockCharacterService,
		CatalogService:   s.mockCatalogService,
		ReportService:    s.mockReportService,
	})
	s.Require().NoError(err)

	s.app = fiber.New(fiber.Config{ErrorHandler: v1alpha1.ToFiberError})
	handler.RegisterRoutes(s.app.Group(v1alpha1.Prefix))
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) do(method, path, body string) (int, map[string]any) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, v1alpha1.Prefix+path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	out := map[string]any{}
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (s *HandlerTestSuite) TestNewHandlerRequiresServices() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{PlayerService: s.mockPlayerService})
	s.Require().Error(err)
	s.Contains(err.Error(), "ReportService")
}

func (s *HandlerTestSuite) TestListPlayers() {
	s.mockPlayerService.EXPECT().
		ListPlayers(gomock.Any(), &player.ListPlayersInput{}).
		Return(&player.ListPlayersOutput{Players: []*entities.Player{
			builders.NewPlayerBuilder().WithID(1).WithName("Sam", "Riegel").Build(),
		}}, nil)

	status, body := s.do(http.MethodGet, "/players", "")
	s.Equal(http.StatusOK, status)
	players := body["players"].([]any)
	s.Len(players, 1)
	s.Equal("Sam", players[0].(map[string]any)["first_name"])
}

func (s *HandlerTestSuite) TestCreatePlayer() {
	s.mockPlayerService.EXPECT().
		CreatePlayer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *player.CreatePlayerInput) (*player.CreatePlayerOutput, error) {
			s.Equal("Liam", in.Player.FirstName)
			s.Equal("liam@example.com", in.Player.ContactInfo)
			p := *in.Player
			p.ID = 3
			return &player.CreatePlayerOutput{Player: &p}, nil
		})

	status, body := s.do(http.MethodPost, "/players", `{"first_name":"Liam","contact_info":"liam@example.com"}`)
	s.Equal(http.StatusCreated, status)
	s.EqualValues(3, body["id"])
}

func (s *HandlerTestSuite) TestCreatePlayerValidationError() {
	vb := errors.NewValidationBuilder()
	vb.Field("first_name", "player first name required")
	s.mockPlayerService.EXPECT().
		CreatePlayer(gomock.Any(), gomock.Any()).
		Return(nil, vb.Build())

	status, body := s.do(http.MethodPost, "/players", `{"contact_info":"x"}`)
	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_ARGUMENT", body["code"])
	fields := body["fields"].(map[string]any)
	s.Equal([]any{"player first name required"}, fields["first_name"])
}

func (s *HandlerTestSuite) TestCreatePlayerEmptyBody() {
	status, body := s.do(http.MethodPost, "/players", "")
	s.Equal(http.StatusBadRequest, status)
	s.Equal("request body is required", body["error"])
}

func (s *HandlerTestSuite) TestUpdatePlayerUsesPathID() {
	s.mockPlayerService.EXPECT().
		UpdatePlayer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *player.UpdatePlayerInput) (*player.UpdatePlayerOutput, error) {
			s.Equal(7, in.Player.ID)
			return &player.UpdatePlayerOutput{Player: in.Player}, nil
		})

	status, _ := s.do(http.MethodPut, "/players/7", `{"id":99,"first_name":"Travis","contact_info":"t@example.com"}`)
	s.Equal(http.StatusOK, status)
}

func (s *HandlerTestSuite) TestGetPlayerBadID() {
	status, body := s.do(http.MethodGet, "/players/abc", "")
	s.Equal(http.StatusBadRequest, status)
	s.Equal("INVALID_ARGUMENT", body["code"])
}

func (s *HandlerTestSuite) TestDeletePlayerWithCharacters() {
	s.mockPlayerService.EXPECT().
		DeletePlayer(gomock.Any(), &player.DeletePlayerInput{PlayerID: 1}).
		Return(nil, errors.FailedPrecondition("player owns 2 character(s); delete them first"))

	status, body := s.do(http.MethodDelete, "/players/1", "")
	s.Equal(http.StatusConflict, status)
	s.Equal("FAILED_PRECONDITION", body["code"])
}

func (s *HandlerTestSuite) TestDeletePlayer() {
	s.mockPlayerService.EXPECT().
		DeletePlayer(gomock.Any(), &player.DeletePlayerInput{PlayerID: 4}).
		Return(&player.DeletePlayerOutput{}, nil)

	status, _ := s.do(http.MethodDelete, "/players/4", "")
	s.Equal(http.StatusNoContent, status)
}

func (s *HandlerTestSuite) TestListPlayerCharacters() {
	s.mockPlayerService.EXPECT().
		ListPlayerCharacters(gomock.Any(), &player.ListPlayerCharactersInput{PlayerID: 2}).
		Return(&player.ListPlayerCharactersOutput{Characters: []*entities.Character{}}, nil)

	status, body := s.do(http.MethodGet, "/players/2/characters", "")
	s.Equal(http.StatusOK, status)
	s.Empty(body["characters"])
}

func (s *HandlerTestSuite) TestCampaignRoutes() {
	meets := time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC)

	s.mockCampaignService.EXPECT().
		CreateCampaign(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *campaign.CreateCampaignInput) (*campaign.CreateCampaignOutput, error) {
			s.Equal("sharn-nights", in.Campaign.ID)
			s.Require().NotNil(in.Campaign.MeetingTime)
			s.True(meets.Equal(*in.Campaign.MeetingTime))
			return &campaign.CreateCampaignOutput{Campaign: in.Campaign}, nil
		})
	status, _ := s.do(http.MethodPost, "/campaigns",
		`{"id":"sharn-nights","setting":"Eberron","max_players":4,"meeting_time":"2025-06-01T18:30:00Z"}`)
	s.Equal(http.StatusCreated, status)

	s.mockCampaignService.EXPECT().
		GetCampaign(gomock.Any(), &campaign.GetCampaignInput{CampaignID: "ghost"}).
		Return(nil, errors.NotFound("campaign ghost not found"))
	status, body := s.do(http.MethodGet, "/campaigns/ghost", "")
	s.Equal(http.StatusNotFound, status)
	s.Equal("campaign ghost not found", body["error"])

	s.mockCampaignService.EXPECT().
		DeleteCampaign(gomock.Any(), &campaign.DeleteCampaignInput{CampaignID: "lost-mine"}).
		Return(&campaign.DeleteCampaignOutput{}, nil)
	status, _ = s.do(http.MethodDelete, "/campaigns/lost-mine", "")
	s.Equal(http.StatusNoContent, status)
}

func (s *HandlerTestSuite) TestListCharactersWithDetails() {
	s.mockCharacterService.EXPECT().
		ListCharactersWithDetails(gomock.Any(), &character.ListCharactersWithDetailsInput{}).
		Return(&character.ListCharactersWithDetailsOutput{Characters: []*entities.CharacterDetails{{
			Character:       *builders.NewCharacterBuilder().WithID("Vex").Build(),
			PlayerFirstName: "Laura",
		}}}, nil)

	status, body := s.do(http.MethodGet, "/characters?details=true", "")
	s.Equal(http.StatusOK, status)
	first := body["characters"].([]any)[0].(map[string]any)
	s.Equal("Laura", first["player_first_name"])
}

func (s *HandlerTestSuite) TestGetCharacterWithSpaces() {
	s.mockCharacterService.EXPECT().
		GetCharacter(gomock.Any(), &character.GetCharacterInput{CharacterID: "Grog Strongjaw"}).
		Return(&character.GetCharacterOutput{
			Character: builders.NewCharacterBuilder().WithID("Grog Strongjaw").Build(),
		}, nil)

	status, body := s.do(http.MethodGet, "/characters/Grog%20Strongjaw", "")
	s.Equal(http.StatusOK, status)
	s.Equal("Grog Strongjaw", body["id"])
}

func (s *HandlerTestSuite) TestCreateCharacterDuplicate() {
	s.mockCharacterService.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(errors.AlreadyExists("character Vex already exists"), "error creating character"))

	status, body := s.do(http.MethodPost, "/characters",
		`{"id":"Vex","level":5,"player_id":2,"campaign_id":"lost-mine","ability_scores":{"str":10,"dex":18,"con":12,"int":10,"wis":14,"cha":10}}`)
	s.Equal(http.StatusConflict, status)
	s.Equal("error creating character", body["error"])
}

func (s *HandlerTestSuite) TestRollAbilityScores() {
	s.mockCharacterService.EXPECT().
		RollAbilityScores(gomock.Any(), &character.RollAbilityScoresInput{}).
		Return(&character.RollAbilityScoresOutput{
			Scores: entities.AbilityScores{Strength: 15, Dexterity: 14, Constitution: 13, Intelligence: 12, Wisdom: 10, Charisma: 8},
			Rolls:  []*character.AbilityRoll{{Ability: "str", Kept: []int{6, 5, 4}, Dropped: 1, Total: 15}},
		}, nil)

	status, body := s.do(http.MethodPost, "/characters/roll-ability-scores", "")
	s.Equal(http.StatusOK, status)
	s.EqualValues(15, body["scores"].(map[string]any)["str"])
	s.Len(body["rolls"], 1)
}

func (s *HandlerTestSuite) TestCatalogRoutes() {
	s.mockCatalogService.EXPECT().
		ListSubclassIDsByClass(gomock.Any(), &catalog.ListSubclassIDsByClassInput{ClassID: "Fighter"}).
		Return(&catalog.ListIDsOutput{IDs: []string{"Battle Master", "Champion"}}, nil)
	status, body := s.do(http.MethodGet, "/catalog/classes/Fighter/subclasses", "")
	s.Equal(http.StatusOK, status)
	s.Equal([]any{"Battle Master", "Champion"}, body["ids"])

	s.mockCatalogService.EXPECT().
		ListClasses(gomock.Any(), &catalog.ListClassesInput{}).
		Return(&catalog.ListClassesOutput{Classes: []*entities.DnDClass{{ID: "Bard", CastingStat: "CHA"}}}, nil)
	status, body = s.do(http.MethodGet, "/catalog/classes", "")
	s.Equal(http.StatusOK, status)
	s.Len(body["classes"], 1)

	s.mockCatalogService.EXPECT().
		ImportCatalog(gomock.Any(), &catalog.ImportCatalogInput{}).
		Return(&catalog.ImportCatalogOutput{Classes: 12, Species: 9, Subspecies: 4, Backgrounds: 1}, nil)
	status, body = s.do(http.MethodPost, "/catalog/import", "")
	s.Equal(http.StatusOK, status)
	s.EqualValues(12, body["classes"])
}

func (s *HandlerTestSuite) TestReports() {
	s.mockReportService.EXPECT().
		ListReports(gomock.Any(), &report.ListReportsInput{}).
		Return(&report.ListReportsOutput{Names: entities.ReportNames}, nil)
	status, body := s.do(http.MethodGet, "/reports", "")
	s.Equal(http.StatusOK, status)
	s.Len(body["reports"], 10)

	cachedAt := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	s.mockReportService.EXPECT().
		RunReport(gomock.Any(), &report.RunReportInput{Name: entities.ReportClassDistribution}).
		Return(&report.RunReportOutput{
			Name:   entities.ReportClassDistribution,
			Rows:   []entities.ClassDistributionRow{{ClassID: "Fighter", CharacterCount: 2, Percentage: 40}},
			Source: report.Source{Cached: true, CachedAt: cachedAt},
		}, nil)
	status, body = s.do(http.MethodGet, "/reports/class-distribution", "")
	s.Equal(http.StatusOK, status)
	s.Equal(true, body["cached"])
	s.Equal("2025-02-03T04:05:06Z", body["cached_at"])
	s.Len(body["rows"], 1)

	s.mockReportService.EXPECT().
		RunReport(gomock.Any(), &report.RunReportInput{Name: "nope"}).
		Return(nil, errors.InvalidArgument("unknown report: nope"))
	status, _ = s.do(http.MethodGet, "/reports/nope", "")
	s.Equal(http.StatusBadRequest, status)
}

func (s *HandlerTestSuite) TestInternalErrorHidesCause() {
	s.mockCampaignService.EXPECT().
		ListCampaigns(gomock.Any(), gomock.Any()).
		Return(nil, errors.Wrap(errors.Internal("sql: database is closed"), "error loading campaigns"))

	status, body := s.do(http.MethodGet, "/campaigns", "")
	s.Equal(http.StatusInternalServerError, status)
	s.Equal("error loading campaigns", body["error"])
}

func (s *HandlerTestSuite) TestUnknownRoute() {
	status, body := s.do(http.MethodGet, "/dragons", "")
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", body["code"])
}
