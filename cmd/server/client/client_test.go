package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-campaigns/internal/errors"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	mu       sync.Mutex
	requests []recordedRequest

	status   int
	response string
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	resetFlags()
	s.requests = nil
	s.status = http.StatusOK
	s.response = `{}`

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.requests = append(s.requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_, _ = io.WriteString(w, s.response)
	}))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) run(args ...string) (string, error) {
	var out bytes.Buffer
	ClientCmd.SetOut(&out)
	ClientCmd.SetErr(&out)
	ClientCmd.SilenceUsage = true
	ClientCmd.SilenceErrors = true
	ClientCmd.SetArgs(append(args, "--server", s.server.URL))

	err := ClientCmd.Execute()
	return out.String(), err
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.response = body
}

func (s *ClientTestSuite) recorded() []recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]recordedRequest(nil), s.requests...)
}

// resetFlags restores flag variables, which cobra keeps between executions
func resetFlags() {
	listDetails = false
	spellcastersOnly = false
	characterLevel = 1
	characterPlayerID = 0
	characterCampaignID = ""
	characterClassID = ""
	characterScores = "10,10,10,10,10,10"
	playerFirstName = ""
	playerContactInfo = ""
}

func (s *ClientTestSuite) TestListPlayers() {
	s.respond(http.StatusOK, `{"players":[{"id":1,"first_name":"Laura","last_name":"Bailey","contact_info":"laura@example.com"}]}`)

	out, err := s.run("list-players")
	s.Require().NoError(err)
	s.Contains(out, "Laura Bailey")
	s.Contains(out, "laura@example.com")

	s.Require().Len(s.recorded(), 1)
	s.Equal(http.MethodGet, s.recorded()[0].method)
	s.Equal("/api/v1alpha1/players", s.recorded()[0].path)
}

func (s *ClientTestSuite) TestCreatePlayer() {
	s.respond(http.StatusCreated, `{"id":5,"first_name":"Ashley","contact_info":"ashley@example.com"}`)

	out, err := s.run("create-player", "--first-name", "Ashley", "--contact", "ashley@example.com")
	s.Require().NoError(err)
	s.Contains(out, "Created player Ashley (ID: 5)")

	s.Require().Len(s.recorded(), 1)
	var sent map[string]any
	s.Require().NoError(json.Unmarshal(s.recorded()[0].body, &sent))
	s.Equal("Ashley", sent["first_name"])
	s.Equal("ashley@example.com", sent["contact_info"])
}

func (s *ClientTestSuite) TestDeletePlayerConflict() {
	s.respond(http.StatusConflict, `{"error":"player owns 2 character(s); delete them first","code":"FAILED_PRECONDITION"}`)

	_, err := s.run("delete-player", "1")
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "delete them first")
	s.Equal(http.MethodDelete, s.recorded()[0].method)
	s.Equal("/api/v1alpha1/players/1", s.recorded()[0].path)
}

func (s *ClientTestSuite) TestDeletePlayerBadID() {
	_, err := s.run("delete-player", "one")
	s.Require().Error(err)
	s.Empty(s.recorded())
}

func (s *ClientTestSuite) TestValidationFieldsInError() {
	s.respond(http.StatusBadRequest, `{"error":"error creating character","code":"INVALID_ARGUMENT","fields":{"level":["must be between 1 and 20"]}}`)

	_, err := s.run("create-character", "Scanlan", "--player", "3", "--campaign", "vox-machina", "--level", "25")
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "level: must be between 1 and 20")
}

func (s *ClientTestSuite) TestCreateCharacterSendsScores() {
	s.respond(http.StatusCreated, `{"id":"Pike","level":3,"class_id":"Cleric","player_id":4,"campaign_id":"vox-machina"}`)

	out, err := s.run("create-character", "Pike", "--player", "4", "--campaign", "vox-machina",
		"--level", "3", "--class", "Cleric", "--scores", "14,8,14,10,18,12")
	s.Require().NoError(err)
	s.Contains(out, "Created character Pike (Level 3 Cleric)")

	var sent map[string]any
	s.Require().NoError(json.Unmarshal(s.recorded()[0].body, &sent))
	scores := sent["ability_scores"].(map[string]any)
	s.EqualValues(18, scores["wis"])
	s.EqualValues(8, scores["dex"])
}

func (s *ClientTestSuite) TestCreateCharacterBadScores() {
	_, err := s.run("create-character", "Pike", "--scores", "14,8,14")
	s.Require().Error(err)
	s.Contains(err.Error(), "expected 6 scores")
	s.Empty(s.recorded())
}

func (s *ClientTestSuite) TestListCharactersWithDetails() {
	s.respond(http.StatusOK, `{"characters":[{"id":"Grog Strongjaw","level":6,"class_id":"Barbarian","campaign_id":"vox-machina","player_first_name":"Travis"}]}`)

	out, err := s.run("list-characters", "--details")
	s.Require().NoError(err)
	s.Contains(out, "Grog Strongjaw")
	s.Contains(out, "Travis")
	s.Equal("details=true", s.recorded()[0].query)
}

func (s *ClientTestSuite) TestDeleteCharacterEscapesName() {
	s.respond(http.StatusNoContent, ``)

	_, err := s.run("delete-character", "Grog Strongjaw")
	s.Require().NoError(err)
	s.Equal("/api/v1alpha1/characters/Grog Strongjaw", s.recorded()[0].path)
}

func (s *ClientTestSuite) TestRollAbilities() {
	s.respond(http.StatusOK, `{"scores":{"str":15},"rolls":[{"ability":"str","kept":[6,5,4],"dropped":1,"total":15}]}`)

	out, err := s.run("roll-abilities")
	s.Require().NoError(err)
	s.Contains(out, "STR: kept [6 5 4], dropped 1, total 15 (+2)")
	s.Equal(http.MethodPost, s.recorded()[0].method)
}

func (s *ClientTestSuite) TestReport() {
	s.respond(http.StatusOK, `{"name":"class-distribution","rows":[{"class_id":"Fighter","character_count":2}],"cached":true,"cached_at":"2025-02-03T04:05:06Z"}`)

	out, err := s.run("report", "class-distribution")
	s.Require().NoError(err)
	s.Contains(out, `"class_id": "Fighter"`)
	s.Contains(out, "served from cache")
	s.Equal("/api/v1alpha1/reports/class-distribution", s.recorded()[0].path)
}

func (s *ClientTestSuite) TestListReports() {
	s.respond(http.StatusOK, `{"reports":["player-counts","class-distribution"]}`)

	out, err := s.run("list-reports")
	s.Require().NoError(err)
	s.Equal("player-counts\nclass-distribution\n", out)
}

func (s *ClientTestSuite) TestNonEnvelopeError() {
	s.respond(http.StatusBadGateway, `upstream down`)

	_, err := s.run("list-campaigns")
	s.Require().Error(err)
	s.Contains(err.Error(), "server returned 502")
}

func (s *ClientTestSuite) TestListBackgrounds() {
	s.respond(http.StatusOK, `{"ids":["Acolyte","Sage"]}`)

	out, err := s.run("list-backgrounds")
	s.Require().NoError(err)
	s.Equal("Found 2 backgrounds: Acolyte, Sage\n", out)
	s.Equal("/api/v1alpha1/catalog/backgrounds", s.recorded()[0].path)
}

func (s *ClientTestSuite) TestListClassesSpellcastersOnly() {
	s.respond(http.StatusOK, `{"classes":[{"id":"Fighter"},{"id":"Wizard","casting_stat":"INT"}],"ids":[]}`)

	out, err := s.run("list-classes", "--spellcasters-only")
	s.Require().NoError(err)
	s.Contains(out, "Wizard")
	s.Contains(out, "Spellcasting: INT")
	s.NotContains(out, "Fighter")

	requests := s.recorded()
	s.Require().Len(requests, 2)
	s.Equal("/api/v1alpha1/catalog/classes/Wizard/subclasses", requests[1].path)
}
