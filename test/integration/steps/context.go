// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/glowup-wallet/backend/config"
	"github.com/glowup-wallet/backend/internal/infra/db"
	"github.com/glowup-wallet/backend/internal/infra/dependency"
	"github.com/glowup-wallet/backend/internal/integration/persistence/model"
	"github.com/glowup-wallet/backend/test/integration/mock"
)

const (
	celebrationRecipient = "bestie@example.com"
	resendEmailsPath     = "/emails"
	pendingSessionPrefix = "glowup:chat:pending:"
)

// Shared by every scenario; created once per suite.
var (
	dataDir   string
	testDB    *mock.Db
	testRedis *mock.Redis
	emailAPI  *mock.ApiMock
)

// testContext holds the state of one scenario.
type testContext struct {
	server     *httptest.Server
	injector   *dependency.Injector
	client     *http.Client
	headers    map[string]string
	response   *response
	lastGoalID string
}

type response struct {
	status  int
	headers http.Header
	body    any
}

// InitializeTestSuite starts the shared fakes before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		var err error
		dataDir, err = os.MkdirTemp("", "glowup-integration-*")
		if err != nil {
			panic(err)
		}

		testDB, err = mock.NewDb(dataDir, map[string]any{
			"goals":        &model.GoalModel{},
			"transactions": &model.TransactionModel{},
			"challenges":   &model.ChallengeModel{},
		})
		if err != nil {
			panic(err)
		}

		testRedis, err = mock.NewRedis()
		if err != nil {
			panic(err)
		}

		emailAPI = mock.NewApiServer()
		emailAPI.Start()
	})

	ctx.AfterSuite(func() {
		emailAPI.Close()
		testRedis.Close()
		_ = testDB.Close()
		_ = os.RemoveAll(dataDir)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before(ctx)
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.after()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Fixture steps
	ctx.Given(`^the chat session "([^"]*)" is already answering$`, test.theChatSessionIsAlreadyAnswering)
	ctx.Given(`^the email provider is failing$`, test.theEmailProviderIsFailing)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should exist$`, test.theResponseHeaderShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the stored goal "([^"]*)" should have current amount "([^"]*)"$`, test.theStoredGoalShouldHaveCurrentAmount)

	// Side effect assertion steps
	ctx.Then(`^(\d+) celebration emails? should have been sent$`, test.celebrationEmailsShouldHaveBeenSent)
	ctx.Then(`^the celebration email subject should contain "([^"]*)"$`, test.theCelebrationEmailSubjectShouldContain)
	ctx.Then(`^the chat session "([^"]*)" should be released$`, test.theChatSessionShouldBeReleased)
}

func (t *testContext) before(ctx context.Context) error {
	t.headers = make(map[string]string)
	t.response = nil
	t.lastGoalID = ""

	if err := testDB.ClearDB(); err != nil {
		return err
	}
	testRedis.Clear()
	emailAPI.Reset()
	emailAPI.SetResponse(http.MethodPost, resendEmailsPath, http.StatusOK, map[string]any{"id": "email-test-id"})

	injector, err := dependency.NewInjector(ctx, testConfig())
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}
	t.injector = injector
	t.server = httptest.NewServer(injector.Router.Setup("test"))
	return nil
}

func (t *testContext) after() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
	if t.injector != nil {
		_ = t.injector.Close()
		t.injector = nil
	}
}

// testConfig wires the application to the suite's fakes. The advice model
// has no credential, so the guide answers with its fallbacks.
func testConfig() *config.Config {
	cfg := config.Load()

	cfg.Server.Environment = "test"
	cfg.Database.Driver = db.DriverSQLite
	cfg.Database.URL = testDB.Path
	cfg.Redis.URL = testRedis.URL()
	cfg.Advice.APIKey = ""
	cfg.Seed.Path = ""
	cfg.Seed.Theme = "Clean Girl"
	cfg.Email.ResendAPIKey = "re_test"
	cfg.Email.Recipient = celebrationRecipient
	cfg.Email.BaseURL = emailAPI.GetUrl()
	cfg.Messaging.AMQPURL = ""
	cfg.RateLimit.Enabled = true
	cfg.RateLimit.MaxRequests = 1000
	cfg.RateLimit.Window = time.Minute

	return cfg
}
