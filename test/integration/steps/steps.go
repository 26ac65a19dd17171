package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/integration/persistence/model"
)

func (t *testContext) theAPIServerIsRunning() error {
	if t.server == nil {
		return errors.New("test server is not running")
	}

	resp, err := t.client.Get(t.server.URL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %d", resp.StatusCode)
	}
	return nil
}

func (t *testContext) theChatSessionIsAlreadyAnswering(sessionID string) error {
	return testRedis.Set(pendingSessionPrefix+sessionID, "pending")
}

func (t *testContext) theEmailProviderIsFailing() error {
	emailAPI.SetResponse(http.MethodPost, resendEmailsPath, http.StatusInternalServerError,
		map[string]any{"statusCode": 500, "name": "internal_server_error", "message": "try later"})
	return nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	return strings.ReplaceAll(content, "{{goal_id}}", t.lastGoalID)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture the goal ID from create responses
	if method == http.MethodPost && resp.StatusCode == http.StatusCreated {
		if id, ok := responseBody["id"].(string); ok {
			t.lastGoalID = id
		}
	}

	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, count int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldExist(header string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.headers.Get(header) == "" {
		return fmt.Errorf("response header '%s' is missing", header)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	count, err := testDB.Count(table)
	if err != nil {
		return err
	}
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theStoredGoalShouldHaveCurrentAmount(id, amount string) error {
	goalID := t.replacePlaceholders(id)

	var goal model.GoalModel
	if err := testDB.First(&goal, goalID); err != nil {
		return fmt.Errorf("goal %s not stored: %w", goalID, err)
	}

	want, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	if !goal.CurrentAmount.Equal(want) {
		return fmt.Errorf("stored goal %s has current amount %s, want %s", goalID, goal.CurrentAmount, want)
	}
	return nil
}

func (t *testContext) celebrationEmailsShouldHaveBeenSent(count int) error {
	requests := emailAPI.Requests(http.MethodPost, resendEmailsPath)
	if len(requests) != count {
		return fmt.Errorf("expected %d celebration emails, got %d", count, len(requests))
	}
	for _, req := range requests {
		if to := fmt.Sprintf("%v", req.Body["to"]); !strings.Contains(to, celebrationRecipient) {
			return fmt.Errorf("email sent to %s, want %s", to, celebrationRecipient)
		}
	}
	return nil
}

func (t *testContext) theCelebrationEmailSubjectShouldContain(text string) error {
	requests := emailAPI.Requests(http.MethodPost, resendEmailsPath)
	if len(requests) == 0 {
		return errors.New("no celebration email was sent")
	}
	subject, _ := requests[len(requests)-1].Body["subject"].(string)
	if !strings.Contains(subject, text) {
		return fmt.Errorf("subject %q does not contain %q", subject, text)
	}
	return nil
}

func (t *testContext) theChatSessionShouldBeReleased(sessionID string) error {
	if testRedis.Exists(pendingSessionPrefix + sessionID) {
		return fmt.Errorf("chat session %s is still pending", sessionID)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	var field any = object

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}

	return field
}
