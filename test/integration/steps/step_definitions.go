package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ledgerline/backend/internal/domain/entity"
	"github.com/ledgerline/backend/internal/integration/persistence/model"
	"github.com/ledgerline/backend/test/integration/mock"
)

type testContext struct {
	server   *httptest.Server
	db       *mock.Db
	payments *mock.Payments

	headers     map[string]string
	accessToken string
	response    *response

	recurringID   uuid.UUID
	transactionID uuid.UUID
	domainID      uuid.UUID
	eventID       uuid.UUID
}

type response struct {
	status      int
	contentType string
	raw         []byte
	body        any
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.recurringID = uuid.Nil
	t.transactionID = uuid.Nil
	t.domainID = uuid.Nil
	t.eventID = uuid.Nil

	t.payments.Reset()
	if err := t.db.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear test database: %v", err))
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) signToken(email string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   testUserID,
		"email": email,
		"iat":   jwt.NewNumericDate(time.Now().UTC().Add(-time.Minute)),
		"exp":   jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(testJWTSecret))
}

func (t *testContext) iAmAuthenticatedAs(email string) error {
	token, err := t.signToken(email, time.Now().UTC().Add(15*time.Minute))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

func (t *testContext) myTokenHasExpired() error {
	token, err := t.signToken(allowedEmail, time.Now().UTC().Add(-time.Hour))
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	t.accessToken = token
	return nil
}

func (t *testContext) aRecurringRuleExists(name string, amount int, kind, frequency, startDate string) error {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	rule := &model.RecurringTransactionModel{
		ID:        uuid.New(),
		UserID:    testUserID,
		Name:      name,
		Amount:    int64(amount),
		Kind:      kind,
		Frequency: frequency,
		StartDate: start,
		Currency:  "CAD",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(rule).Error; err != nil {
		return err
	}
	t.recurringID = rule.ID
	return nil
}

func (t *testContext) aManualTransactionExists(amount int, txType, category, date string) error {
	txDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	tx := &model.ManualTransactionModel{
		ID:              uuid.New(),
		UserID:          testUserID,
		Amount:          int64(amount),
		Currency:        "CAD",
		Type:            txType,
		Category:        category,
		TransactionDate: txDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := t.db.DbConn.Create(tx).Error; err != nil {
		return err
	}
	t.transactionID = tx.ID
	return nil
}

func (t *testContext) aDomainRecordExists(name string) error {
	now := time.Now().UTC()
	d := &model.DomainRecordModel{
		ID:         uuid.New(),
		UserID:     testUserID,
		DomainName: name,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := t.db.DbConn.Create(d).Error; err != nil {
		return err
	}
	t.domainID = d.ID
	return nil
}

func (t *testContext) aCorporateEventExists(title, date string) error {
	eventDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	e := &model.CorporateEventModel{
		ID:        uuid.New(),
		UserID:    testUserID,
		Title:     title,
		EventDate: eventDate,
		EventType: "general",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := t.db.DbConn.Create(e).Error; err != nil {
		return err
	}
	t.eventID = e.ID
	return nil
}

func (t *testContext) theProcessorHasASucceededCharge(amount, fee int, date string) error {
	created, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}

	t.payments.AddCharge(entity.Charge{
		ID:       "ch_" + uuid.New().String()[:8],
		Amount:   int64(amount),
		Currency: "usd",
		Status:   entity.ChargeStatusSucceeded,
		Created:  created.Unix(),
		FeeMinor: int64(fee),
		NetMinor: int64(amount - fee),
	})
	return nil
}

func (t *testContext) thePaymentsAPIIsUnavailable() error {
	t.payments.Unavailable = true
	return nil
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{recurring_id}}", t.recurringID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.transactionID.String())
	content = strings.ReplaceAll(content, "{{domain_id}}", t.domainID.String())
	content = strings.ReplaceAll(content, "{{event_id}}", t.eventID.String())
	return content
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

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	t.startServer()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, reqBody)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:      resp.StatusCode,
		contentType: resp.Header.Get("Content-Type"),
		raw:         raw,
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err == nil {
		t.response.body = parsed
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %s)", expectedStatus, t.response.status, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain %q: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expectedValue {
		return fmt.Errorf("field %q expected %q, got %q", field, expectedValue, actual)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	_, err := t.responseField(field)
	return err
}

func (t *testContext) theResponseContentTypeShouldBe(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.HasPrefix(t.response.contentType, expected) {
		return fmt.Errorf("expected content type %q, got %q", expected, t.response.contentType)
	}
	return nil
}

// responseField resolves a dot separated field path against the JSON body.
// Numeric segments index into arrays.
func (t *testContext) responseField(field string) (any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}

	current := t.response.body
	for _, part := range strings.Split(field, ".") {
		switch v := current.(type) {
		case map[string]any:
			next, ok := v[part]
			if !ok {
				return nil, fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
			}
			current = next
		case []any:
			var idx int
			if _, err := fmt.Sscanf(part, "%d", &idx); err != nil {
				return nil, fmt.Errorf("field %q: %q is not an array index", field, part)
			}
			if idx < 0 || idx >= len(v) {
				return nil, fmt.Errorf("field %q: index %d out of range", field, idx)
			}
			current = v[idx]
		default:
			return nil, fmt.Errorf("field %q not found in response: %s", field, string(t.response.raw))
		}
	}
	if current == nil {
		return nil, fmt.Errorf("field %q is null in response: %s", field, string(t.response.raw))
	}
	return current, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	m, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table %q not found in models", table)
	}

	entityType := reflect.TypeOf(m).Elem()
	slicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Unscoped().Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in %q, got %d", quantity, table, count)
	}
	return nil
}
