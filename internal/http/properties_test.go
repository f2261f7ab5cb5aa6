package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helprequest-service/internal/model"
	"helprequest-service/internal/repository"
	"helprequest-service/internal/service"
)

// memoryRepo хранит заявки в памяти для сквозных проверок через роутер.
type memoryRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.HelpRequest
	writes int
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[int64]model.HelpRequest)}
}

func (m *memoryRepo) List(context.Context) ([]model.HelpRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]model.HelpRequest, 0, len(m.rows))
	for _, hr := range m.rows {
		out = append(out, hr)
	}
	slices.SortFunc(out, func(a, b model.HelpRequest) int { return int(a.ID - b.ID) })
	return out, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id int64) (model.HelpRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	hr, ok := m.rows[id]
	if !ok {
		return model.HelpRequest{}, repository.ErrHelpRequestNotFound
	}
	return hr, nil
}

func (m *memoryRepo) Create(_ context.Context, hr model.HelpRequest) (model.HelpRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	m.writes++
	hr.ID = m.nextID
	m.rows[hr.ID] = hr
	return hr, nil
}

func (m *memoryRepo) Update(_ context.Context, hr model.HelpRequest) (model.HelpRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[hr.ID]; !ok {
		return model.HelpRequest{}, repository.ErrHelpRequestNotFound
	}
	m.writes++
	m.rows[hr.ID] = hr
	return hr, nil
}

func (m *memoryRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.rows[id]; !ok {
		return repository.ErrHelpRequestNotFound
	}
	m.writes++
	delete(m.rows, id)
	return nil
}

func (m *memoryRepo) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

type inlineTx struct{}

func (inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newStoreFixture(t *testing.T) (fixture, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	svc := service.NewHelpRequestService(repo, inlineTx{}, logger)
	return newFixture(t, svc), repo
}

func createVia(t *testing.T, f fixture, params url.Values) model.HelpRequest {
	t.Helper()
	w := f.serve(httptest.NewRequest(http.MethodPost, "/api/helprequests/post?"+params.Encode(), nil), f.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created model.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func getVia(t *testing.T, f fixture, id int64) *httptest.ResponseRecorder {
	t.Helper()
	return f.serve(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/helprequests?id=%d", id), nil), f.userToken)
}

func TestStore_CreateThenGetReturnsSameFields(t *testing.T) {
	f, _ := newStoreFixture(t)

	created := createVia(t, f, createParams())
	require.Positive(t, created.ID)

	w := getVia(t, f, created.ID)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	want := sampleHelpRequest(t)
	want.ID = created.ID
	assert.Equal(t, want, got)
}

func TestStore_DeleteThenGetIsNotFound(t *testing.T) {
	f, _ := newStoreFixture(t)
	created := createVia(t, f, createParams())

	del := f.serve(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/helprequests?id=%d", created.ID), nil), f.adminToken)
	require.Equal(t, http.StatusOK, del.Code)

	w := getVia(t, f, created.ID)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, service.NotFoundMessage(created.ID), decodeError(t, w).Error.Message)
}

func TestStore_UpdateReplacesFieldsKeepsID(t *testing.T) {
	f, _ := newStoreFixture(t)
	created := createVia(t, f, createParams())

	body := `{"id":500,"requesterEmail":"ldelplaya@ucsb.edu","teamId":"s22-6pm-4","tableOrBreakoutRoom":"11","requestTime":"2022-04-20T17:35:00","explanation":"Merge conflict","solved":true}`
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/helprequests?id=%d", created.ID), strings.NewReader(body))
	w := f.serve(req, f.adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))

	want := model.HelpRequest{
		ID:                  created.ID,
		RequesterEmail:      "ldelplaya@ucsb.edu",
		TeamID:              "s22-6pm-4",
		TableOrBreakoutRoom: "11",
		RequestTime:         mustTime(t, "2022-04-20T17:35:00"),
		Explanation:         "Merge conflict",
		Solved:              true,
	}
	assert.Equal(t, want, updated)

	fetched := getVia(t, f, created.ID)
	var got model.HelpRequest
	require.NoError(t, json.Unmarshal(fetched.Body.Bytes(), &got))
	assert.Equal(t, want, got)

	assert.Equal(t, http.StatusNotFound, getVia(t, f, 500).Code)
}

func TestStore_ListContainsCreated(t *testing.T) {
	f, _ := newStoreFixture(t)

	const n = 5
	ids := make([]int64, 0, n)
	for i := range n {
		params := createParams()
		params.Set("tableOrBreakoutRoom", fmt.Sprint(i+1))
		ids = append(ids, createVia(t, f, params).ID)
	}

	w := f.serve(httptest.NewRequest(http.MethodGet, "/api/helprequests/all", nil), f.userToken)
	require.Equal(t, http.StatusOK, w.Code)

	var all []model.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	require.GreaterOrEqual(t, len(all), n)

	listed := make([]int64, 0, len(all))
	for _, hr := range all {
		listed = append(listed, hr.ID)
	}
	assert.Subset(t, listed, ids)
}

func TestStore_MissingIDIsNotFound(t *testing.T) {
	f, _ := newStoreFixture(t)

	body := `{"requesterEmail":"a@ucsb.edu","teamId":"t","tableOrBreakoutRoom":"1","requestTime":"2022-01-03T00:00:00","explanation":"e","solved":false}`
	requests := map[string]*http.Request{
		"get":    httptest.NewRequest(http.MethodGet, "/api/helprequests?id=9999", nil),
		"update": httptest.NewRequest(http.MethodPut, "/api/helprequests?id=9999", strings.NewReader(body)),
		"delete": httptest.NewRequest(http.MethodDelete, "/api/helprequests?id=9999", nil),
	}

	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			w := f.serve(req, f.adminToken)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "HelpRequest with id 9999 not found", decodeError(t, w).Error.Message)
		})
	}
}

func TestStore_NonAdminCannotMutate(t *testing.T) {
	f, repo := newStoreFixture(t)
	created := createVia(t, f, createParams())
	writesBefore := repo.writeCount()

	body := `{"requesterEmail":"a@ucsb.edu","teamId":"t","tableOrBreakoutRoom":"1","requestTime":"2022-01-03T00:00:00","explanation":"e","solved":true}`
	target := fmt.Sprintf("/api/helprequests?id=%d", created.ID)
	requests := map[string]*http.Request{
		"create": httptest.NewRequest(http.MethodPost, "/api/helprequests/post?"+createParams().Encode(), nil),
		"update": httptest.NewRequest(http.MethodPut, target, strings.NewReader(body)),
		"delete": httptest.NewRequest(http.MethodDelete, target, nil),
	}

	for name, req := range requests {
		t.Run(name, func(t *testing.T) {
			w := f.serve(req, f.userToken)
			assert.Equal(t, http.StatusForbidden, w.Code)
		})
	}

	assert.Equal(t, writesBefore, repo.writeCount())

	w := getVia(t, f, created.ID)
	var got model.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)
}

func TestStore_EdgeValuesRoundTrip(t *testing.T) {
	f, _ := newStoreFixture(t)

	params := createParams()
	params.Set("requestTime", "0001-01-01T00:00:00")
	params.Set("explanation", "")
	created := createVia(t, f, params)

	w := getVia(t, f, created.ID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"requestTime":"0001-01-01T00:00:00"`)
	assert.Contains(t, w.Body.String(), `"explanation":""`)

	var got model.HelpRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created, got)

	// ответ GET можно отправить обратно через PUT без изменений
	put := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/api/helprequests?id=%d", created.ID), bytes.NewReader(w.Body.Bytes()))
	pw := f.serve(put, f.adminToken)
	require.Equal(t, http.StatusOK, pw.Code, pw.Body.String())

	var updated model.HelpRequest
	require.NoError(t, json.Unmarshal(pw.Body.Bytes(), &updated))
	assert.Equal(t, created, updated)
}
