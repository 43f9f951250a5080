package enroll_member

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enrollMember "github.com/m04kA/SMC-GymService/internal/usecase/enroll_member"
	"github.com/m04kA/SMC-GymService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type useCaseStub struct {
	resp *enrollMember.Response
	err  error
	got  *enrollMember.Request
}

func (s *useCaseStub) Execute(_ context.Context, req *enrollMember.Request) (*enrollMember.Response, error) {
	s.got = req
	return s.resp, s.err
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	stub := &useCaseStub{resp: &enrollMember.Response{
		MemberID:   "MEM-001",
		ScheduleID: "CL-1-001",
		Status:     "Pending. Please Pay to Confirm Booking",
	}}
	h := NewHandler(stub, nopLogger{})

	rec := doRequest(t, h, EnrollRequest{CitizenID: "7101", ScheduleID: "CL-1-001"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.got)
	assert.Equal(t, "7101", stub.got.CitizenID)

	var resp EnrollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "MEM-001", resp.MemberID)
	assert.Equal(t, "Pending. Please Pay to Confirm Booking", resp.Status)
	assert.Nil(t, resp.QueuePosition)
}

func TestHandler_WaitlistResponseCarriesQueuePosition(t *testing.T) {
	stub := &useCaseStub{resp: &enrollMember.Response{
		MemberID:      "MEM-002",
		ScheduleID:    "CL-1-001",
		Status:        "Waitlist",
		QueuePosition: ptr.Ptr(1),
	}}
	h := NewHandler(stub, nopLogger{})

	rec := doRequest(t, h, EnrollRequest{CitizenID: "7102", ScheduleID: "CL-1-001"})

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp EnrollResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.QueuePosition)
	assert.Equal(t, 1, *resp.QueuePosition)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid input", enrollMember.ErrInvalidInput, http.StatusBadRequest},
		{"member not found", enrollMember.ErrMemberNotFound, http.StatusNotFound},
		{"schedule not found", enrollMember.ErrScheduleNotFound, http.StatusNotFound},
		{"schedule cancelled", enrollMember.ErrScheduleCancelled, http.StatusConflict},
		{"internal", enrollMember.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&useCaseStub{err: tt.err}, nopLogger{})
			rec := doRequest(t, h, EnrollRequest{CitizenID: "7101", ScheduleID: "CL-1-001"})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	h := NewHandler(&useCaseStub{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/enrollments", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
