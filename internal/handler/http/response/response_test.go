package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/expense"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payslip"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	Success(rec, map[string]string{"id": "abc"})

	assert.Equal(t, 200, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody(t, rec)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestHandleErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"validation errors", validator.ValidationErrors{{Field: "month", Message: "Month must be between 1 and 12"}}, 422, "VALIDATION_ERROR"},
		{"expense not found", expense.ErrExpenseNotFound, 404, "NOT_FOUND"},
		{"payslip transition", payslip.ErrInvalidTransition, 409, "CONFLICT"},
		{"unknown error", errors.New("boom"), 500, "INTERNAL_SERVER_ERROR"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)

			resp := decodeBody(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestValidationErrorCarriesDetails(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"amount": "Amount must be a positive number"})

	resp := decodeBody(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Amount must be a positive number", resp.Error.Details["amount"])
}
