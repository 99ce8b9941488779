package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Name string `json:"name" validate:"required,max=5"`
	Age  int    `json:"age"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		wantErr     error
		errContains string
	}{
		{
			name:        "valid json",
			requestBody: `{"name": "test", "age": 30}`,
		},
		{
			name:        "invalid json",
			requestBody: `{"name": "test", "age": 30,}`, // trailing comma
			errContains: "invalid character",
		},
		{
			name:        "empty body",
			requestBody: "",
			wantErr:     ErrEmptyBody,
		},
		{
			name:        "unknown field",
			requestBody: `{"name": "test", "salary": 1}`,
			errContains: "unknown field",
		},
		{
			name:        "trailing data",
			requestBody: `{"name": "test"} {"name": "again"}`,
			errContains: "trailing data",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(tc.requestBody))

			var target testRequest
			err := DecodeJSON(req, &target)

			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			default:
				require.NoError(t, err)
				assert.Equal(t, testRequest{Name: "test", Age: 30}, target)
			}
		})
	}
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	body := `{"name": "` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))

	var target testRequest
	assert.Error(t, DecodeJSON(req, &target))
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return assert.AnError
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(testRequest{Name: "ok"}))

	err := ValidateRequest(testRequest{Name: "too long"})
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "max", validationErrs[0].Tag())

	assert.ErrorAs(t, ValidateRequest(testRequest{}), &validationErrs)

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.ErrorIs(t, ValidateRequest(selfValidating{}), assert.AnError)
}
