package validator_test

import (
	"catering/shared/failure"
	"catering/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type menuPayload struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Dietary  string  `json:"dietary"  validate:"required,oneof=veg non-veg"`
	Contact  string  `json:"contact"  validate:"omitempty,email"`
	Photo    string  `json:"photo"    validate:"omitempty,mimetypes=image/png image/jpeg,maxfilesize=1"`
	Category *string `json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    menuPayload
		message string
	}{
		{
			name: "valid",
			data: menuPayload{Name: "Paneer Tikka", Price: 250, Dietary: "veg"},
		},
		{
			name:    "missing name uses json field name",
			data:    menuPayload{Price: 250, Dietary: "veg"},
			message: "name is required",
		},
		{
			name:    "negative price",
			data:    menuPayload{Name: "Soup", Price: -1, Dietary: "veg"},
			message: "price must be greater than or equal to 0",
		},
		{
			name:    "unknown dietary flag",
			data:    menuPayload{Name: "Soup", Price: 1, Dietary: "vegan"},
			message: "dietary must be one of veg non-veg",
		},
		{
			name:    "invalid email",
			data:    menuPayload{Name: "Soup", Price: 1, Dietary: "veg", Contact: "chef"},
			message: "contact must be a valid email address",
		},
		{
			name:    "photo with wrong mimetype",
			data:    menuPayload{Name: "Soup", Price: 1, Dietary: "veg", Photo: "data:application/pdf;base64,aGVsbG8="},
			message: "photo must be one of image/png image/jpeg",
		},
		{
			name: "photo with allowed mimetype",
			data: menuPayload{Name: "Soup", Price: 1, Dietary: "veg", Photo: "data:image/png;base64,aGVsbG8="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("confirmed", "oneof=pending confirmed completed cancelled"))
	assert.Error(t, validator.ValidateVar("archived", "oneof=pending confirmed completed cancelled"))
	assert.NoError(t, validator.ValidateVar("0b9a7a4e-5d7e-4c39-8a6e-3f1c1f6c2b11", "uuid"))
	assert.Error(t, validator.ValidateVar("E1", "uuid"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"Biryani","price":320,"dietary":"non-veg"}`},
		{name: "unknown fields are tolerated", body: `{"name":"Biryani","price":320,"dietary":"non-veg","spicy":true}`},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "fails validation", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data menuPayload

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateStrict(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "valid", body: `{"name":"Biryani","price":320,"dietary":"non-veg"}`},
		{name: "unknown field", body: `{"name":"Biryani","price":320,"dietary":"non-veg","status":"completed"}`, message: `unknown field "status"`},
		{name: "empty body", body: ``, message: "request body is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data menuPayload

			err := validator.ValidateStrict(strings.NewReader(tt.body), &data)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
