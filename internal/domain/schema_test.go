package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
)

func tripSchema() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type: "object",
		Properties: map[string]domain.JSONSchemaProps{
			"trip_id": {Type: "integer", Minimum: domain.Min(1_000_000)},
			"n_steps": {Type: "integer", Minimum: domain.Min(0), Default: 5},
		},
		Required: []string{"trip_id"},
	}
}

func userSchema() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type: "object",
		Properties: map[string]domain.JSONSchemaProps{
			"username": {Type: "string"},
		},
		Required: []string{"username"},
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		schema    domain.JSONSchemaProps
		raw       map[string]any
		wantArgs  map[string]any
		wantErr   bool
		wantField string
	}{
		{
			name:     "valid string field",
			schema:   userSchema(),
			raw:      map[string]any{"username": "testuser"},
			wantArgs: map[string]any{"username": "testuser"},
		},
		{
			name:      "missing required field",
			schema:    userSchema(),
			raw:       map[string]any{},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:      "type mismatch for string",
			schema:    userSchema(),
			raw:       map[string]any{"username": 42},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:     "unknown keys are ignored",
			schema:   userSchema(),
			raw:      map[string]any{"username": "testuser", "extra": true},
			wantArgs: map[string]any{"username": "testuser"},
		},
		{
			name:     "integer at the minimum passes",
			schema:   tripSchema(),
			raw:      map[string]any{"trip_id": 1_000_000},
			wantArgs: map[string]any{"trip_id": int64(1_000_000), "n_steps": int64(5)},
		},
		{
			name:      "integer below the minimum fails",
			schema:    tripSchema(),
			raw:       map[string]any{"trip_id": 500_000},
			wantErr:   true,
			wantField: "trip_id",
		},
		{
			name:     "json float64 coerces when integral",
			schema:   tripSchema(),
			raw:      map[string]any{"trip_id": float64(1234567)},
			wantArgs: map[string]any{"trip_id": int64(1234567), "n_steps": int64(5)},
		},
		{
			name:      "fractional float fails",
			schema:    tripSchema(),
			raw:       map[string]any{"trip_id": 1234567.5},
			wantErr:   true,
			wantField: "trip_id",
		},
		{
			name:      "non-numeric string for integer fails",
			schema:    tripSchema(),
			raw:       map[string]any{"trip_id": "not-a-number"},
			wantErr:   true,
			wantField: "trip_id",
		},
		{
			name:     "default applied for absent optional",
			schema:   tripSchema(),
			raw:      map[string]any{"trip_id": 1_000_001},
			wantArgs: map[string]any{"trip_id": int64(1_000_001), "n_steps": int64(5)},
		},
		{
			name:     "explicit value overrides default",
			schema:   tripSchema(),
			raw:      map[string]any{"trip_id": 1_000_001, "n_steps": float64(2)},
			wantArgs: map[string]any{"trip_id": int64(1_000_001), "n_steps": int64(2)},
		},
		{
			name:      "optional field still bound-checked",
			schema:    tripSchema(),
			raw:       map[string]any{"trip_id": 1_000_001, "n_steps": -3},
			wantErr:   true,
			wantField: "n_steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := tt.schema.ValidateInput(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *domain.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantField, vErr.Field)
				assert.Contains(t, err.Error(), tt.wantField)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestValidateInputBoundMessageNamesBound(t *testing.T) {
	_, err := tripSchema().ValidateInput(map[string]any{"trip_id": 999_999})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1000000")
}
