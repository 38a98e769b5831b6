package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.False(t, resp.Success)
	assert.Equal(t, "something went wrong", resp.Message)
	assert.Empty(t, resp.Error)
}

func TestErrorWithDetails(t *testing.T) {
	resp := ErrorWithDetails("validation failed", "field Email is a required field")

	assert.False(t, resp.Success)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Equal(t, "field Email is a required field", resp.Error)
}

func TestOK(t *testing.T) {
	body := OK("Movie found", map[string]any{"movie": "dune"})

	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Movie found", body["message"])
	assert.Equal(t, "dune", body["movie"])
}

func TestOK_NilFields(t *testing.T) {
	body := OK("done", nil)

	assert.Len(t, body, 2)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "done", body["message"])
}

func TestValidationError(t *testing.T) {
	type request struct {
		Email    string  `validate:"required,email"`
		Password string  `validate:"required,min=8"`
		Year     int     `validate:"gte=1900"`
		Rating   float64 `validate:"lte=10"`
		Role     string  `validate:"oneof=user admin"`
	}

	validate := validator.New()

	tests := []struct {
		name string
		req  request
		want string
	}{
		{
			name: "пустой email",
			req:  request{Password: "longenough", Year: 2000, Rating: 5, Role: "user"},
			want: "field Email is a required field",
		},
		{
			name: "некорректный email",
			req:  request{Email: "not-an-email", Password: "longenough", Year: 2000, Rating: 5, Role: "user"},
			want: "field Email must be a valid email address",
		},
		{
			name: "короткий пароль",
			req:  request{Email: "a@b.com", Password: "short", Year: 2000, Rating: 5, Role: "user"},
			want: "field Password is shorter than minimum 8",
		},
		{
			name: "год меньше нижней границы",
			req:  request{Email: "a@b.com", Password: "longenough", Year: 1800, Rating: 5, Role: "user"},
			want: "field Year must be greater than or equal to 1900",
		},
		{
			name: "рейтинг выше верхней границы",
			req:  request{Email: "a@b.com", Password: "longenough", Year: 2000, Rating: 11, Role: "user"},
			want: "field Rating must be less than or equal to 10",
		},
		{
			name: "недопустимая роль",
			req:  request{Email: "a@b.com", Password: "longenough", Year: 2000, Rating: 5, Role: "root"},
			want: "field Role must be one of: user admin",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.req)
			require.Error(t, err)

			var validateErrs validator.ValidationErrors
			require.ErrorAs(t, err, &validateErrs)

			resp := ValidationError(validateErrs)
			assert.False(t, resp.Success)
			assert.Equal(t, "validation failed", resp.Message)
			assert.Contains(t, resp.Error, tt.want)
		})
	}
}
