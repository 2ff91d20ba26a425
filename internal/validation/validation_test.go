package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/devsocial/pkg/api"
)

func TestStruct_RegisterRequest(t *testing.T) {
	tests := []struct {
		name       string
		req        api.RegisterRequest
		wantParams []string
		wantMsgs   []string
	}{
		{
			name: "valid request",
			req:  api.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "secret1"},
		},
		{
			name:       "blank name",
			req:        api.RegisterRequest{Name: "   ", Email: "a@x.com", Password: "secret1"},
			wantParams: []string{"name"},
			wantMsgs:   []string{"Name is required"},
		},
		{
			name:       "invalid email",
			req:        api.RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "secret1"},
			wantParams: []string{"email"},
			wantMsgs:   []string{"Please include a valid email"},
		},
		{
			name:       "short password",
			req:        api.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: "12345"},
			wantParams: []string{"password"},
			wantMsgs:   []string{"Please enter a password with 6 or more characters"},
		},
		{
			name: "72 byte password",
			req:  api.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: strings.Repeat("é", 36)},
		},
		{
			name:       "multibyte password over 72 bytes",
			req:        api.RegisterRequest{Name: "Alice", Email: "a@x.com", Password: strings.Repeat("é", 40)},
			wantParams: []string{"password"},
			wantMsgs:   []string{"Password must be at most 72 bytes"},
		},
		{
			name:       "everything missing",
			req:        api.RegisterRequest{},
			wantParams: []string{"name", "email", "password"},
			wantMsgs: []string{
				"Name is required",
				"Please include a valid email",
				"Please enter a password with 6 or more characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(tt.req)
			if len(tt.wantParams) == 0 {
				assert.NoError(t, err)
				return
			}

			var verrs Errors
			require.ErrorAs(t, err, &verrs)
			require.Len(t, verrs, len(tt.wantParams))
			for i := range verrs {
				assert.Equal(t, tt.wantParams[i], verrs[i].Param)
				assert.Equal(t, tt.wantMsgs[i], verrs[i].Msg)
			}
		})
	}
}

func TestStruct_PointerAndBlankText(t *testing.T) {
	err := Struct(&api.CreatePostRequest{Text: " \n\t "})

	var verrs Errors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, Errors{{Param: "text", Msg: "Text is required"}}, verrs)
	assert.Contains(t, err.Error(), "text: Text is required")

	assert.NoError(t, Struct(&api.CreatePostRequest{Text: "hello"}))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com "))
	assert.Equal(t, "", NormalizeEmail("   "))
}
