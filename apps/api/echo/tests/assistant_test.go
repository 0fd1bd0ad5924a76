package tests

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"

	echoapi "github.com/ethiopulse/backend/apps/api/echo"
)

func Test_assistantApi_chat(t *testing.T) {
	app := setup(t)

	answer := "Photosynthesis converts light energy into chemical energy stored in glucose."

	tests := []httpTest{
		{
			name: "prompt required", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.ChatRequest{}),
			wantData: marchallObj(t, map[string]string{"prompt": "this field is required"}),
		},
		{
			name: "blank prompt rejected", wantCode: http.StatusBadRequest,
			body:     marchallObj(t, echoapi.ChatRequest{Prompt: "   "}),
			wantData: marchallObj(t, map[string]string{"prompt": "this field is required"}),
		},
		{
			name: "completion returned", wantCode: http.StatusOK,
			body:     marchallObj(t, echoapi.ChatRequest{Prompt: "Explain photosynthesis"}),
			wantData: marchallObj(t, echoapi.ChatResponse{Text: answer}),
		},
		{
			name: "upstream failure masked", wantCode: http.StatusInternalServerError,
			body:     marchallObj(t, echoapi.ChatRequest{Prompt: "Explain photosynthesis"}),
			wantData: marchallObj(t, httpErr{Error: "Failed to fetch AI response"}),
			extra:    errors.New("generativelanguage: 503 Service Unavailable"),
		},
	}
	for _, tt := range tests {
		tt.method = http.MethodPost
		tt.path = "/api/chat"

		t.Run(tt.name, func(t *testing.T) {
			aiSvc.Text = answer
			if err, ok := tt.extra.(error); ok {
				aiSvc.Err = err
				defer func() { aiSvc.Err = nil }()
			}

			req, rec := newRequest(tt.method, tt.path, tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func Test_assistantApi_chatMethodNotAllowed(t *testing.T) {
	app := setup(t)

	tt := httpTest{
		method:   http.MethodGet,
		path:     "/api/chat",
		wantCode: http.StatusMethodNotAllowed,
		wantData: marchallObj(t, httpErr{Error: "Method Not Allowed"}),
	}
	req, rec := newRequest(tt.method, tt.path)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, tt, rec)
}
