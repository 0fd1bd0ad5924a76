package geminisvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"

	"github.com/pkg/errors"

	"github.com/ethiopulse/backend/core"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

type (
	// service calls the Gemini generateContent REST endpoint. Stateless:
	// no retry, no caching, each call independent.
	service struct {
		key               string
		model             string
		baseURL           string
		systemInstruction string
		client            *http.Client
	}

	part struct {
		Text string `json:"text"`
	}
	content struct {
		Parts []part `json:"parts"`
		Role  string `json:"role,omitempty"`
	}

	generateRequest struct {
		Contents          []content `json:"contents"`
		SystemInstruction *content  `json:"systemInstruction,omitempty"`
	}

	generateResponse struct {
		Candidates []struct {
			Content content `json:"content"`
		} `json:"candidates"`
		Error *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
)

var _ core.AssistantService = (*service)(nil)

// NewService returns an AssistantService backed by the Gemini API.
// systemInstruction, if non-empty, is sent with every prompt to pin the
// assistant's persona.
func NewService(conf *core.Config, systemInstruction string) core.AssistantService {
	return &service{
		key:               conf.Gemini.APIKey,
		model:             conf.Gemini.Model,
		baseURL:           defaultBaseURL,
		systemInstruction: systemInstruction,
		client:            &http.Client{Timeout: conf.Gemini.Timeout},
	}
}

func (svc *service) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}, Role: "user"}},
	}
	if svc.systemInstruction != "" {
		reqBody.SystemInstruction = &content{Parts: []part{{Text: svc.systemInstruction}}}
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.Wrap(err, "marshalling request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", svc.baseURL, svc.model, svc.key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "calling gemini")
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", errors.Wrap(err, "reading response")
	}

	var genResp generateResponse
	if err := json.Unmarshal(data, &genResp); err != nil {
		return "", errors.Wrapf(err, "decoding response (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		if genResp.Error != nil {
			return "", errors.Errorf("gemini: %s (%d %s)", genResp.Error.Message, genResp.Error.Code, genResp.Error.Status)
		}
		return "", errors.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty response")
	}

	var text string
	for _, p := range genResp.Candidates[0].Content.Parts {
		text += p.Text
	}
	return text, nil
}
