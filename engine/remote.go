package engine

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"gorgonia.org/tensor"

	"github.com/ryuichi1/hiranaga-demo-app/config"
	"github.com/ryuichi1/hiranaga-demo-app/log"
)

// scoreRequest is the wire form of one inference call.
type scoreRequest struct {
	Shape []int     `json:"shape"`
	Data  []float32 `json:"data"`
}

type scoreResponse struct {
	Scores []float32 `json:"scores"`
}

// Remote scores drawings against an HTTP model server. Each request
// body is signed with HMAC-SHA512 keyed by the application key
// concatenated with the HMAC key, and the hex digest travels in the
// hmac header.
type Remote struct {
	cfg    config.Engine
	client *http.Client
}

func NewRemote(cfg config.Engine) *Remote {
	return &Remote{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (r *Remote) Infer(ctx context.Context, input *tensor.Dense) ([]float32, error) {
	data, ok := input.Data().([]float32)
	if !ok {
		return nil, errors.New("input tensor is not float32")
	}

	payload, err := json.Marshal(scoreRequest{
		Shape: []int(input.Shape()),
		Data:  data,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cannot encode score request")
	}

	body, err := r.send(ctx, payload)
	if err != nil {
		return nil, err
	}

	var decoded scoreResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, errors.Wrap(err, "cannot decode score response")
	}
	if len(decoded.Scores) == 0 {
		return nil, errors.New("score response carries no scores")
	}

	log.Trace.Printf("engine replied with %d scores", len(decoded.Scores))
	return decoded.Scores, nil
}

func (r *Remote) send(ctx context.Context, data []byte) ([]byte, error) {
	fullkey := r.cfg.ApplicationKey + r.cfg.HMACKey
	mac := hmac.New(sha512.New, []byte(fullkey))
	mac.Write(data)
	digest := hex.EncodeToString(mac.Sum(nil))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.URL, bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("applicationKey", r.cfg.ApplicationKey)
	req.Header.Set("hmac", digest)

	res, err := r.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send request")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	if res.StatusCode != http.StatusOK {
		return nil, errors.Errorf("scoring error: status %d, response: %s", res.StatusCode, string(body))
	}

	return body, nil
}
