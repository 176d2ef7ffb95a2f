package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/adrianliechti/voicedesk/server/api"
)

type CouponService struct {
	Options []RequestOption
}

func NewCouponService(opts ...RequestOption) CouponService {
	return CouponService{
		Options: opts,
	}
}

type CouponRequest struct {
	Name   string
	Reader io.Reader

	// raw or polished, empty selects raw
	Mode string
}

// Payload is either a PNG coupon or the no-discount message.
type Payload struct {
	ContentType string
	Content     []byte
}

func (p *Payload) IsText() bool {
	return strings.HasPrefix(p.ContentType, "text/")
}

func (r *CouponService) New(ctx context.Context, input CouponRequest, opts ...RequestOption) (*Payload, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	file, err := w.CreateFormFile("file", input.Name)

	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(file, input.Reader); err != nil {
		return nil, err
	}

	if input.Mode != "" {
		w.WriteField("conversionType", input.Mode)
	}

	w.Close()

	req, err := http.NewRequestWithContext(ctx, "POST", c.URL+"/api/speech-to-text", &data)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, convertError(resp)
	}

	var result api.Coupon

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(result.Base64)

	if err != nil {
		return nil, err
	}

	return &Payload{
		ContentType: result.MimeType,
		Content:     content,
	}, nil
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if text := strings.TrimSpace(string(data)); text != "" {
		return errors.New(resp.Status + ": " + text)
	}

	return errors.New(resp.Status)
}
