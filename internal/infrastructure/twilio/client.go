package twilio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"verify_gateway/internal/config"
	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/internal/domain/value"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/httpx"
	"verify_gateway/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	verificationsPath     = "/v2/Services/%s/Verifications"
	verificationCheckPath = "/v2/Services/%s/VerificationCheck"
)

// Client клиент Twilio Verify v2. Реализует verification.Provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceSID string
}

func NewClient(cfg config.Twilio, logFieldMaxLen int) *Client {
	transport := httpx.NewLoggingRoundTripper(
		httpx.NewAuthBasicRoundTripper(http.DefaultTransport, cfg.AccountSID, cfg.AuthToken),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
	)

	return &Client{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceSID: cfg.ServiceSID,
	}
}

// StartVerification отправляет код на номер. Повторный вызов для того же
// номера провайдер трактует как повторную отправку.
func (c *Client) StartVerification(ctx context.Context, request entity.VerificationRequest) (entity.Verification, error) {
	form := url.Values{}
	form.Set("To", request.Phone.String())
	form.Set("Channel", request.Channel.String())

	resource, err := c.post(ctx, fmt.Sprintf(verificationsPath, url.PathEscape(c.serviceSID)), form)
	if err != nil {
		return entity.Verification{}, err
	}

	return resource.toDomain(), nil
}

func (c *Client) CheckVerification(ctx context.Context, request entity.VerificationCheckRequest) (entity.Verification, error) {
	form := url.Values{}
	form.Set("To", request.Phone.String())
	form.Set("Code", request.Code.String())

	resource, err := c.post(ctx, fmt.Sprintf(verificationCheckPath, url.PathEscape(c.serviceSID)), form)
	if err != nil {
		return entity.Verification{}, err
	}

	return resource.toDomain(), nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values) (verificationResource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return verificationResource{}, domain.WrapError(
			fmt.Errorf("http.NewRequestWithContext: %w", err),
			errcodes.ProviderError,
			"failed to build verification request",
		)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return verificationResource{}, newTransportError(fmt.Errorf("httpClient.Do: %w", err))
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return verificationResource{}, newTransportError(fmt.Errorf("io.ReadAll: %w", err))
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		return verificationResource{}, newAPIError(resp.StatusCode, body)
	}

	var resource verificationResource

	if err = json.Unmarshal(body, &resource); err != nil {
		return verificationResource{}, domain.WrapError(
			fmt.Errorf("json.Unmarshal: %w", err),
			errcodes.ProviderError,
			"unexpected verification provider response",
		)
	}

	return resource, nil
}

// newTransportError отдаёт клиенту текст сетевой ошибки без URL запроса,
// в URL есть SID сервиса.
func newTransportError(err error) error {
	message := err.Error()

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		message = urlErr.Err.Error()
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.WrapError(err, errcodes.TimeoutExceeded, message)
	}

	return domain.WrapError(err, errcodes.ProviderUnavailable, message)
}

// newAPIError переносит сообщение провайдера как есть: клиент шлюза
// видит тот же текст, что вернул Twilio.
func newAPIError(statusCode int, body []byte) error {
	var apiErr errorResource

	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return domain.WrapError(
			fmt.Errorf("twilio: status %d, code %d", statusCode, apiErr.Code),
			errcodes.ProviderError,
			apiErr.Message,
		)
	}

	return domain.NewError(
		errcodes.ProviderError,
		fmt.Sprintf("verification provider error %d", statusCode),
	)
}

type verificationResource struct {
	SID     string `json:"sid"`
	To      string `json:"to"`
	Channel string `json:"channel"`
	Status  string `json:"status"`
	Valid   bool   `json:"valid"`
}

func (r verificationResource) toDomain() entity.Verification {
	return entity.Verification{
		SID:    r.SID,
		Phone:  value.Phone(r.To),
		Status: entity.VerificationStatus(r.Status),
	}
}

type errorResource struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
	Status   int    `json:"status"`
}
