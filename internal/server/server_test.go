package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/require"

	"verify_gateway/internal/config"
	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	pricingservice "verify_gateway/internal/domain/service/pricing"
	"verify_gateway/internal/domain/service/verification"
	"verify_gateway/internal/domain/value"
	"verify_gateway/internal/infrastructure/pricing"
	"verify_gateway/internal/infrastructure/twilio"
	"verify_gateway/internal/server"
	"verify_gateway/pkg/errcodes"
	"verify_gateway/pkg/tests"
)

type testEnv struct {
	client     tests.APIClient
	provider   *verification.ProviderMock
	pricesFile string
}

func newTestEnv(t *testing.T, status entity.VerificationStatus) testEnv {
	t.Helper()

	provider := &verification.ProviderMock{
		StartVerificationFunc: func(_ context.Context, request entity.VerificationRequest) (entity.Verification, error) {
			return entity.Verification{SID: "VE123", Phone: request.Phone, Status: status}, nil
		},
		CheckVerificationFunc: func(_ context.Context, request entity.VerificationCheckRequest) (entity.Verification, error) {
			return entity.Verification{SID: "VE123", Phone: request.Phone, Status: status}, nil
		},
	}

	pricesFile := filepath.Join(t.TempDir(), "prices.json")
	store := pricing.NewFileStore(pricesFile, cache.New(time.Minute, 0))

	s := server.NewServer(
		server.NewVerificationServer(verification.NewService(provider)),
		server.NewPricingServer(pricingservice.NewService(pricing.NewStaticSource(), store)),
	)

	httpServer := httptest.NewServer(server.NewRouter(s, 4096))
	t.Cleanup(httpServer.Close)

	return testEnv{
		client:     tests.NewAPIClient(httpServer.URL, httpServer.Client()),
		provider:   provider,
		pricesFile: pricesFile,
	}
}

func TestSendCode(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, entity.VerificationStatusPending)

	var body map[string]any

	resp, err := env.client.PostJSON(ctx, "/send-code", nil, `{"phone":"+15551234567"}`, &body, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(map[string]any{"success": true, "status": "pending"}, body)
	rq.NotEmpty(resp.Header.Get("X-Trace-Id"))

	calls := env.provider.StartVerificationCalls()
	rq.Len(calls, 1)
	rq.Equal("+15551234567", calls[0].VerificationRequest.Phone.String())
	rq.Equal("sms", calls[0].VerificationRequest.Channel.String())
}

func TestSendCodeNormalizesPhone(t *testing.T) {
	rq := require.New(t)

	env := newTestEnv(t, entity.VerificationStatusPending)

	resp, err := env.client.PostForm(context.Background(), "/send-code", nil, url.Values{"phone": {"+1 (555) 123-4567"}}, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	calls := env.provider.StartVerificationCalls()
	rq.Len(calls, 1)
	rq.Equal("+15551234567", calls[0].VerificationRequest.Phone.String())
}

func TestSendCodeInvalidPhone(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		request string
		message string
	}{
		{
			name:    "Absent",
			request: `{}`,
			message: "phone is required",
		},
		{
			name:    "Empty",
			request: `{"phone":""}`,
			message: "phone is required",
		},
		{
			name:    "Blank",
			request: `{"phone":"   "}`,
			message: "phone is required",
		},
		{
			name:    "Without plus",
			request: `{"phone":"15551234567"}`,
			message: "phone must start with +",
		},
		{
			name:    "Garbage",
			request: `{"phone":"+call-me"}`,
			message: "phone is not a valid international number",
		},
		{
			name:    "Broken JSON",
			request: `{"phone":`,
			message: "Invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			env := newTestEnv(t, entity.VerificationStatusPending)

			var errBody map[string]any

			resp, err := env.client.PostJSON(context.Background(), "/send-code", nil, tc.request, nil, &errBody)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.Equal(map[string]any{"success": false, "error": tc.message}, errBody)
			rq.Empty(env.provider.StartVerificationCalls())
		})
	}
}

func TestSendCodeProviderError(t *testing.T) {
	rq := require.New(t)

	env := newTestEnv(t, entity.VerificationStatusPending)
	env.provider.StartVerificationFunc = func(context.Context, entity.VerificationRequest) (entity.Verification, error) {
		return entity.Verification{}, domain.NewError(errcodes.ProviderError, "Max send attempts reached")
	}

	var errBody map[string]any

	resp, err := env.client.PostJSON(context.Background(), "/send-code", nil, `{"phone":"+15551234567"}`, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.Equal(map[string]any{"success": false, "error": "Max send attempts reached"}, errBody)
}

func TestCheckCode(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name   string
		status entity.VerificationStatus
		body   map[string]any
	}{
		{
			name:   "Approved",
			status: entity.VerificationStatusApproved,
			body:   map[string]any{"success": true},
		},
		{
			name:   "Pending",
			status: entity.VerificationStatusPending,
			body:   map[string]any{"success": false, "error": "Invalid code"},
		},
		{
			name:   "Canceled",
			status: entity.VerificationStatusCanceled,
			body:   map[string]any{"success": false, "error": "Invalid code"},
		},
		{
			name:   "Expired",
			status: entity.VerificationStatusExpired,
			body:   map[string]any{"success": false, "error": "Invalid code"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			env := newTestEnv(t, tc.status)

			var body map[string]any

			resp, err := env.client.PostJSON(
				context.Background(),
				"/check-code",
				nil,
				`{"phone":"+15551234567","code":"000000"}`,
				&body,
				nil,
			)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)
			rq.Equal(tc.body, body)

			calls := env.provider.CheckVerificationCalls()
			rq.Len(calls, 1)
			rq.Equal("+15551234567", calls[0].VerificationCheckRequest.Phone.String())
			rq.Equal("000000", calls[0].VerificationCheckRequest.Code.String())
		})
	}
}

func TestCheckCodeMissingFields(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		request string
		message string
	}{
		{
			name:    "Phone absent",
			request: `{"code":"000000"}`,
			message: "phone is required",
		},
		{
			name:    "Code absent",
			request: `{"phone":"+15551234567"}`,
			message: "code is required",
		},
		{
			name:    "Both absent",
			request: `{}`,
			message: "phone is required, code is required",
		},
		{
			name:    "Blank code",
			request: `{"phone":"+15551234567","code":"  "}`,
			message: "code is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			env := newTestEnv(t, entity.VerificationStatusApproved)

			var errBody map[string]any

			resp, err := env.client.PostJSON(context.Background(), "/check-code", nil, tc.request, nil, &errBody)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.Equal(map[string]any{"success": false, "error": tc.message}, errBody)
			rq.Empty(env.provider.CheckVerificationCalls())
		})
	}
}

func TestCheckCodeProviderError(t *testing.T) {
	rq := require.New(t)

	env := newTestEnv(t, entity.VerificationStatusApproved)
	env.provider.CheckVerificationFunc = func(context.Context, entity.VerificationCheckRequest) (entity.Verification, error) {
		return entity.Verification{}, domain.NewError(errcodes.ProviderUnavailable, "verification provider is unavailable")
	}

	var errBody map[string]any

	resp, err := env.client.PostJSON(
		context.Background(),
		"/check-code",
		nil,
		`{"phone":"+15551234567","code":"000000"}`,
		nil,
		&errBody,
	)
	rq.NoError(err)
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.Equal(map[string]any{"success": false, "error": "verification provider is unavailable"}, errBody)
}

func TestUpdatePrices(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	env := newTestEnv(t, entity.VerificationStatusPending)

	var errBody map[string]any

	resp, err := env.client.Get(ctx, "/prices", nil, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(false, errBody["ok"])

	var body map[string]any

	resp, err = env.client.Post(ctx, "/update-prices", nil, nil, &body, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(map[string]any{"ok": true, "message": "Prices updated successfully"}, body)

	first, err := os.ReadFile(env.pricesFile)
	rq.NoError(err)

	resp, err = env.client.Post(ctx, "/update-prices", nil, nil, nil, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)

	second, err := os.ReadFile(env.pricesFile)
	rq.NoError(err)
	rq.Equal(first, second)

	var prices map[string]map[string]map[string]int

	resp, err = env.client.Get(ctx, "/prices", nil, &prices, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Len(prices, 4)
	rq.Equal(1200, prices["panel-100"]["base"]["small"])
	rq.Equal(400, prices["panel-200"]["factor"]["old"])
}

func TestUpdatePricesWriteError(t *testing.T) {
	rq := require.New(t)

	store := pricing.NewFileStore(filepath.Join(t.TempDir(), "missing", "prices.json"), cache.New(time.Minute, 0))

	s := server.NewServer(
		server.NewVerificationServer(verification.NewService(&verification.ProviderMock{})),
		server.NewPricingServer(pricingservice.NewService(pricing.NewStaticSource(), store)),
	)

	httpServer := httptest.NewServer(server.NewRouter(s, 4096))
	defer httpServer.Close()

	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var errBody map[string]any

	resp, err := client.Post(context.Background(), "/update-prices", nil, nil, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.Equal(map[string]any{"ok": false, "error": "failed to write prices file"}, errBody)
}

func TestSendCodeProviderUnreachable(t *testing.T) {
	rq := require.New(t)

	provider := twilio.NewClient(config.Twilio{
		AccountSID: "ACtest",
		AuthToken:  "token",
		ServiceSID: "VAtest",
		BaseURL:    "http://127.0.0.1:1",
		Timeout:    5 * time.Second,
	}, 4096)

	store := pricing.NewFileStore(filepath.Join(t.TempDir(), "prices.json"), cache.New(time.Minute, 0))

	s := server.NewServer(
		server.NewVerificationServer(verification.NewService(provider)),
		server.NewPricingServer(pricingservice.NewService(pricing.NewStaticSource(), store)),
	)

	httpServer := httptest.NewServer(server.NewRouter(s, 4096))
	defer httpServer.Close()

	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	var errBody map[string]any

	resp, err := client.PostJSON(context.Background(), "/send-code", nil, `{"phone":"+15551234567"}`, nil, &errBody)
	rq.NoError(err)
	rq.Equal(http.StatusInternalServerError, resp.StatusCode)
	rq.Equal(false, errBody["success"])
	rq.Equal("dial tcp 127.0.0.1:1: connect: connection refused", errBody["error"])
}

type panickingVerificationService struct{}

func (panickingVerificationService) Start(context.Context, value.Phone) (entity.Verification, error) {
	panic("verification service is broken")
}

func (panickingVerificationService) Check(context.Context, value.Phone, value.VerificationCode) (entity.Verification, error) {
	panic("verification service is broken")
}

type panickingPricingService struct{}

func (panickingPricingService) Refresh(context.Context) (entity.PricingFixture, error) {
	panic("pricing service is broken")
}

func (panickingPricingService) Current(context.Context) (entity.PricingFixture, error) {
	panic("pricing service is broken")
}

func TestPanicEnvelopes(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	s := server.NewServer(
		server.NewVerificationServer(panickingVerificationService{}),
		server.NewPricingServer(panickingPricingService{}),
	)

	httpServer := httptest.NewServer(server.NewRouter(s, 4096))
	defer httpServer.Close()

	client := tests.NewAPIClient(httpServer.URL, httpServer.Client())

	testCases := []struct {
		name string
		call func(errDest any) (*http.Response, error)
		body map[string]any
	}{
		{
			name: "Send code",
			call: func(errDest any) (*http.Response, error) {
				return client.PostJSON(ctx, "/send-code", nil, `{"phone":"+15551234567"}`, nil, errDest)
			},
			body: map[string]any{"success": false, "error": "Internal server error"},
		},
		{
			name: "Check code",
			call: func(errDest any) (*http.Response, error) {
				return client.PostJSON(ctx, "/check-code", nil, `{"phone":"+15551234567","code":"000000"}`, nil, errDest)
			},
			body: map[string]any{"success": false, "error": "Internal server error"},
		},
		{
			name: "Update prices",
			call: func(errDest any) (*http.Response, error) {
				return client.Post(ctx, "/update-prices", nil, nil, nil, errDest)
			},
			body: map[string]any{"ok": false, "error": "Internal server error"},
		},
		{
			name: "Get prices",
			call: func(errDest any) (*http.Response, error) {
				return client.Get(ctx, "/prices", nil, nil, errDest)
			},
			body: map[string]any{"ok": false, "error": "Internal server error"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var errBody map[string]any

			resp, err := tc.call(&errBody)
			rq.NoError(err)
			rq.Equal(http.StatusInternalServerError, resp.StatusCode)
			rq.Equal(tc.body, errBody)
		})
	}
}
