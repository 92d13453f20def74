package twilio_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"verify_gateway/internal/config"
	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/internal/domain/value"
	"verify_gateway/internal/infrastructure/twilio"
	"verify_gateway/pkg/errcodes"
)

const testPhone = value.Phone("+15551234567")

func newClient(baseURL string) *twilio.Client {
	return twilio.NewClient(config.Twilio{
		AccountSID: "ACtest",
		AuthToken:  "token",
		ServiceSID: "VAtest",
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
	}, 1024)
}

func TestClientStartVerification(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal(http.MethodPost, r.Method)
		rq.Equal("/v2/Services/VAtest/Verifications", r.URL.Path)

		username, password, ok := r.BasicAuth()
		rq.True(ok)
		rq.Equal("ACtest", username)
		rq.Equal("token", password)

		rq.Equal("+15551234567", r.FormValue("To"))
		rq.Equal("sms", r.FormValue("Channel"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"VE123","to":"+15551234567","channel":"sms","status":"pending","valid":false}`)) //nolint:errcheck
	}))
	defer httpServer.Close()

	verification, err := newClient(httpServer.URL).StartVerification(context.Background(), entity.VerificationRequest{
		Phone:   testPhone,
		Channel: value.ChannelSMS,
	})
	rq.NoError(err)
	rq.Equal(entity.Verification{
		SID:    "VE123",
		Phone:  testPhone,
		Status: entity.VerificationStatusPending,
	}, verification)
}

func TestClientCheckVerification(t *testing.T) {
	rq := require.New(t)

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/v2/Services/VAtest/VerificationCheck", r.URL.Path)
		rq.Equal("+15551234567", r.FormValue("To"))
		rq.Equal("123456", r.FormValue("Code"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"sid":"VE123","to":"+15551234567","status":"approved","valid":true}`)) //nolint:errcheck
	}))
	defer httpServer.Close()

	verification, err := newClient(httpServer.URL+"/").CheckVerification(context.Background(), entity.VerificationCheckRequest{
		Phone: testPhone,
		Code:  "123456",
	})
	rq.NoError(err)
	rq.True(verification.Status.IsApproved())
}

func TestClientErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		statusCode int
		body       string
		code       string
		message    string
	}{
		{
			name:       "Provider message is forwarded",
			statusCode: http.StatusBadRequest,
			body:       `{"code":60200,"message":"Invalid parameter ` + "`To`" + `: +15551234567","more_info":"https://www.twilio.com/docs/errors/60200","status":400}`,
			code:       string(errcodes.ProviderError),
			message:    "Invalid parameter `To`: +15551234567",
		},
		{
			name:       "Quota exceeded",
			statusCode: http.StatusTooManyRequests,
			body:       `{"code":60203,"message":"Max send attempts reached","status":429}`,
			code:       string(errcodes.ProviderError),
			message:    "Max send attempts reached",
		},
		{
			name:       "Non JSON error",
			statusCode: http.StatusBadGateway,
			body:       `<html>Bad Gateway</html>`,
			code:       string(errcodes.ProviderError),
			message:    "verification provider error 502",
		},
		{
			name:       "Malformed success body",
			statusCode: http.StatusOK,
			body:       `{"status":`,
			code:       string(errcodes.ProviderError),
			message:    "unexpected verification provider response",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body)) //nolint:errcheck
			}))
			defer httpServer.Close()

			_, err := newClient(httpServer.URL).StartVerification(context.Background(), entity.VerificationRequest{
				Phone:   testPhone,
				Channel: value.ChannelSMS,
			})
			rq.Error(err)

			var appErr *domain.AppError

			rq.ErrorAs(err, &appErr)
			rq.Equal(tc.code, string(appErr.Code))
			rq.Equal(tc.message, appErr.PublicMessage())
		})
	}
}

func TestClientNetworkError(t *testing.T) {
	rq := require.New(t)

	_, err := newClient("http://127.0.0.1:1").CheckVerification(context.Background(), entity.VerificationCheckRequest{
		Phone: testPhone,
		Code:  "123456",
	})
	rq.Error(err)

	var appErr *domain.AppError

	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.ProviderUnavailable, appErr.Code)
	rq.Contains(appErr.PublicMessage(), "connect: connection refused")
	rq.NotContains(appErr.PublicMessage(), "/v2/Services")
}

func TestClientTimeout(t *testing.T) {
	rq := require.New(t)

	release := make(chan struct{})

	httpServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
		w.WriteHeader(http.StatusCreated)
	}))
	defer httpServer.Close()
	defer close(release)

	client := twilio.NewClient(config.Twilio{
		AccountSID: "ACtest",
		AuthToken:  "token",
		ServiceSID: "VAtest",
		BaseURL:    httpServer.URL,
		Timeout:    50 * time.Millisecond,
	}, 1024)

	_, err := client.StartVerification(context.Background(), entity.VerificationRequest{
		Phone:   testPhone,
		Channel: value.ChannelSMS,
	})
	rq.Error(err)

	var appErr *domain.AppError

	rq.ErrorAs(err, &appErr)
	rq.Equal(errcodes.TimeoutExceeded, appErr.Code)
	rq.Contains(appErr.PublicMessage(), "Client.Timeout exceeded")
	rq.NotContains(appErr.PublicMessage(), "VAtest")
}
