package verification

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"verify_gateway/internal/domain"
	"verify_gateway/internal/domain/entity"
	"verify_gateway/pkg/errcodes"
)

func TestServiceMetrics(t *testing.T) {
	rq := require.New(t)
	ctx := context.Background()

	const status = entity.VerificationStatus("metrics-test")

	failing := false

	provider := &ProviderMock{
		StartVerificationFunc: func(context.Context, entity.VerificationRequest) (entity.Verification, error) {
			if failing {
				return entity.Verification{}, domain.NewError(errcodes.ProviderError, "boom")
			}

			return entity.Verification{Status: status}, nil
		},
		CheckVerificationFunc: func(context.Context, entity.VerificationCheckRequest) (entity.Verification, error) {
			return entity.Verification{Status: entity.VerificationStatusApproved}, nil
		},
	}

	service := NewService(provider)

	started := testutil.ToFloat64(verificationsStartedCounter.WithLabelValues(status.String()))
	startErrors := testutil.ToFloat64(providerErrorsCounter.WithLabelValues(operationStart))
	approved := testutil.ToFloat64(verificationChecksCounter.WithLabelValues(resultApproved))

	_, err := service.Start(ctx, "+15551234567")
	rq.NoError(err)

	failing = true

	_, err = service.Start(ctx, "+15551234567")
	rq.Error(err)

	_, err = service.Check(ctx, "+15551234567", "123456")
	rq.NoError(err)

	rq.InDelta(started+1, testutil.ToFloat64(verificationsStartedCounter.WithLabelValues(status.String())), 0)
	rq.InDelta(startErrors+1, testutil.ToFloat64(providerErrorsCounter.WithLabelValues(operationStart)), 0)
	rq.InDelta(approved+1, testutil.ToFloat64(verificationChecksCounter.WithLabelValues(resultApproved)), 0)
}
