package server

import (
	"context"
	"fmt"
	"net/http"

	"verify_gateway/internal/domain/entity"
	"verify_gateway/internal/domain/value"
	"verify_gateway/pkg/httpx/reply"
	"verify_gateway/pkg/httpx/req"
	"verify_gateway/pkg/rest"
)

type verificationService interface {
	Start(context.Context, value.Phone) (entity.Verification, error)
	Check(context.Context, value.Phone, value.VerificationCode) (entity.Verification, error)
}

type VerificationServer struct {
	verificationService verificationService
}

func NewVerificationServer(verificationService verificationService) VerificationServer {
	return VerificationServer{
		verificationService: verificationService,
	}
}

func (s VerificationServer) postSendCode(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.SendCodeRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	phone, err := newDomainPhone(request.Phone)
	if err != nil {
		return fmt.Errorf("newDomainPhone: %w", err)
	}

	verification, err := s.verificationService.Start(ctx, phone)
	if err != nil {
		return fmt.Errorf("verificationService.Start: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTVerificationSent(verification))

	return nil
}

func (s VerificationServer) postCheckCode(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CheckCodeRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	phone, err := newDomainPhone(request.Phone)
	if err != nil {
		return fmt.Errorf("newDomainPhone: %w", err)
	}

	code, err := newDomainVerificationCode(request.Code)
	if err != nil {
		return fmt.Errorf("newDomainVerificationCode: %w", err)
	}

	verification, err := s.verificationService.Check(ctx, phone, code)
	if err != nil {
		return fmt.Errorf("verificationService.Check: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTVerificationChecked(verification))

	return nil
}
