package server

// Server объединяет HTTP серверы отдельных сущностей.
type Server struct {
	VerificationServer
	PricingServer
}

func NewServer(
	verificationServer VerificationServer,
	pricingServer PricingServer,
) Server {
	return Server{
		VerificationServer: verificationServer,
		PricingServer:      pricingServer,
	}
}
