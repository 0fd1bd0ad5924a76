package emailsvc

import "github.com/ethiopulse/backend/core"

// dummyService drops all messages.
type dummyService struct{}

var _ core.EmailService = (*dummyService)(nil)

func NewDummyService() core.EmailService { return &dummyService{} }

func (dummyService) SendMessages(...*core.EmailMessage) {}
