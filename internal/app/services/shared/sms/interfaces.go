package sms

import (
	"context"

	"petfirst-service/internal/pkg/dto/requests"
)

type SMSService interface {
	SendSMSMessage(ctx context.Context, request *requests.SMSMessage) error
}
