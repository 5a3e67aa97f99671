package payment_gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type razorpayService struct {
	BaseUrl    string
	KeyID      string
	KeySecret  string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func NewRazorpayService(internalConfig *config.InternalConfig, logger *zap.Logger) PaymentGatewayService {
	return &razorpayService{
		BaseUrl:   internalConfig.PaymentGateway.BaseUrl,
		KeyID:     internalConfig.PaymentGateway.KeyID,
		KeySecret: internalConfig.PaymentGateway.KeySecret,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.PaymentGateway.TimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

type razorpayOrderRequest struct {
	Amount   int64           `json:"amount"`
	Currency string          `json:"currency"`
	Receipt  string          `json:"receipt,omitempty"`
	Notes    map[string]bool `json:"notes,omitempty"`
}

type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

func (s *razorpayService) CreateOrder(ctx context.Context, amount int64, tag models.OrderTag, receipt string) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("razorpayService.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", amount),
		zap.String("order_tag", string(tag)),
	)

	orderRequest := razorpayOrderRequest{
		Amount:   amount * 100,
		Currency: constvars.RazorpayCurrencyINR,
		Receipt:  receipt,
	}
	if tag != models.OrderTagNone {
		orderRequest.Notes = map[string]bool{string(tag): true}
	}

	body, err := json.Marshal(orderRequest)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := s.BaseUrl + constvars.RazorpayOrdersPath
	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.SetBasicAuth(s.KeyID, s.KeySecret)

	httpResponse, err := s.HTTPClient.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != constvars.StatusOK {
		err := fmt.Errorf("razorpay order creation answered status %d", httpResponse.StatusCode)
		s.Log.Error("razorpayService.CreateOrder provider rejected order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int("status_code", httpResponse.StatusCode),
		)
		return nil, exceptions.ErrPaymentGatewayCreateOrder(err)
	}

	orderResponse := new(razorpayOrderResponse)
	if err := json.NewDecoder(httpResponse.Body).Decode(orderResponse); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	s.Log.Info("razorpayService.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderResponse.ID),
	)

	return &responses.PaymentOrder{
		ProviderOrderID: orderResponse.ID,
		Amount:          orderResponse.Amount,
		Currency:        orderResponse.Currency,
	}, nil
}
