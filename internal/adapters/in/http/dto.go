package http

import (
	"encoding/json"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type orderItemRequest struct {
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Note      string `json:"note,omitempty"`
}

type createOrderRequest struct {
	Channel      string             `json:"channel"`
	CustomerName string             `json:"customerName,omitempty"`
	TableID      *int64             `json:"tableId,omitempty"`
	Items        []orderItemRequest `json:"items"`
}

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderItemResponse struct {
	ID             int64  `json:"id"`
	ProductID      int64  `json:"productId"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Note           string `json:"note,omitempty"`
}

type orderPaymentResponse struct {
	ID          int64  `json:"id"`
	Method      string `json:"method"`
	AmountCents int64  `json:"amountCents"`
	ChangeCents int64  `json:"changeCents"`
}

type orderResponse struct {
	ID           int64                  `json:"id"`
	Channel      string                 `json:"channel"`
	Status       string                 `json:"status"`
	CustomerName string                 `json:"customerName,omitempty"`
	TableID      *int64                 `json:"tableId,omitempty"`
	TotalCents   int64                  `json:"totalCents"`
	Version      int64                  `json:"version"`
	CreatedAt    time.Time              `json:"createdAt"`
	DispatchedAt *time.Time             `json:"dispatchedAt,omitempty"`
	Items        []orderItemResponse    `json:"items"`
	Payments     []orderPaymentResponse `json:"payments"`
}

func orderResponseFromDomain(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			ID:             item.ID(),
			ProductID:      item.ProductID(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPriceCents(),
			Note:           item.Note(),
		})
	}

	payments := make([]orderPaymentResponse, 0, len(aggregate.Payments()))
	for _, payment := range aggregate.Payments() {
		payments = append(payments, orderPaymentResponse{
			ID:          payment.ID(),
			Method:      payment.Method(),
			AmountCents: payment.AmountCents(),
			ChangeCents: payment.ChangeCents(),
		})
	}

	return orderResponse{
		ID:           aggregate.ID(),
		Channel:      aggregate.Channel().String(),
		Status:       aggregate.Status().String(),
		CustomerName: aggregate.CustomerName(),
		TableID:      aggregate.TableID(),
		TotalCents:   aggregate.TotalCents(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		DispatchedAt: aggregate.DispatchedAt(),
		Items:        items,
		Payments:     payments,
	}
}

func orderResponseFromReadModel(model queries.OrderResponse) orderResponse {
	items := make([]orderItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, orderItemResponse(item))
	}

	payments := make([]orderPaymentResponse, 0, len(model.Payments))
	for _, payment := range model.Payments {
		payments = append(payments, orderPaymentResponse(payment))
	}

	return orderResponse{
		ID:           model.ID,
		Channel:      model.Channel,
		Status:       model.Status,
		CustomerName: model.CustomerName,
		TableID:      model.TableID,
		TotalCents:   model.TotalCents,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		DispatchedAt: model.DispatchedAt,
		Items:        items,
		Payments:     payments,
	}
}

// partnerEventRequest accepts both the partner's wire field names (fullCode,
// orderId) and the local ones (code, partnerOrderId).
type partnerEventRequest struct {
	Code           string             `json:"code"`
	FullCode       string             `json:"fullCode"`
	OrderID        string             `json:"orderId"`
	PartnerOrderID string             `json:"partnerOrderId"`
	CustomerName   string             `json:"customerName"`
	Items          []orderItemRequest `json:"items"`
}

func (r partnerEventRequest) toRawEvent() commands.RawPartnerEvent {
	code := r.FullCode
	if code == "" {
		code = r.Code
	}
	partnerOrderID := r.OrderID
	if partnerOrderID == "" {
		partnerOrderID = r.PartnerOrderID
	}

	items := make([]commands.CreateOrderItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, commands.CreateOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Note:      item.Note,
		})
	}

	return commands.RawPartnerEvent{
		Code:           code,
		PartnerOrderID: partnerOrderID,
		CustomerName:   r.CustomerName,
		Items:          items,
	}
}

// decodePartnerEvents accepts a single event object or an array of them.
func decodePartnerEvents(body []byte) ([]commands.RawPartnerEvent, error) {
	var batch []partnerEventRequest
	if err := json.Unmarshal(body, &batch); err != nil {
		var single partnerEventRequest
		if err = json.Unmarshal(body, &single); err != nil {
			return nil, err
		}
		batch = []partnerEventRequest{single}
	}

	events := make([]commands.RawPartnerEvent, 0, len(batch))
	for _, req := range batch {
		events = append(events, req.toRawEvent())
	}
	return events, nil
}

type ingestResultResponse struct {
	OrdersCreated    int `json:"ordersCreated"`
	OrdersDispatched int `json:"ordersDispatched"`
	OrdersCancelled  int `json:"ordersCancelled"`
	Skipped          int `json:"skipped"`
	Failed           int `json:"failed"`
}

func ingestResultResponseFrom(result commands.IngestResult) ingestResultResponse {
	return ingestResultResponse{
		OrdersCreated:    result.OrdersCreated,
		OrdersDispatched: result.OrdersDispatched,
		OrdersCancelled:  result.OrdersCancelled,
		Skipped:          result.Skipped,
		Failed:           result.Failed,
	}
}

type dispatchQueueEntryResponse struct {
	OrderID        int64      `json:"orderId"`
	PartnerOrderID string     `json:"partnerOrderId,omitempty"`
	Status         string     `json:"status"`
	CustomerName   string     `json:"customerName,omitempty"`
	TotalCents     int64      `json:"totalCents"`
	CreatedAt      time.Time  `json:"createdAt"`
	DispatchedAt   *time.Time `json:"dispatchedAt,omitempty"`
}

type dispatchQueueResponse struct {
	Awaiting   []dispatchQueueEntryResponse `json:"awaiting"`
	Dispatched []dispatchQueueEntryResponse `json:"dispatched"`
}

func dispatchQueueResponseFrom(model queries.GetDispatchQueueQueryResponse) dispatchQueueResponse {
	toEntries := func(entries []queries.DispatchQueueEntry) []dispatchQueueEntryResponse {
		out := make([]dispatchQueueEntryResponse, 0, len(entries))
		for _, entry := range entries {
			out = append(out, dispatchQueueEntryResponse(entry))
		}
		return out
	}

	return dispatchQueueResponse{
		Awaiting:   toEntries(model.Awaiting),
		Dispatched: toEntries(model.Dispatched),
	}
}

type partnerConfigRequest struct {
	Environment  string `json:"environment"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	MerchantID   string `json:"merchantId"`
}

type partnerConfigResponse struct {
	Environment     string     `json:"environment"`
	ClientID        string     `json:"clientId"`
	HasClientSecret bool       `json:"hasClientSecret"`
	MerchantID      string     `json:"merchantId"`
	HasAccessToken  bool       `json:"hasAccessToken"`
	TokenExpiresAt  *time.Time `json:"tokenExpiresAt,omitempty"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

type partnerTokenResponse struct {
	AccessToken string    `json:"accessToken"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

type simulateRequest struct {
	Count int                `json:"count"`
	Items []orderItemRequest `json:"items"`
}
