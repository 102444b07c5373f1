package factory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// StatusError is returned when the factory rejects an order. ReportURL points
// at the factory's diagnostic report when one was supplied.
type StatusError struct {
	Status    int
	ReportURL string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("factory error: %d %s", e.Status, http.StatusText(e.Status))
}

// HTTPClient submits orders to the pizza factory API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type dinerPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type itemPayload struct {
	MenuID      int64   `json:"menuId"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type orderPayload struct {
	ID          int64         `json:"id"`
	DinerID     int64         `json:"dinerId"`
	FranchiseID int64         `json:"franchiseId"`
	StoreID     int64         `json:"storeId"`
	Items       []itemPayload `json:"items"`
}

type request struct {
	Diner dinerPayload `json:"diner"`
	Order orderPayload `json:"order"`
}

type response struct {
	JWT       string `json:"jwt"`
	ReportURL string `json:"reportUrl"`
}

// NewHTTPClient creates factory client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse factory url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("factory url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fulfill sends order on behalf of diner and returns the pizza JWT.
func (c *HTTPClient) Fulfill(ctx context.Context, diner model.User, order model.Order) (*model.Fulfillment, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/order")

	payload := request{
		Diner: dinerPayload{ID: diner.ID, Name: diner.Name, Email: diner.Email},
		Order: orderPayload{
			ID:          order.ID,
			DinerID:     order.DinerID,
			FranchiseID: order.FranchiseID,
			StoreID:     order.StoreID,
			Items:       make([]itemPayload, 0, len(order.Items)),
		},
	}
	for _, it := range order.Items {
		payload.Order.Items = append(payload.Order.Items, itemPayload{MenuID: it.MenuID, Description: it.Description, Price: it.Price})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data response
	decodeErr := json.Unmarshal(raw, &data)

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("factory request failed",
			slog.Int("status", resp.StatusCode),
			slog.Int64("order_id", order.ID),
			slog.String("report_url", data.ReportURL),
		)
		return &model.Fulfillment{ReportURL: data.ReportURL}, StatusError{Status: resp.StatusCode, ReportURL: data.ReportURL}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode factory response: %w", decodeErr)
	}
	return &model.Fulfillment{JWT: data.JWT, ReportURL: data.ReportURL}, nil
}

// Disabled is used when no factory is configured; orders are stored without
// being fulfilled.
type Disabled struct{}

// Fulfill returns no fulfillment and no error.
func (Disabled) Fulfill(context.Context, model.User, model.Order) (*model.Fulfillment, error) {
	return nil, nil
}
