package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы со StaffService
// Ростер сотрудников принадлежит StaffService, этот клиент только читает его
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListActive получает список активных сотрудников бизнеса
// Ошибка запроса пробрасывается вызывающему как есть: недоступность ростера
// не должна маскироваться под пустой список, иначе доступность будет завышена
func (c *Client) ListActive(ctx context.Context, businessID int64) ([]StaffMember, error) {
	url := fmt.Sprintf("%s/internal/businesses/%d/staff?active=true", c.baseURL, businessID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid business ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrBusinessNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var list staffListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Ответ может содержать неактивные записи - отфильтровываем их
	active := make([]StaffMember, 0, len(list.Staff))
	for _, member := range list.Staff {
		if member.IsActive {
			active = append(active, member)
		}
	}

	c.log.Info("ListActive: fetched %d active staff members for business_id=%d", len(active), businessID)
	return active, nil
}
