package labelservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с LabelService (A&R-половина SoundPath)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента LabelService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetArtist получает карточку артиста по ID
func (c *Client) GetArtist(ctx context.Context, artistID int64) (*Artist, error) {
	url := fmt.Sprintf("%s/internal/artists/%d", c.baseURL, artistID)

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
		return nil, fmt.Errorf("%w: invalid artist ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrArtistNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var artist Artist
	if err := json.NewDecoder(resp.Body).Decode(&artist); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &artist, nil
}

// GetArtistWithGracefulDegradation получает артиста с graceful degradation.
// При недоступности LabelService возвращает ErrServiceDegraded - расчёт
// settlement продолжается без денормализованного имени артиста.
func (c *Client) GetArtistWithGracefulDegradation(ctx context.Context, artistID int64) (*Artist, error) {
	c.log.Info("Fetching artist id=%d", artistID)

	artist, err := c.GetArtist(ctx, artistID)
	if err != nil {
		// Бизнес-ошибку пробрасываем как есть
		if errors.Is(err, ErrArtistNotFound) {
			c.log.Info("Artist id=%d not found", artistID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки
		// парсинга) применяем graceful degradation
		c.log.Error("LabelService unavailable, applying graceful degradation for artist id=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: artist_id=%d, error=%v", ErrServiceDegraded, artistID, err)
	}

	c.log.Info("Successfully fetched artist id=%d, name=%s", artistID, artist.Name)
	return artist, nil
}
