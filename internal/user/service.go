package user

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ticketcue/pkg/constants"

	consulapi "github.com/hashicorp/consul/api"
)

// UserService talks to the main user service, discovered through consul,
// to resolve a user's registered web-push device tokens. A user with no
// tokens has not granted notification permission on any device.
type UserService interface {
	GetTokenUser(ctx context.Context, userID string) (*[]string, error)
}

type userService struct {
	consulClient *consulapi.Client
	serviceName  string
	httpClient   *http.Client
}

func NewUserService(consulClient *consulapi.Client, serviceName string) UserService {
	return &userService{
		consulClient: consulClient,
		serviceName:  serviceName,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (u *userService) GetTokenUser(ctx context.Context, userID string) (*[]string, error) {

	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	base, err := u.resolveService()
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/users/%s/device-tokens", base, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	if token, ok := ctx.Value(constants.TokenKey).(string); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("main service returned status %d for user %s", resp.StatusCode, userID)
	}

	var payload struct {
		Data []string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	return &payload.Data, nil
}

func (u *userService) resolveService() (string, error) {
	entries, _, err := u.consulClient.Health().Service(u.serviceName, "", true, nil)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("%s has no healthy instances in consul", u.serviceName)
	}

	svc := entries[0].Service
	addr := svc.Address
	if addr == "" {
		addr = entries[0].Node.Address
	}

	return fmt.Sprintf("http://%s:%d", addr, svc.Port), nil
}
