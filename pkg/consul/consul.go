package consul

import (
	"fmt"
	"strconv"

	"ticketcue/config"

	consulapi "github.com/hashicorp/consul/api"
	"go.uber.org/zap"
)

type ConsulConn struct {
	logger    *zap.SugaredLogger
	cfg       *config.Config
	client    *consulapi.Client
	serviceID string
}

func NewConsulConn(logger *zap.SugaredLogger, cfg *config.Config) *ConsulConn {
	return &ConsulConn{
		logger: logger,
		cfg:    cfg,
	}
}

// Connect creates the consul client and registers this service with an HTTP
// health check pointed at /health.
func (c *ConsulConn) Connect() *consulapi.Client {
	client, err := consulapi.NewClient(&consulapi.Config{
		Address: c.cfg.ConsulAddr,
	})
	if err != nil {
		c.logger.Fatalf("Failed to create consul client: %v", err)
	}
	c.client = client

	port, err := strconv.Atoi(c.cfg.Port)
	if err != nil {
		c.logger.Fatalf("Invalid service port %q: %v", c.cfg.Port, err)
	}

	c.serviceID = fmt.Sprintf("%s-%s", c.cfg.ServiceName, c.cfg.Port)

	registration := &consulapi.AgentServiceRegistration{
		ID:   c.serviceID,
		Name: c.cfg.ServiceName,
		Port: port,
		Check: &consulapi.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://localhost:%d/health", port),
			Interval:                       "10s",
			Timeout:                        "5s",
			DeregisterCriticalServiceAfter: "1m",
		},
	}

	if err := client.Agent().ServiceRegister(registration); err != nil {
		c.logger.Fatalf("Failed to register service with consul: %v", err)
	}

	c.logger.Infof("Registered %s with consul at %s", c.serviceID, c.cfg.ConsulAddr)
	return client
}

func (c *ConsulConn) Deregister() {
	if c.client == nil {
		return
	}
	if err := c.client.Agent().ServiceDeregister(c.serviceID); err != nil {
		c.logger.Errorf("Failed to deregister %s: %v", c.serviceID, err)
		return
	}
	c.logger.Infof("Deregistered %s from consul", c.serviceID)
}
