package test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/redis/go-redis/v9"

	"github.com/taylor-curran/oshift-demo-all-apps/internal/infrastructure/amqp"
)

// RabbitMQ test broker configuration
const (
	RabbitMQUser     = "fraud"
	RabbitMQPassword = "fraud_pwd"
	RabbitMQHost     = "localhost"
)

// AMQPURL returns the broker URL for the dynamically mapped port
func AMQPURL(port string) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", RabbitMQUser, RabbitMQPassword, RabbitMQHost, port)
}

// RabbitMQDockerEnv returns the environment variables for the RabbitMQ container
func RabbitMQDockerEnv() []string {
	return []string{
		"RABBITMQ_DEFAULT_USER=" + RabbitMQUser,
		"RABBITMQ_DEFAULT_PASS=" + RabbitMQPassword,
	}
}

func autoRemove(config *docker.HostConfig) {
	config.AutoRemove = true
	config.RestartPolicy = docker.RestartPolicy{Name: "no"}
}

// SetupRabbitMQ starts a broker and waits until it accepts AMQP connections.
func SetupRabbitMQ(t *testing.T, pool *dockertest.Pool) (string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "rabbitmq",
		Tag:        "3.13-alpine",
		Env:        RabbitMQDockerEnv(),
	}, autoRemove)
	if err != nil {
		t.Errorf("could not start rabbitmq: %s", err)
		return "", nil
	}
	_ = resource.Expire(120)

	url := AMQPURL(resource.GetPort("5672/tcp"))
	pool.MaxWait = 90 * time.Second
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return amqp.NewDialer(url).Ping(ctx)
	}); err != nil {
		t.Errorf("could not connect to rabbitmq: %s", err)
	}
	return url, resource
}

// SetupRedis starts a Redis server and waits until it answers PING.
func SetupRedis(t *testing.T, pool *dockertest.Pool) (string, *dockertest.Resource) {
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, autoRemove)
	if err != nil {
		t.Errorf("could not start redis: %s", err)
		return "", nil
	}
	_ = resource.Expire(120)

	addr := "localhost:" + resource.GetPort("6379/tcp")
	if err := pool.Retry(func() error {
		client := redis.NewClient(&redis.Options{Addr: addr})
		defer client.Close()
		return client.Ping(context.Background()).Err()
	}); err != nil {
		t.Errorf("could not connect to redis: %s", err)
	}
	return addr, resource
}
