package artifacts

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	"github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/network/standard"
	"github.com/cloudwego/hertz/pkg/protocol"
)

const (
	defaultDialTimeout     = 10 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultMaxConnsPerHost = 16
)

type HertzConfig struct {
	DialTimeout     time.Duration
	RequestTimeout  time.Duration
	MaxConnsPerHost int
}

// HertzDoer is the process-wide transport. The underlying client pools
// connections and is safe for concurrent use.
type HertzDoer struct {
	client  *client.Client
	timeout time.Duration
}

func NewHertzDoer(cfg HertzConfig) (*HertzDoer, error) {
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}
	if cfg.MaxConnsPerHost <= 0 {
		cfg.MaxConnsPerHost = defaultMaxConnsPerHost
	}

	opts := []config.ClientOption{
		client.WithDialer(standard.NewDialer()),
		client.WithTLSConfig(&tls.Config{MinVersion: tls.VersionTLS12}),
		client.WithDialTimeout(cfg.DialTimeout),
		client.WithClientReadTimeout(cfg.RequestTimeout),
		client.WithMaxConnsPerHost(cfg.MaxConnsPerHost),
	}
	c, err := client.NewClient(opts...)
	if err != nil {
		return nil, err
	}
	return &HertzDoer{client: c, timeout: cfg.RequestTimeout}, nil
}

// Do applies the earlier of the context deadline and the request timeout.
func (d *HertzDoer) Do(ctx context.Context, req *protocol.Request, resp *protocol.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline := time.Now().Add(d.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	return d.client.DoDeadline(ctx, req, resp, deadline)
}
