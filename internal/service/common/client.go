//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/config"
	pb "github.com/stevenraymond8592-create/AI-Commitment/internal/pb/v1"
)

// Client wraps the gRPC CarouselService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the carousel server.
	conn *grpc.ClientConn
	// api is the CarouselService client interface.
	api pb.CarouselServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// errAddressRequired is returned when a required address value is missing.
var errAddressRequired = errors.New("address must be provided")

// Dial establishes a gRPC connection to the carousel server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial carousel server: %w", err)
	}

	client := &Client{
		conn:        conn,
		api:         pb.NewCarouselServiceClient(conn),
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// GetState retrieves the current carousel state.
func (c *Client) GetState(ctx context.Context) (*RemoteState, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetState(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("get carousel state: %w", err)
	}

	return ParseState(resp), nil
}

// Navigate requests an absolute zero-based slide index.
func (c *Client) Navigate(ctx context.Context, target int) (*RemoteState, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Navigate(callCtx, wrapperspb.Int64(int64(target)))
	if err != nil {
		return nil, fmt.Errorf("navigate to %d: %w", target, err)
	}

	return ParseState(resp), nil
}

// Next requests the slide after the active one.
func (c *Client) Next(ctx context.Context) (*RemoteState, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Next(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("next slide: %w", err)
	}

	return ParseState(resp), nil
}

// Previous requests the slide before the active one.
func (c *Client) Previous(ctx context.Context) (*RemoteState, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.Previous(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("previous slide: %w", err)
	}

	return ParseState(resp), nil
}

// ListSlides retrieves every slide in display order.
func (c *Client) ListSlides(ctx context.Context) ([]RemoteSlide, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListSlides(callCtx, new(emptypb.Empty))
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}

	slides := make([]RemoteSlide, 0, len(resp.GetValues()))
	for _, v := range resp.GetValues() {
		slides = append(slides, parseSlide(v.GetStructValue()))
	}

	return slides, nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
