package listener

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/smithy-go"
)

var ErrListenerNotFound = errors.New("listener does not exist")

type ElbV2Client interface {
	DescribeListeners(ctx context.Context, params *elasticloadbalancingv2.DescribeListenersInput, optFns ...func(*elasticloadbalancingv2.Options)) (*elasticloadbalancingv2.DescribeListenersOutput, error)
}

type Client struct {
	ElbV2 ElbV2Client
}

type Service struct {
	Client Client
}

func FromClients(elbv2 ElbV2Client) Service {
	return Service{
		Client: Client{
			ElbV2: elbv2,
		},
	}
}

func (s Service) Describe(ctx context.Context, listenerArn string) (types.Listener, error) {
	var apiErr smithy.APIError

	output, err := s.Client.ElbV2.DescribeListeners(ctx, &elasticloadbalancingv2.DescribeListenersInput{
		ListenerArns: []string{listenerArn},
	})

	if err != nil {
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "ListenerNotFound", "ValidationError":
				return types.Listener{}, ErrListenerNotFound
			}
		}
		return types.Listener{}, err
	}

	if len(output.Listeners) == 0 {
		return types.Listener{}, ErrListenerNotFound
	}

	return output.Listeners[0], nil
}

func (s Service) Exists(ctx context.Context, listenerArn string) error {
	_, err := s.Describe(ctx, listenerArn)
	return err
}
