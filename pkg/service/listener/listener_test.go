package listener

import (
	"context"
	"fmt"
	"testing"

	clientmock "github.com/linecard/albevents/pkg/mock/client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const listenerArn = "arn:aws:elasticloadbalancing:us-east-1:123456789012:listener/app/my-load-balancer/50dc6c495c0c9188/f2f7dc8efc522ab2"

func TestListener(t *testing.T) {
	ctx := context.Background()

	input := &elasticloadbalancingv2.DescribeListenersInput{ListenerArns: []string{listenerArn}}

	tests := []struct {
		name  string
		setup func(*clientmock.MockElbV2Client)
		test  func(*testing.T, Service)
	}{
		{
			name: "Exists succeeds when the listener is described",
			setup: func(m *clientmock.MockElbV2Client) {
				m.On("DescribeListeners", mock.Anything, input).Return(&elasticloadbalancingv2.DescribeListenersOutput{
					Listeners: []types.Listener{
						{
							ListenerArn: aws.String(listenerArn),
							Port:        aws.Int32(443),
							Protocol:    types.ProtocolEnumHttps,
						},
					},
				}, nil)
			},
			test: func(t *testing.T, s Service) {
				assert.NoError(t, s.Exists(ctx, listenerArn))

				described, err := s.Describe(ctx, listenerArn)
				assert.NoError(t, err)
				assert.Equal(t, int32(443), *described.Port)
			},
		},
		{
			name: "ListenerNotFound translates to ErrListenerNotFound",
			setup: func(m *clientmock.MockElbV2Client) {
				m.On("DescribeListeners", mock.Anything, input).Return(
					(*elasticloadbalancingv2.DescribeListenersOutput)(nil),
					&smithy.GenericAPIError{Code: "ListenerNotFound", Message: "One or more listeners not found"},
				)
			},
			test: func(t *testing.T, s Service) {
				assert.ErrorIs(t, s.Exists(ctx, listenerArn), ErrListenerNotFound)
			},
		},
		{
			name: "empty result is not found",
			setup: func(m *clientmock.MockElbV2Client) {
				m.On("DescribeListeners", mock.Anything, input).Return(&elasticloadbalancingv2.DescribeListenersOutput{}, nil)
			},
			test: func(t *testing.T, s Service) {
				assert.ErrorIs(t, s.Exists(ctx, listenerArn), ErrListenerNotFound)
			},
		},
		{
			name: "other errors pass through",
			setup: func(m *clientmock.MockElbV2Client) {
				m.On("DescribeListeners", mock.Anything, input).Return(
					(*elasticloadbalancingv2.DescribeListenersOutput)(nil),
					fmt.Errorf("connection reset"),
				)
			},
			test: func(t *testing.T, s Service) {
				err := s.Exists(ctx, listenerArn)
				assert.EqualError(t, err, "connection reset")
				assert.NotErrorIs(t, err, ErrListenerNotFound)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := new(clientmock.MockElbV2Client)
			tc.setup(m)
			tc.test(t, FromClients(m))
			m.AssertExpectations(t)
		})
	}
}
