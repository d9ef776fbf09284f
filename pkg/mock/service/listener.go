package mock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/stretchr/testify/mock"
)

// MockListenerService is a mock of the listener lookup service
type MockListenerService struct {
	mock.Mock
}

func (m *MockListenerService) Exists(ctx context.Context, listenerArn string) error {
	args := m.Called(ctx, listenerArn)
	return args.Error(0)
}

func (m *MockListenerService) Describe(ctx context.Context, listenerArn string) (types.Listener, error) {
	args := m.Called(ctx, listenerArn)
	return args.Get(0).(types.Listener), args.Error(1)
}
